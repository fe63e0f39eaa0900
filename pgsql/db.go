package pgsql

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/kzaag/dbc/config"
)

func Open(cfg *config.Database) (*sqlx.DB, error) {
	cs, err := CS(cfg)
	if err != nil {
		return nil, err
	}
	return sqlx.Connect("postgres", cs)
}
