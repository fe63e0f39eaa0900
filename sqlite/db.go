package sqlite

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/kzaag/dbc/config"
)

func Open(cfg *config.Database) (*sqlx.DB, error) {
	cs, err := CS(cfg)
	if err != nil {
		return nil, err
	}
	return sqlx.Connect("sqlite", cs)
}
