package mssql

import (
	_ "github.com/denisenkom/go-mssqldb"
	"github.com/jmoiron/sqlx"

	"github.com/kzaag/dbc/config"
)

func Open(cfg *config.Database) (*sqlx.DB, error) {
	cs, err := CS(cfg)
	if err != nil {
		return nil, err
	}
	return sqlx.Connect("sqlserver", cs)
}
