package mysql

import (
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/kzaag/dbc/config"
)

/* serves both the mysql and mariadb dialects */
func Open(cfg *config.Database) (*sqlx.DB, error) {
	cs, err := CS(cfg)
	if err != nil {
		return nil, err
	}
	return sqlx.Connect("mysql", cs)
}
