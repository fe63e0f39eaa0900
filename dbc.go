/*
	dbc builds database connections from yaml configuration and
	delegates execution to sqlx. the packages underneath split the
	work the usual way: config parses and validates, dialect knows
	statement quirks, conn wraps the sqlx handle, and the per-dialect
	packages (pgsql, mysql, mssql, sqlite, cass) build connection
	strings and register their drivers.
*/
package dbc

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kzaag/dbc/config"
	"github.com/kzaag/dbc/conn"
	"github.com/kzaag/dbc/dialect"
	"github.com/kzaag/dbc/mssql"
	"github.com/kzaag/dbc/mysql"
	"github.com/kzaag/dbc/pgsql"
	"github.com/kzaag/dbc/sqlite"
)

/*
	static dispatch on dialect, same as loading drivers by name would
	do but without plugins. cassandra is deliberately absent - gocql
	does not sit behind database/sql, use the cass package for it.
*/
func opener(cfg *config.Database) (conn.OpenFunc, error) {

	if cfg.UseOdbc {
		return odbcOpen, nil
	}

	d, err := cfg.DialectName()
	if err != nil {
		return nil, err
	}

	switch d {
	case dialect.Postgres:
		return pgsql.Open, nil
	case dialect.MySQL, dialect.MariaDB:
		return mysql.Open, nil
	case dialect.MSSQL:
		return mssql.Open, nil
	case dialect.SQLite:
		return sqlite.Open, nil
	case dialect.Oracle:
		/* no oracle driver is linked in. the caller registers one */
		return func(cfg *config.Database) (*sqlx.DB, error) {
			if cfg.Uri == "" {
				return nil, fmt.Errorf("dbc: oracle requires a uri")
			}
			return sqlx.Connect(dialect.Oracle.DriverName(), cfg.Uri)
		}, nil
	case dialect.Cassandra:
		return nil, fmt.Errorf("dbc: use package cass for cassandra sessions")
	}

	return nil, fmt.Errorf("dbc: unsupported dialect %q", cfg.Dialect)
}

/*
	odbc connections go through a caller-registered odbc driver.
	per the schema, uri holds the DSN name for odbc
*/
func odbcOpen(cfg *config.Database) (*sqlx.DB, error) {

	p := cfg.ConnectionParams

	var cs string
	if cfg.Uri != "" {
		cs = fmt.Sprintf("DSN=%s;", cfg.Uri)
	} else {
		cs = fmt.Sprintf("driver={%s};server=%s;database=%s;",
			p.Driver, p.Host, p.Database)
	}
	if p.Username != "" {
		cs += fmt.Sprintf("uid=%s;pwd=%s;", p.Username, p.Password)
	}

	return sqlx.Connect(dialect.OdbcDriver, cs)
}

/* builds a connection for a single validated database entry */
func Open(cfg *config.Database, opts *conn.Opts) (*conn.Conn, error) {
	open, err := opener(cfg)
	if err != nil {
		return nil, err
	}
	return conn.New(cfg, open, opts)
}

/*
	builds a connection from a loaded config. name selects the entry
	in a multi database config, "" uses the default selection order
*/
func OpenNamed(c *config.Config, name string, opts *conn.Opts) (*conn.Conn, error) {
	cfg, err := c.Database(name)
	if err != nil {
		return nil, err
	}
	return Open(cfg, opts)
}

/* loads the config at path (or discovers one) and opens name */
func OpenPath(path, name string, o *config.Overrides, opts *conn.Opts) (*conn.Conn, error) {
	c, err := config.NewFromPath(path, o)
	if err != nil {
		return nil, err
	}
	return OpenNamed(c, name, opts)
}
