package config

import (
	"github.com/kzaag/dbc/dialect"
)

/*
	configuration records as they appear in yaml.
	a config is either a single Database document or a Multi document
	mapping names to Database entries:

	db:
	  reporting:
	    dialect: postgresql
	    default: true
	    connection_params:
	      host: db.local
	      port: 5432
	      username: app
	      options:
	        sslmode: disable
	    paging:
	      enabled: true
	      page_size: 50
	  audit:
	    dialect: sqlite
	    path: ./audit.db
*/

/* fetch_return modes */
const (
	ReturnData   = "data"
	ReturnTuple  = "tuple"
	ReturnObject = "object"
)

type ConnectionParams struct {
	Driver   string            `yaml:"driver"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	Database string            `yaml:"database"`
	Options  map[string]string `yaml:"options"`
}

type Paging struct {
	Enabled     bool `yaml:"enabled"`
	PageSize    int  `yaml:"page_size"`
	MinPageSize int  `yaml:"min_page_size"`
}

type Database struct {
	Description      string            `yaml:"description"`
	Default          bool              `yaml:"default"`
	Dialect          string            `yaml:"dialect"`
	UseOdbc          bool              `yaml:"use_odbc"`
	Uri              string            `yaml:"uri"`
	ConnectionParams *ConnectionParams `yaml:"connection_params"`
	AutoCommit       bool              `yaml:"auto_commit"`
	Path             string            `yaml:"path"`
	Paging           *Paging           `yaml:"paging"`
	FetchReturn      string            `yaml:"fetch_return"`
}

/* assigns defaults the way model validation would */
func (d *Database) Normalize() {
	if d.FetchReturn == "" {
		d.FetchReturn = ReturnData
	}
	if d.Paging == nil {
		d.Paging = &Paging{}
	}
	if d.ConnectionParams == nil {
		d.ConnectionParams = &ConnectionParams{}
	}
}

func (d *Database) DialectName() (dialect.Dialect, error) {
	return dialect.Parse(d.Dialect)
}

/* engine options to hand to the driver, nil-safe */
func (d *Database) Options() map[string]string {
	if d.ConnectionParams == nil || d.ConnectionParams.Options == nil {
		return map[string]string{}
	}
	return d.ConnectionParams.Options
}

func (d *Database) PageSize() int {
	if d.Paging == nil {
		return 0
	}
	return d.Paging.PageSize
}

func (d *Database) PagingEnabled() bool {
	return d.Paging != nil && d.Paging.Enabled
}
