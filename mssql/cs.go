package mssql

import (
	"fmt"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/config"
)

/* builds an ado-style connection string for go-mssqldb */
func CS(cfg *config.Database) (string, error) {

	cfg.Normalize()

	if cfg.Uri != "" {
		return cfg.Uri, nil
	}

	p := cfg.ConnectionParams

	if p.Password == "" && p.Username != "" {
		pw, err := cmn.ReadPassword(p.Username)
		if err != nil {
			return "", err
		}
		p.Password = pw
	}

	cs := ""
	if p.Host != "" {
		if p.Port != 0 {
			cs += fmt.Sprintf("server=%s,%d;", p.Host, p.Port)
		} else {
			cs += fmt.Sprintf("server=%s;", p.Host)
		}
	}
	if p.Username != "" {
		cs += fmt.Sprintf("user id=%s;", p.Username)
	}
	if p.Password != "" {
		cs += fmt.Sprintf("password=%s;", p.Password)
	}
	if p.Database != "" {
		cs += fmt.Sprintf("database=%s;", p.Database)
	}

	for k, v := range cfg.Options() {
		cs += fmt.Sprintf("%s=%s;", k, v)
	}

	if cs == "" {
		return "", fmt.Errorf("mssql: empty connection parameters")
	}

	return cs, nil
}
