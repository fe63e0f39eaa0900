package pgsql

import (
	"fmt"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/config"
)

/*
	builds a lib/pq keyword connection string from the config.
	an explicit uri always wins over discrete parameters.
*/
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
		cs += fmt.Sprintf("host=%s ", p.Host)
	}
	if p.Port != 0 {
		cs += fmt.Sprintf("port=%d ", p.Port)
	}
	if p.Username != "" {
		cs += fmt.Sprintf("user=%s ", p.Username)
	}
	if p.Password != "" {
		cs += fmt.Sprintf("password=%s ", p.Password)
	}
	if p.Database != "" {
		cs += fmt.Sprintf("dbname=%s ", p.Database)
	}

	for k, v := range cfg.Options() {
		cs += fmt.Sprintf("%s=%s ", k, v)
	}

	if cs == "" {
		return "", fmt.Errorf("pgsql: empty connection parameters")
	}

	return cs[:len(cs)-1], nil
}
