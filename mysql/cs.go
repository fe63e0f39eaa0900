package mysql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/config"
)

/*
	builds a go-sql-driver dsn: user:password@tcp(host:port)/database.
	options are appended sorted so the dsn is deterministic.
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

	if p.Host == "" {
		return "", fmt.Errorf("mysql: host is required without a uri")
	}

	cs := ""
	if p.Username != "" {
		cs += p.Username
		if p.Password != "" {
			cs += ":" + p.Password
		}
		cs += "@"
	}

	if p.Port != 0 {
		cs += fmt.Sprintf("tcp(%s:%d)", p.Host, p.Port)
	} else {
		cs += fmt.Sprintf("tcp(%s)", p.Host)
	}

	cs += "/" + p.Database

	opts := cfg.Options()
	if len(opts) > 0 {
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var kv []string
		for _, k := range keys {
			kv = append(kv, fmt.Sprintf("%s=%s", k, opts[k]))
		}
		cs += "?" + strings.Join(kv, "&")
	}

	return cs, nil
}
