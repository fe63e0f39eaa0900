package sqlite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kzaag/dbc/config"
)

/*
	builds the modernc sqlite dsn from the configured file path.
	options become dsn query parameters, sorted for determinism.
*/
func CS(cfg *config.Database) (string, error) {

	if cfg.Uri != "" {
		return cfg.Uri, nil
	}

	if cfg.Path == "" {
		return "", fmt.Errorf("sqlite: path is required")
	}

	cs := cfg.Path

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
