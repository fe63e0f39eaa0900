package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzaag/dbc/config"
)

func TestCSPath(t *testing.T) {
	cfg := &config.Database{Dialect: "sqlite", Path: "/var/lib/audit.db"}
	cs, err := CS(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/audit.db", cs)
}

func TestCSOptionsSorted(t *testing.T) {
	cfg := &config.Database{
		Dialect: "sqlite",
		Path:    "audit.db",
		ConnectionParams: &config.ConnectionParams{
			Options: map[string]string{
				"_journal_mode": "WAL",
				"_busy_timeout": "5000",
			},
		},
	}
	cs, err := CS(cfg)
	require.NoError(t, err)
	assert.Equal(t, "audit.db?_busy_timeout=5000&_journal_mode=WAL", cs)
}

func TestCSUriWins(t *testing.T) {
	cfg := &config.Database{Dialect: "sqlite", Uri: "file::memory:?cache=shared"}
	cs, err := CS(cfg)
	require.NoError(t, err)
	assert.Equal(t, "file::memory:?cache=shared", cs)
}

func TestCSMissingPath(t *testing.T) {
	cfg := &config.Database{Dialect: "sqlite"}
	_, err := CS(cfg)
	require.Error(t, err)
}
