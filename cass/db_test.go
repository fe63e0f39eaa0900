package cass

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzaag/dbc/config"
)

func TestCluster(t *testing.T) {
	cfg := &config.Database{
		Dialect: "cassandra",
		ConnectionParams: &config.ConnectionParams{
			Host:     "cas1.local,cas2.local",
			Port:     9043,
			Username: "app",
			Password: "secret",
			Database: "metrics",
			Options:  map[string]string{"timeout": "30"},
		},
	}

	cluster, err := Cluster(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"cas1.local", "cas2.local"}, cluster.Hosts)
	assert.Equal(t, 9043, cluster.Port)
	assert.Equal(t, "metrics", cluster.Keyspace)
	assert.Equal(t, 30*time.Second, cluster.Timeout)
	assert.Equal(t,
		gocql.PasswordAuthenticator{Username: "app", Password: "secret"},
		cluster.Authenticator)
}

func TestClusterDefaults(t *testing.T) {
	cfg := &config.Database{
		Dialect:          "cassandra",
		ConnectionParams: &config.ConnectionParams{Host: "cas1.local"},
	}

	cluster, err := Cluster(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cluster.Timeout)
	assert.Nil(t, cluster.Authenticator)
}

func TestClusterMissingHost(t *testing.T) {
	cfg := &config.Database{
		Dialect:          "cassandra",
		ConnectionParams: &config.ConnectionParams{},
	}
	_, err := Cluster(cfg)
	require.Error(t, err)
}

func TestClusterBadOption(t *testing.T) {
	cfg := &config.Database{
		Dialect: "cassandra",
		ConnectionParams: &config.ConnectionParams{
			Host:    "cas1.local",
			Options: map[string]string{"timeout": "soon"},
		},
	}
	_, err := Cluster(cfg)
	require.Error(t, err)
}
