package cass

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/config"
)

/*
	cassandra support. gocql speaks its own protocol, so this package
	stands apart from the database/sql dialects - same config surface,
	different session type.

	recognized options: timeout (seconds), retries, interval (seconds)
*/

func getInt(opts map[string]string, name string, val *int) error {
	v, ok := opts[name]
	if !ok {
		return nil
	}
	var err error
	if *val, err = strconv.Atoi(v); err != nil {
		return fmt.Errorf("cass: option %s: %v", name, err)
	}
	return nil
}

func Cluster(cfg *config.Database) (*gocql.ClusterConfig, error) {

	cfg.Normalize()
	p := cfg.ConnectionParams

	if p.Host == "" {
		return nil, fmt.Errorf("cass: host is required")
	}

	if p.Password == "" && p.Username != "" {
		pw, err := cmn.ReadPassword(p.Username)
		if err != nil {
			return nil, err
		}
		p.Password = pw
	}

	var timeout int = 10
	if err := getInt(cfg.Options(), "timeout", &timeout); err != nil {
		return nil, err
	}

	cluster := gocql.NewCluster(strings.Split(p.Host, ",")...)
	cluster.Timeout = time.Second * time.Duration(timeout)
	cluster.Keyspace = p.Database
	if p.Port != 0 {
		cluster.Port = p.Port
	}
	if p.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: p.Username,
			Password: p.Password,
		}
	}

	return cluster, nil
}

func Open(cfg *config.Database) (*Session, error) {

	var retries, interval int = 0, 2
	if err := getInt(cfg.Options(), "retries", &retries); err != nil {
		return nil, err
	}
	if err := getInt(cfg.Options(), "interval", &interval); err != nil {
		return nil, err
	}

	cluster, err := Cluster(cfg)
	if err != nil {
		return nil, err
	}

	var sess *gocql.Session
	for {
		if sess, err = cluster.CreateSession(); err == nil {
			break
		}
		if retries <= 0 {
			return nil, err
		}
		cmn.PrintflnWarn("cass: %v", err)
		time.Sleep(time.Second * time.Duration(interval))
		retries--
	}

	return &Session{S: sess}, nil
}
