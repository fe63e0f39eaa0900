package dbc_test

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kzaag/dbc"
	"github.com/kzaag/dbc/config"
	"github.com/kzaag/dbc/conn"
)

/* spins up a real sqlite database through the whole stack */
func TestSqliteEndToEnd(t *testing.T) {
	dir := t.TempDir()

	doc := fmt.Sprintf(`
db:
  audit:
    dialect: sqlite
    default: true
    path: %s
  scratch:
    dialect: sqlite
    path: %s
`,
		filepath.Join(dir, "audit.db"),
		filepath.Join(dir, "scratch.db"))

	cfg, err := config.NewFromBytes([]byte(doc), "", nil)
	require.NoError(t, err)

	c, err := dbc.OpenNamed(cfg, "", nil)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Execute(
		"create table users (id integer primary key, name text)", nil, 0)
	require.NoError(t, err)

	for _, name := range []string{"alice", "bob", "carol"} {
		res, err := c.Execute(
			"insert into users (name) values (:name)",
			map[string]interface{}{"name": name}, 0)
		require.NoError(t, err)
		assert.Equal(t, "success", res.Message)
	}

	res, err := c.Execute(
		"select name from users where name = :name",
		map[string]interface{}{"name": "bob"}, 0)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	/* sqlite text comes back as string through MapScan */
	assert.Equal(t, "bob", fmt.Sprintf("%s", res.Data[0]["name"]))

	/* paging injection against a live database */
	res, err = c.ExecuteAt("select name from users order by id", nil, 0, 1, 2)
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
}

func TestOpenPath(t *testing.T) {
	dir := t.TempDir()
	doc := []byte("dialect: sqlite\npath: ./x.db\n")
	require.NoError(t,
		ioutil.WriteFile(filepath.Join(dir, "dbc.yml"), doc, 0644))

	c, err := dbc.OpenPath(dir, "", nil, &conn.Opts{Connect: true})
	require.NoError(t, err)
	defer c.Close()

	res, err := c.Execute("select 1 as one", nil, 0)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.EqualValues(t, 1, res.Data[0]["one"])
}

func TestOpenCassandraRejected(t *testing.T) {
	cfg := &config.Database{
		Dialect:          "cassandra",
		ConnectionParams: &config.ConnectionParams{Host: "cas1.local"},
	}
	_, err := dbc.Open(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cass")
}

func TestOpenUnknownDialect(t *testing.T) {
	cfg := &config.Database{Dialect: "mongodb", Uri: "x"}
	_, err := dbc.Open(cfg, nil)
	require.Error(t, err)
}
