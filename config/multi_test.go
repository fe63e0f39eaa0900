package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const multiDoc = `
reporting:
  dialect: postgresql
  uri: postgres://app@db.local/reporting
audit:
  dialect: sqlite
  path: ./audit.db
scratch:
  dialect: mysql
  uri: app@tcp(db.local)/scratch
`

func parseMulti(t *testing.T, doc string) *Multi {
	t.Helper()
	var m Multi
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
	require.NoError(t, m.Validate(true))
	return &m
}

func TestMultiOrderPreserved(t *testing.T) {
	m := parseMulti(t, multiDoc)
	assert.Equal(t, []string{"reporting", "audit", "scratch"}, m.Order)
}

func TestSelectByName(t *testing.T) {
	m := parseMulti(t, multiDoc)

	db, err := m.Select("audit")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialect)

	_, err = m.Select("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope" was not found`)
}

func TestSelectDefaultFlag(t *testing.T) {
	doc := multiDoc + `
primary:
  dialect: postgresql
  default: true
  uri: postgres://app@db.local/primary
`
	m := parseMulti(t, doc)
	db, err := m.Select("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://app@db.local/primary", db.Uri)
}

func TestSelectFallbackConfig(t *testing.T) {
	m := parseMulti(t, multiDoc)
	fallback := &Database{Dialect: "sqlite", Path: "/tmp/x.db"}
	m.Fallback = fallback

	db, err := m.Select("")
	require.NoError(t, err)
	assert.Same(t, fallback, db)
}

func TestSelectFallbackName(t *testing.T) {
	m := parseMulti(t, multiDoc)
	m.FallbackName = "scratch"

	db, err := m.Select("")
	require.NoError(t, err)
	assert.Equal(t, "mysql", db.Dialect)

	m.FallbackName = "nope"
	_, err = m.Select("")
	require.Error(t, err)
}

func TestSelectFirstEntry(t *testing.T) {
	m := parseMulti(t, multiDoc)
	db, err := m.Select("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://app@db.local/reporting", db.Uri)
}

/* explicit name outranks the default flag */
func TestSelectNameBeatsDefault(t *testing.T) {
	doc := `
a:
  dialect: postgresql
  default: true
  uri: x
b:
  dialect: sqlite
  path: ./b.db
`
	m := parseMulti(t, doc)
	db, err := m.Select("b")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialect)
}

func TestMultiDuplicateDefault(t *testing.T) {
	doc := `
a:
  dialect: postgresql
  default: true
  uri: x
b:
  dialect: postgresql
  default: true
  uri: y
`
	var m Multi
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
	err := m.Validate(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one database entry")
}

func TestMultiEntryErrorsAreNamed(t *testing.T) {
	doc := `
bad:
  dialect: sqlite
`
	var m Multi
	require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
	err := m.Validate(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
	assert.Contains(t, err.Error(), "path is required")
}
