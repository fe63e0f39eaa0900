package conn

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizersRunInOrder(t *testing.T) {
	c, mock := testConn(t, testCfg(), nil)

	var order []string
	c.AddSanitizer(func(v interface{}) (interface{}, error) {
		order = append(order, "first")
		return fmt.Sprintf("%v!", v), nil
	})
	c.AddSanitizer(func(v interface{}) (interface{}, error) {
		order = append(order, "second")
		return fmt.Sprintf("%v?", v), nil
	})

	mock.ExpectQuery("select * from t where a = ?").
		WithArgs("x!?").
		WillReturnRows(sqlmock.NewRows([]string{"a"}).AddRow("x"))

	_, err := c.Execute(
		"select * from t where a = :a",
		map[string]interface{}{"a": "x"}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSanitizerError(t *testing.T) {
	c, _ := testConn(t, testCfg(), nil)

	c.AddSanitizer(func(v interface{}) (interface{}, error) {
		return nil, fmt.Errorf("tainted value")
	})

	_, err := c.Execute(
		"select * from t where a = :a",
		map[string]interface{}{"a": "x"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tainted")
}

func TestProcessorsRunInOrder(t *testing.T) {
	c, mock := testConn(t, testCfg(), nil)

	c.AddResultHandler(func(rows []map[string]interface{}) []map[string]interface{} {
		for _, r := range rows {
			r["tag"] = "a"
		}
		return rows
	})
	c.AddResultHandler(func(rows []map[string]interface{}) []map[string]interface{} {
		for _, r := range rows {
			r["tag"] = r["tag"].(string) + "b"
		}
		return rows
	})

	mock.ExpectQuery("select * from t").
		WillReturnRows(sqlmock.NewRows([]string{"x"}).AddRow(int64(1)))

	res, err := c.Execute("select * from t", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", res.Data[0]["tag"])
}

func TestTrimStrings(t *testing.T) {
	s := TrimStrings()

	v, err := s("  padded  ")
	require.NoError(t, err)
	assert.Equal(t, "padded", v)

	v, err = s(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTimeFormat(t *testing.T) {
	p := TimeFormat("2006-01-02")

	ts := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []map[string]interface{}{{"created": ts, "id": int64(1)}}

	out := p(rows)
	assert.Equal(t, "2024-03-14", out[0]["created"])
	assert.Equal(t, int64(1), out[0]["id"])
}

func TestLowercaseKeys(t *testing.T) {
	p := LowercaseKeys()

	rows := []map[string]interface{}{{"ID": int64(1), "Name": "x"}}
	out := p(rows)

	assert.Equal(t, int64(1), out[0]["id"])
	assert.Equal(t, "x", out[0]["name"])
}

func TestSingleRow(t *testing.T) {
	one := []map[string]interface{}{{"a": int64(1)}}
	assert.Equal(t, one[0], SingleRow(one))

	/* anything but exactly one row is left alone */
	two := []map[string]interface{}{{"a": int64(1)}, {"a": int64(2)}}
	assert.Equal(t, two, SingleRow(two))
	assert.Equal(t, []map[string]interface{}{}, SingleRow([]map[string]interface{}{}))
}

func TestStringifyBytes(t *testing.T) {
	p := StringifyBytes()

	rows := []map[string]interface{}{{"name": []byte("alice")}}
	out := p(rows)

	assert.Equal(t, "alice", out[0]["name"])
}
