package conn

import (
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

/*
	handler chain.
	sanitizers run over parameter values before execution, processors
	run over fetched rows after execution. both run in registration
	order. an execution handler, when set, replaces the default sqlx
	call entirely.
*/

type Sanitizer func(value interface{}) (interface{}, error)

type Processor func(rows []map[string]interface{}) []map[string]interface{}

type ExecHandler func(query string, params map[string]interface{}) (*sqlx.Rows, error)

/*
	hook over errors surfaced by statement execution, for callers that
	want to translate or annotate them. pass-through when unset.
*/
type ErrorHandler func(err error) error

func (c *Conn) AddSanitizer(s ...Sanitizer) {
	c.sanitizers = append(c.sanitizers, s...)
}

func (c *Conn) AddResultHandler(p ...Processor) {
	c.processors = append(c.processors, p...)
}

func (c *Conn) SetExecutionHandler(h ExecHandler) {
	c.execHandler = h
}

func (c *Conn) SetSuccessHandler(h func(query string) string) {
	c.successHandler = h
}

func (c *Conn) SetErrorHandler(h ErrorHandler) {
	c.errHandler = h
}

func (c *Conn) handleErr(err error) error {
	if err == nil || c.errHandler == nil {
		return err
	}
	return c.errHandler(err)
}

func (c *Conn) sanitize(params map[string]interface{}) (map[string]interface{}, error) {
	if len(params) == 0 || len(c.sanitizers) == 0 {
		return params, nil
	}

	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		var err error
		for _, s := range c.sanitizers {
			if v, err = s(v); err != nil {
				return nil, err
			}
		}
		out[k] = v
	}
	return out, nil
}

func (c *Conn) process(rows []map[string]interface{}) []map[string]interface{} {
	for _, p := range c.processors {
		rows = p(rows)
	}
	return rows
}

/* trims surrounding whitespace from string parameters */
func TrimStrings() Sanitizer {
	return func(v interface{}) (interface{}, error) {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return v, nil
	}
}

/* formats time.Time row values into the given layout */
func TimeFormat(layout string) Processor {
	return func(rows []map[string]interface{}) []map[string]interface{} {
		for _, row := range rows {
			for k, v := range row {
				if t, ok := v.(time.Time); ok {
					row[k] = t.Format(layout)
				}
			}
		}
		return rows
	}
}

/* lowercases column names, for drivers that report them uppercased */
func LowercaseKeys() Processor {
	return func(rows []map[string]interface{}) []map[string]interface{} {
		for i, row := range rows {
			out := make(map[string]interface{}, len(row))
			for k, v := range row {
				out[strings.ToLower(k)] = v
			}
			rows[i] = out
		}
		return rows
	}
}

/*
	unwraps an exactly-one-row result to the row itself, any other
	length comes back unchanged. not a Processor - the chain keeps
	row slices, shape changes happen at the edge
*/
func SingleRow(rows []map[string]interface{}) interface{} {
	if len(rows) == 1 {
		return rows[0]
	}
	return rows
}

/* converts []byte cells to string, for drivers that scan text as raw bytes */
func StringifyBytes() Processor {
	return func(rows []map[string]interface{}) []map[string]interface{} {
		for _, row := range rows {
			for k, v := range row {
				if b, ok := v.([]byte); ok {
					row[k] = string(b)
				}
			}
		}
		return rows
	}
}
