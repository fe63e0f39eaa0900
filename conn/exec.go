package conn

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kzaag/dbc/cmn"
	"github.com/kzaag/dbc/config"
	"github.com/kzaag/dbc/dialect"
)

/*
	result of a statement execution.
	which fields are populated depends on the fetch count and the
	configured fetch_return mode:
	  data   -> Data
	  object -> Rows (live handle, fetch more through Fetch)
	  tuple  -> Data and Rows
	data manipulation statements populate Message only.
*/
type Result struct {
	Data    []map[string]interface{}
	Rows    *sqlx.Rows
	Message string
}

/* first row shortcut, nil when there is none */
func (r *Result) One() map[string]interface{} {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0]
}

/* fetch counts: 0 reads all rows, 1 one row, n up to n rows */
func (c *Conn) Execute(query string, params map[string]interface{}, fetch int) (*Result, error) {
	return c.executeQuery(query, params, fetch, 0, 0, false)
}

/* Execute with explicit offset and page size */
func (c *Conn) ExecuteAt(
	query string, params map[string]interface{},
	fetch, offset, pageSize int) (*Result, error) {
	return c.executeQuery(query, params, fetch, offset, pageSize, false)
}

/*
	executes a stored procedure by name, building the call statement
	for the configured dialect. procedure results are never paged.
*/
func (c *Conn) ExecuteSP(procedure string, params map[string]interface{}, fetch int) (*Result, error) {

	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}

	query, err := dialect.CallStmt(c.d, procedure, names)
	if err != nil {
		return nil, err
	}

	return c.executeQuery(query, params, fetch, 0, 0, true)
}

/* appends a paging clause using the configured page size as default */
func (c *Conn) Page(query string, offset, pageSize int) (string, error) {
	if pageSize == 0 {
		pageSize = c.pageSize
	}
	return dialect.Page(c.d, query, offset, pageSize)
}

func (c *Conn) Offset(query string, offset int) (string, error) {
	return dialect.Offset(c.d, query, offset)
}

func (c *Conn) SetPageSize(pageSize int) {
	c.pageSize = pageSize
}

func (c *Conn) executeQuery(
	query string, params map[string]interface{},
	fetch, offset, pageSize int, noPaging bool) (*Result, error) {

	c.lock()
	defer c.unlock()

	res, err := c.execute(query, params, fetch, offset, pageSize, noPaging)
	if err != nil {
		return nil, c.handleErr(err)
	}
	return res, nil
}

/* callers hold the scoped lock already */
func (c *Conn) execute(
	query string, params map[string]interface{},
	fetch, offset, pageSize int, noPaging bool) (*Result, error) {

	if err := c.connect(); err != nil {
		return nil, err
	}

	if dialect.HasFormatArgs(query) {
		cmn.PrintflnWarn(
			"query %q contains format artifacts - use named parameters instead",
			dialect.TrimString(query, true))
	}

	params, err := c.sanitize(params)
	if err != nil {
		return nil, err
	}

	if !noPaging {
		if pageSize > 0 || c.cfg.PagingEnabled() {
			if query, err = c.Page(query, offset, pageSize); err != nil {
				return nil, err
			}
		} else if offset > 0 {
			if query, err = c.Offset(query, offset); err != nil {
				return nil, err
			}
		}
	}

	ext, err := c.ext()
	if err != nil {
		return nil, err
	}

	if dialect.IsDataManipulation(query) {
		if err = c.execStmt(ext, query, params); err != nil {
			return nil, err
		}
		/* commit on write instead of waiting for the session end */
		if c.cfg.AutoCommit && c.tx != nil {
			if err = c.commit(); err != nil {
				return nil, err
			}
		}
		return &Result{Message: c.success(query)}, nil
	}

	rows, err := c.queryStmt(ext, query, params)
	if err != nil {
		return nil, err
	}
	c.rows = rows

	data, err := fetchRows(rows, fetch)
	if err != nil {
		rows.Close()
		return nil, err
	}
	if fetch == 0 {
		rows.Close()
	}

	data = c.process(data)

	if fetch != 0 {
		switch c.cfg.FetchReturn {
		case config.ReturnObject:
			return &Result{Rows: rows}, nil
		case config.ReturnTuple:
			return &Result{Data: data, Rows: rows}, nil
		}
	}

	return &Result{Data: data}, nil
}

func (c *Conn) execStmt(ext sqlx.Ext, query string, params map[string]interface{}) error {
	var err error
	if c.execHandler != nil {
		var rows *sqlx.Rows
		if rows, err = c.execHandler(query, params); rows != nil {
			rows.Close()
		}
		return err
	}
	if len(params) == 0 {
		_, err = ext.Exec(query)
	} else {
		_, err = sqlx.NamedExec(ext, query, params)
	}
	return err
}

func (c *Conn) queryStmt(ext sqlx.Ext, query string, params map[string]interface{}) (*sqlx.Rows, error) {
	if c.execHandler != nil {
		return c.execHandler(query, params)
	}
	if len(params) == 0 {
		return ext.Queryx(query)
	}
	return sqlx.NamedQuery(ext, query, params)
}

/*
	continues reading from the last result handle.
	useful with fetch_return object / tuple where the handle stays open
*/
func (c *Conn) Fetch(fetch int) ([]map[string]interface{}, error) {
	c.lock()
	defer c.unlock()

	if c.rows == nil {
		return nil, c.handleErr(fmt.Errorf("conn: no result handle to fetch from"))
	}
	data, err := fetchRows(c.rows, fetch)
	if err != nil {
		return nil, c.handleErr(err)
	}
	return c.process(data), nil
}

func fetchRows(rows *sqlx.Rows, fetch int) ([]map[string]interface{}, error) {
	if fetch < 0 {
		return nil, fmt.Errorf("conn: fetch must be >= 0. Use 0 for all rows")
	}

	var out []map[string]interface{}

	for (fetch == 0 || len(out) < fetch) && rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func (c *Conn) success(query string) string {
	if c.successHandler != nil {
		return c.successHandler(query)
	}
	return "success"
}
