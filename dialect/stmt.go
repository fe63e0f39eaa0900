package dialect

import (
	"fmt"
	"sort"
	"strings"
)

/*
	statement rewriting helpers.
	these append paging clauses to raw sql or build procedure call
	statements - nothing here touches the database.
*/

const ErrPageSize = "paging requested but page size is missing or 0"

/* dialects which page with LIMIT n OFFSET m */
var limitOffset = map[Dialect]struct{}{
	MySQL:    {},
	MariaDB:  {},
	Postgres: {},
	SQLite:   {},
}

/* dialects which page with OFFSET m ROWS FETCH NEXT n ROWS ONLY */
var offsetFetch = map[Dialect]struct{}{
	MSSQL:  {},
	Oracle: {},
}

/*
	appends a paging clause to the query.
	queries which already page are returned unchanged.
	note that OFFSET .. FETCH NEXT requires oracle 12c+ / mssql 2012+.
*/
func Page(d Dialect, query string, offset, pageSize int) (string, error) {

	query = strings.TrimSpace(query)

	if HasPaging(query) {
		return query, nil
	}

	if pageSize == 0 {
		return "", fmt.Errorf("dialect: %s", ErrPageSize)
	}

	if _, ok := limitOffset[d]; ok {
		return fmt.Sprintf("%s LIMIT %d OFFSET %d", query, pageSize, offset), nil
	}
	if _, ok := offsetFetch[d]; ok {
		return fmt.Sprintf(
			"%s OFFSET %d ROWS FETCH NEXT %d ROWS ONLY",
			query, offset, pageSize), nil
	}

	return "", fmt.Errorf("dialect: %s does not support paging injection", d)
}

/* offset-only variant of Page, used when no page size is in play */
func Offset(d Dialect, query string, offset int) (string, error) {

	query = strings.TrimSpace(query)

	if _, ok := limitOffset[d]; ok {
		return fmt.Sprintf("%s LIMIT ALL OFFSET %d", query, offset), nil
	}
	if _, ok := offsetFetch[d]; ok {
		return fmt.Sprintf("%s OFFSET %d ROWS", query, offset), nil
	}

	return "", fmt.Errorf("dialect: %s does not support paging injection", d)
}

/*
	builds a procedure call statement with named parameter markers.
	params are sorted so generated sql is deterministic - binding is
	by name so execution order does not depend on it.
*/
func CallStmt(d Dialect, procedure string, params []string) (string, error) {

	sorted := make([]string, len(params))
	copy(sorted, params)
	sort.Strings(sorted)

	var markers []string

	switch d {
	case Postgres, MySQL, MariaDB:
		for _, p := range sorted {
			markers = append(markers, ":"+p)
		}
		return fmt.Sprintf(
			"CALL %s(%s)", procedure, strings.Join(markers, ", ")), nil
	case MSSQL:
		for _, p := range sorted {
			markers = append(markers, fmt.Sprintf("@%s=:%s", p, p))
		}
		return fmt.Sprintf(
			"EXEC %s %s", procedure, strings.Join(markers, ", ")), nil
	case Oracle:
		for _, p := range sorted {
			markers = append(markers, ":"+p)
		}
		return fmt.Sprintf(
			"BEGIN %s(%s); END;", procedure, strings.Join(markers, ", ")), nil
	case SQLite:
		return "", fmt.Errorf("dialect: sqlite does not support stored procedures")
	}

	return "", fmt.Errorf("dialect: unsupported dialect %q", d)
}
