package dialect

import "fmt"

/*
	dialect names as they appear in user configuration.
	mapping to database/sql driver names is kept here so that the
	driver packages and the conn package agree on spelling.
*/

type Dialect string

const (
	Postgres Dialect = "postgresql"
	MySQL    Dialect = "mysql"
	MariaDB  Dialect = "mariadb"
	MSSQL    Dialect = "mssql"
	Oracle   Dialect = "oracle"
	SQLite   Dialect = "sqlite"
	/* cassandra is served by the cass package, not database/sql */
	Cassandra Dialect = "cassandra"
)

var drivers = map[Dialect]string{
	Postgres:  "postgres",
	MySQL:     "mysql",
	MariaDB:   "mysql",
	MSSQL:     "sqlserver",
	Oracle:    "oracle",
	SQLite:    "sqlite",
	Cassandra: "",
}

/* driver name to use when the config enables odbc */
const OdbcDriver = "odbc"

func Parse(s string) (Dialect, error) {
	d := Dialect(s)
	if _, ok := drivers[d]; !ok {
		return "", fmt.Errorf("dialect: unsupported dialect %q", s)
	}
	return d, nil
}

func (d Dialect) Valid() bool {
	_, ok := drivers[d]
	return ok
}

/* name to pass into sql.Open / sqlx.Connect */
func (d Dialect) DriverName() string {
	return drivers[d]
}

func (d Dialect) String() string {
	return string(d)
}
