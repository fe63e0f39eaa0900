package conn

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/kzaag/dbc/config"
	"github.com/kzaag/dbc/dialect"
)

/*
	Conn binds a validated database config to an sqlx handle.
	everything stateful (pooling, transactions, binding) is delegated
	to sqlx / database/sql - this type only decides which calls to make.
*/

/* opens the sqlx handle for a config. driver packages provide these */
type OpenFunc func(cfg *config.Database) (*sqlx.DB, error)

type Opts struct {
	/* dial immediately instead of on first use */
	Connect bool
	/* run statements inside a managed transaction */
	UseSession bool
	/*
		share one managed transaction between goroutines behind a
		mutex. rendition of the toolkit thread-local scoped session.
		implies UseSession.
	*/
	UseScopedSession bool
	/* adopt an already opened handle instead of dialing */
	DB *sqlx.DB
}

type Conn struct {
	cfg *config.Database
	d   dialect.Dialect

	open OpenFunc
	db   *sqlx.DB
	tx   *sqlx.Tx
	mu   sync.Mutex

	useSession bool
	useScoped  bool

	sanitizers  []Sanitizer
	processors  []Processor
	execHandler ExecHandler
	errHandler  ErrorHandler
	/* overridable message hook for data manipulation statements */
	successHandler func(query string) string

	/* last result handle, kept so Fetch can continue reading */
	rows *sqlx.Rows

	pageSize int
}

func New(cfg *config.Database, open OpenFunc, opts *Opts) (*Conn, error) {
	if opts == nil {
		opts = &Opts{}
	}

	if err := cfg.Validate(true); err != nil {
		return nil, err
	}

	d, err := cfg.DialectName()
	if err != nil {
		return nil, err
	}

	c := &Conn{
		cfg:        cfg,
		d:          d,
		open:       open,
		db:         opts.DB,
		useSession: opts.UseSession || opts.UseScopedSession,
		useScoped:  opts.UseScopedSession,
		pageSize:   cfg.PageSize(),
	}

	if opts.Connect || opts.DB != nil {
		if err = c.Connect(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Conn) Config() *config.Database {
	return c.cfg
}

func (c *Conn) Dialect() dialect.Dialect {
	return c.d
}

/* the raw sqlx handle, for callers that want the toolkit directly */
func (c *Conn) DB() *sqlx.DB {
	return c.db
}

/* dials the database if not connected yet. safe to call repeatedly */
func (c *Conn) Connect() error {
	c.lock()
	defer c.unlock()
	return c.connect()
}

func (c *Conn) connect() error {
	if c.db != nil {
		return nil
	}
	if c.open == nil {
		return fmt.Errorf("conn: no opener registered for dialect %s", c.d)
	}
	db, err := c.open(c.cfg)
	if err != nil {
		return err
	}
	c.db = db
	return nil
}

/*
	the execution surface for the next statement: the managed
	transaction in session mode, the bare handle otherwise
*/
func (c *Conn) ext() (sqlx.Ext, error) {
	if !c.useSession {
		return c.db, nil
	}
	if c.tx == nil {
		tx, err := c.db.Beginx()
		if err != nil {
			return nil, err
		}
		c.tx = tx
	}
	return c.tx, nil
}

func (c *Conn) Commit() error {
	c.lock()
	defer c.unlock()
	return c.commit()
}

/* callers hold the scoped lock already */
func (c *Conn) commit() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

func (c *Conn) Rollback() error {
	c.lock()
	defer c.unlock()

	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	return err
}

/*
	closes the underlying handle. an uncommitted session transaction
	is rolled back first
*/
func (c *Conn) Close() error {
	c.lock()
	defer c.unlock()

	if c.db == nil {
		return nil
	}
	if c.tx != nil {
		if err := c.tx.Rollback(); err != nil {
			return err
		}
		c.tx = nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *Conn) lock() {
	if c.useScoped {
		c.mu.Lock()
	}
}

func (c *Conn) unlock() {
	if c.useScoped {
		c.mu.Unlock()
	}
}
