package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// IOError reports a backend-level failure: pool creation, statement
// execution, or fetch. It is always terminal for the current run.
type IOError struct {
	What string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("engine: %s: %s", e.What, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Engine caches one connection pool per canonical connection URL. It is
// owned by the caller and torn down with Close; pools are safe for
// concurrent use and cheap to share.
type Engine struct {
	setup sync.Once

	mu    sync.Mutex
	pools map[string]*sqlx.DB
}

func NewEngine() *Engine {
	return &Engine{
		pools: map[string]*sqlx.DB{},
	}
}

// Acquire returns the pool for the connection specifier, opening and
// registering it on first use. Two callers may race to open the same pool;
// the first one registered wins and the extra pool is closed, so every
// caller still gets a working handle.
func (e *Engine) Acquire(ctx context.Context, db string) (*sqlx.DB, error) {
	e.setup.Do(setupDrivers)

	u := Normalize(db)

	e.mu.Lock()
	pool, ok := e.pools[u]
	e.mu.Unlock()
	if ok {
		return pool, nil
	}

	pool, err := openPool(ctx, u)
	if err != nil {
		return nil, &IOError{What: fmt.Sprintf("creating pool for %s", u), Err: err}
	}

	e.mu.Lock()
	if other, ok := e.pools[u]; ok {
		e.mu.Unlock()
		pool.Close()
		return other, nil
	}
	e.pools[u] = pool
	e.mu.Unlock()

	log.WithField("url", u).Info("opened connection pool")
	return pool, nil
}

// Close closes every registered pool and empties the registry.
func (e *Engine) Close() error {
	e.mu.Lock()
	pools := e.pools
	e.pools = map[string]*sqlx.DB{}
	e.mu.Unlock()

	var err error
	for u, pool := range pools {
		cerr := pool.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("engine: closing pool for %s: %s", u, cerr)
		}
	}
	return err
}

func openPool(ctx context.Context, u string) (*sqlx.DB, error) {
	driver, dsn, err := driverDSN(u)
	if err != nil {
		return nil, err
	}

	pool, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	// A transient in-memory database exists per connection; cap the pool at
	// one connection so every statement sees the same database.
	if driver == "sqlite" &&
		(dsn == ":memory:" || strings.Contains(dsn, "mode=memory")) {

		pool.SetMaxOpenConns(1)
	}

	err = pool.PingContext(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// The sqlite, mysql, and postgres drivers register themselves when their
// packages are imported. The remaining one-time setup teaches sqlx the
// sqlite driver's placeholder convention and routes the mysql driver's log
// output through logrus.
func setupDrivers() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	_ = mysql.SetLogger(log.StandardLogger())
}
