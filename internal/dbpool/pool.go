// Package dbpool is the relational store adapter: a prepared-statement
// cache plus row/insert/query primitives over a SQLite-backed *sql.DB.
// Connection setup follows a functional-Options constructor with a
// readiness-ping loop and a model.StorageError on every failure path; the
// driver registration itself is modernc.org/sqlite's plain
// database/sql pattern.
package dbpool

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/flodb/flostore/internal/model"
)

// PackageName and the string "<PackageName> <Version>" are written into
// the Config table on bootstrap, as a single-row version marker.
const (
	PackageName = "flostore"
	Version     = "1.0.0"
)

// execer is satisfied by both *sql.DB and *sql.Tx, which is what lets
// Pool's helpers run either directly against the database or scoped
// to an in-flight transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pool owns the SQLite connection and the prepared-statement cache.
// It is not safe for concurrent use: a document is owned by one
// editor actor at a time.
type Pool struct {
	db    *sql.DB
	stmts [numStatements]*sql.Stmt
}

// Option configures a Pool at open time.
type Option func(*Pool) error

// WithMaxOpenConns bounds the number of open connections. SQLite only
// benefits from one writer, but tests sometimes want a small pool to
// exercise read concurrency.
func WithMaxOpenConns(n int) Option {
	return func(p *Pool) error {
		p.db.SetMaxOpenConns(n)
		return nil
	}
}

// WithBusyTimeout overrides how long a write waits for SQLite's write
// lock before failing. Applied after the connection is open, so it
// takes effect even for OpenInMemory, whose DSN carries no _pragma.
func WithBusyTimeout(d time.Duration) Option {
	return func(p *Pool) error {
		if _, err := p.db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", d.Milliseconds())); err != nil {
			return model.NewStorageError("pragma", err)
		}
		return nil
	}
}

// inMemorySeq numbers the databases OpenInMemory creates, so that two
// in-memory pools in one process never share tables.
var inMemorySeq atomic.Int64

// OpenInMemory opens a throwaway, process-local SQLite database and
// applies the bootstrap schema.
func OpenInMemory(ctx context.Context, opts ...Option) (*Pool, error) {
	dsn := fmt.Sprintf("file:flostore-mem-%d?mode=memory&cache=shared", inMemorySeq.Add(1))
	return open(ctx, dsn, opts...)
}

// OpenPath opens (creating if necessary) a SQLite database file at the
// given path and applies the bootstrap schema if it hasn't already
// been applied.
func OpenPath(ctx context.Context, path string, opts ...Option) (*Pool, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)
	return open(ctx, dsn, opts...)
}

func open(ctx context.Context, dsn string, opts ...Option) (*Pool, error) {
	log.WithField("dsn", dsn).Info("opening flostore database")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, model.NewStorageError("open", err)
	}

	pool := &Pool{db: db}
	for _, opt := range opts {
		if err := opt(pool); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := pingUntilReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := pool.setup(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return pool, nil
}

func pingUntilReady(ctx context.Context, db *sql.DB) error {
	deadline := time.Now().Add(5 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		if err := db.PingContext(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
		}
	}
	return model.NewStorageError("ping", lastErr)
}

// setup applies the bootstrap DDL and seed data, then records the
// version marker, exactly once per database.
func (p *Pool) setup(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, bootstrapSchema); err != nil {
		return model.NewStorageError("bootstrap", err)
	}
	if _, err := p.db.ExecContext(ctx, seedData); err != nil {
		return model.NewStorageError("seed", err)
	}

	var count int
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Config").Scan(&count); err != nil {
		return model.NewStorageError("query", err)
	}
	if count == 0 {
		versionString := fmt.Sprintf("%s %s", PackageName, Version)
		if _, err := p.db.ExecContext(ctx, "INSERT INTO Config (Package, Version) VALUES (?, ?)", PackageName, versionString); err != nil {
			return model.NewStorageError("insert", err)
		}
	}
	return nil
}

// Begin starts a transaction. interp.Store wraps every externally
// initiated batch in one.
func (p *Pool) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, model.NewStorageError("tx", err)
	}
	return tx, nil
}

// Close releases the prepared-statement cache and the underlying
// connection.
func (p *Pool) Close() error {
	for i := range p.stmts {
		if p.stmts[i] != nil {
			_ = p.stmts[i].Close()
		}
	}
	if err := p.db.Close(); err != nil {
		return model.NewStorageError("close", err)
	}
	return nil
}

// DB exposes the underlying *sql.DB for callers (notably query.Reader)
// that only ever issue read-only, non-transactional queries.
func (p *Pool) DB() *sql.DB { return p.db }

// prepare returns the cached *sql.Stmt for tag, preparing it against
// the pool's connection on first use. The cache is a fixed-size array
// indexed by tag, so lookups never hash and never evict.
func (p *Pool) prepare(ctx context.Context, tag StatementTag) (*sql.Stmt, error) {
	if stmt := p.stmts[tag]; stmt != nil {
		return stmt, nil
	}
	stmt, err := p.db.PrepareContext(ctx, queryText[tag])
	if err != nil {
		return nil, model.NewStorageError("prepare", err)
	}
	p.stmts[tag] = stmt
	return stmt, nil
}

// stmtFor returns a statement bound to q: if q is a *sql.Tx, the
// cached statement is rebound to that transaction (cheap; does not
// re-parse SQL); otherwise the cached statement itself is returned.
func (p *Pool) stmtFor(ctx context.Context, q execer, tag StatementTag) (*sql.Stmt, error) {
	stmt, err := p.prepare(ctx, tag)
	if err != nil {
		return nil, err
	}
	if tx, ok := q.(*sql.Tx); ok {
		return tx.StmtContext(ctx, stmt), nil
	}
	return stmt, nil
}

// Insert executes tag (expected to be an INSERT) and returns the new
// row's id.
func (p *Pool) Insert(ctx context.Context, q execer, tag StatementTag, args ...any) (int64, error) {
	timer := prometheus.NewTimer(statementDurations.WithLabelValues(statementNames[tag]))
	defer timer.ObserveDuration()

	stmt, err := p.stmtFor(ctx, q, tag)
	if err != nil {
		statementErrors.WithLabelValues(statementNames[tag]).Inc()
		return 0, err
	}
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		statementErrors.WithLabelValues(statementNames[tag]).Inc()
		return 0, model.NewStorageError("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		statementErrors.WithLabelValues(statementNames[tag]).Inc()
		return 0, model.NewStorageError("insert", err)
	}
	return id, nil
}

// Execute runs tag (an UPDATE, DELETE, or an INSERT whose row id is of
// no interest) and discards the result.
func (p *Pool) Execute(ctx context.Context, q execer, tag StatementTag, args ...any) error {
	timer := prometheus.NewTimer(statementDurations.WithLabelValues(statementNames[tag]))
	defer timer.ObserveDuration()

	stmt, err := p.stmtFor(ctx, q, tag)
	if err != nil {
		statementErrors.WithLabelValues(statementNames[tag]).Inc()
		return err
	}
	if _, err := stmt.ExecContext(ctx, args...); err != nil {
		statementErrors.WithLabelValues(statementNames[tag]).Inc()
		return model.NewStorageError("exec", err)
	}
	return nil
}

// QueryRow runs tag and returns the single-row cursor for the caller
// to Scan. Use model.ErrNotFound translation at the call site via
// ScanErr.
func (p *Pool) QueryRow(ctx context.Context, q execer, tag StatementTag, args ...any) (*sql.Row, error) {
	stmt, err := p.stmtFor(ctx, q, tag)
	if err != nil {
		return nil, err
	}
	return stmt.QueryRowContext(ctx, args...), nil
}

// QueryRows runs tag and returns the multi-row cursor.
func (p *Pool) QueryRows(ctx context.Context, q execer, tag StatementTag, args ...any) (*sql.Rows, error) {
	stmt, err := p.stmtFor(ctx, q, tag)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, model.NewStorageError("query", err)
	}
	return rows, nil
}

// QueryRowsRaw runs an ad-hoc SELECT outside the tag cache, for
// queries private to their caller (so adding them to the closed
// StatementTag vocabulary would only add indirection) — see
// enumreg.Registry.loadDomain and translate.SequentialAllocator.
func (p *Pool) QueryRowsRaw(ctx context.Context, q execer, query string, args ...any) (*sql.Rows, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, model.NewStorageError("query", err)
	}
	return rows, nil
}

// ExecuteRaw runs an ad-hoc statement outside the tag cache. Used by
// translate.SequentialAllocator to create and update its element id
// counter table, a private statement that has no business in the
// shared StatementTag vocabulary.
func (p *Pool) ExecuteRaw(ctx context.Context, q execer, query string, args ...any) error {
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return model.NewStorageError("exec", err)
	}
	return nil
}

// ScanErr turns sql.ErrNoRows into model.ErrNotFound and anything else
// into a StorageError. Exported for query.Reader to reuse.
func ScanErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return model.NewStorageError("query", err)
}
