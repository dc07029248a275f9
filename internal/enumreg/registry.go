// Package enumreg implements a process-local cache over the
// EnumerationDescriptions table that maps symbolic tags to stable,
// monotonically assigned integer codes.
package enumreg

import (
	"context"
	"database/sql"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/model"
)

// Registry caches tag → code and (field, code) → tag lookups in
// front of the EnumerationDescriptions table. It is write-once per
// tag/field and read-mostly thereafter.
type Registry struct {
	pool *dbpool.Pool

	codes   map[model.Tag]int64
	reverse map[model.Domain]map[int64]string
}

// New returns a Registry backed by pool. The caches start empty; they
// fill lazily as tags are resolved.
func New(pool *dbpool.Pool) *Registry {
	return &Registry{
		pool:    pool,
		codes:   make(map[model.Tag]int64),
		reverse: make(map[model.Domain]map[int64]string),
	}
}

// execer is the subset of *sql.Tx/*sql.DB that CodeFor needs. Passing
// the transaction in (rather than always going through pool.DB())
// means enum lookups participate in the interpreter's batch
// transaction instead of racing it.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CodeFor resolves tag to its integer code, allocating one if this is
// the first time tag has been referenced. The allocated code is stable
// for the life of the store and across reopens, and codes within one
// domain are contiguous from zero in first-reference order.
func (r *Registry) CodeFor(ctx context.Context, q execer, tag model.Tag) (int64, error) {
	if code, ok := r.codes[tag]; ok {
		return code, nil
	}

	row, err := r.pool.QueryRow(ctx, q, dbpool.SelectEnumValue, string(tag.Domain), tag.Name)
	if err != nil {
		return 0, err
	}
	var code int64
	if err := row.Scan(&code); err != nil {
		if err != sql.ErrNoRows {
			return 0, model.NewStorageError("query", err)
		}
		// Not seen before: insert it and select back the value the
		// database assigned (IFNULL(MAX(Value)+1, 0) per domain).
		if err := r.pool.Execute(ctx, q, dbpool.InsertEnumValue, string(tag.Domain), string(tag.Domain), tag.Name, ""); err != nil {
			return 0, err
		}
		row, err := r.pool.QueryRow(ctx, q, dbpool.SelectEnumValue, string(tag.Domain), tag.Name)
		if err != nil {
			return 0, err
		}
		if err := row.Scan(&code); err != nil {
			return 0, model.NewStorageError("query", err)
		}
	}

	r.codes[tag] = code
	r.cacheReverse(tag.Domain, code, tag.Name)
	return code, nil
}

// TagFor resolves a (field, code) pair back to the API name that
// produced it, building and caching the reverse map for that domain
// on first use. It returns false if the domain has no such code.
func (r *Registry) TagFor(ctx context.Context, q execer, domain model.Domain, code int64) (string, bool, error) {
	names, ok := r.reverse[domain]
	if !ok {
		var err error
		names, err = r.loadDomain(ctx, q, domain)
		if err != nil {
			return "", false, err
		}
	}
	name, ok := names[code]
	return name, ok, nil
}

func (r *Registry) loadDomain(ctx context.Context, q execer, domain model.Domain) (map[int64]string, error) {
	rows, err := r.pool.QueryRowsRaw(ctx, q, selectAllForDomainTag, string(domain))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var value int64
		var name string
		if err := rows.Scan(&value, &name); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		names[value] = name
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewStorageError("query", err)
	}

	r.reverse[domain] = names
	return names, nil
}

func (r *Registry) cacheReverse(domain model.Domain, code int64, name string) {
	names, ok := r.reverse[domain]
	if !ok {
		return // reverse map for this domain hasn't been loaded yet; loadDomain will pick this row up itself
	}
	names[code] = name
}

// selectAllForDomainTag is not part of the closed statement vocabulary
// in internal/dbpool because it is only ever used here, to build the
// reverse map in one round trip instead of one SELECT per candidate
// name (the approach original_source's value_for_enum takes, looping
// over Vec::<DbEnum>::from(enum_type)).
const selectAllForDomainTag = "SELECT Value, ApiName FROM EnumerationDescriptions WHERE FieldName = ?"
