// Package translate lowers a model.AnimationEdit into the fixed
// internal/update opcode sequence that applies it.
package translate

import (
	"context"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/model"
)

// IDAllocator mints externally visible element ids for brush strokes
// that arrive without one. Injected so the translator stays ignorant
// of how the host application numbers its elements.
type IDAllocator interface {
	NextElementID(ctx context.Context) (int64, error)
}

// SequentialAllocator is the default IDAllocator: a single-row counter
// table, read and advanced in a transaction of its own. Lower calls it
// while lowering a stroke that carries no element id, before and apart
// from the interp.Store transaction that applies the edit, since
// allocation and application are independent concerns here.
type SequentialAllocator struct {
	pool *dbpool.Pool
}

// NewSequentialAllocator returns an allocator backed by pool. It
// creates its counter table on first use.
func NewSequentialAllocator(pool *dbpool.Pool) *SequentialAllocator {
	return &SequentialAllocator{pool: pool}
}

const ensureCounterTable = `
CREATE TABLE IF NOT EXISTS ElementIdCounter (Next INTEGER NOT NULL);
INSERT INTO ElementIdCounter (Next)
	SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM ElementIdCounter);
`

// NextElementID returns the next unused element id and advances the
// counter, both inside one transaction.
func (a *SequentialAllocator) NextElementID(ctx context.Context) (int64, error) {
	if err := a.pool.ExecuteRaw(ctx, a.pool.DB(), ensureCounterTable); err != nil {
		return 0, err
	}
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var next int64
	row, err := a.pool.QueryRowsRaw(ctx, tx, "SELECT Next FROM ElementIdCounter")
	if err != nil {
		return 0, err
	}
	if !row.Next() {
		row.Close()
		return 0, model.ErrNotFound
	}
	if err := row.Scan(&next); err != nil {
		row.Close()
		return 0, model.NewStorageError("query", err)
	}
	row.Close()

	if err := a.pool.ExecuteRaw(ctx, tx, "UPDATE ElementIdCounter SET Next = ?", next+1); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, model.NewStorageError("commit", err)
	}
	return next, nil
}
