// Package interp is the update interpreter: it executes closed
// internal/update.Op batches against the relational store adapter
// (internal/dbpool), resolving symbolic tags via internal/enumreg and
// threading freshly minted row ids through internal/evalstack. The
// update queue is folded in here as a pending buffer on Store itself,
// rather than delegated to a separate collaborator.
package interp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/enumreg"
	"github.com/flodb/flostore/internal/evalstack"
	"github.com/flodb/flostore/internal/model"
	"github.com/flodb/flostore/internal/update"
)

// animationID is the row id of the single Animation every store
// seeds on bootstrap (dbpool.schema.go's seedData).
const animationID int64 = 0

// Store executes update batches against one document. It is not safe
// for concurrent use from multiple goroutines; a caller that wants
// concurrent documents opens one Store per dbpool.Pool.
type Store struct {
	pool  *dbpool.Pool
	enums *enumreg.Registry
	stack *evalstack.Stack

	queuing bool
	pending []update.Op
}

// New returns a Store backed by pool and enums.
func New(pool *dbpool.Pool, enums *enumreg.Registry) *Store {
	return &Store{
		pool:  pool,
		enums: enums,
		stack: evalstack.New(),
	}
}

// Update executes ops immediately, or appends them to the pending
// buffer if BeginQueuing has been called and not yet drained.
func (s *Store) Update(ctx context.Context, ops []update.Op) error {
	if s.queuing {
		s.pending = append(s.pending, ops...)
		return nil
	}
	return s.runBatch(ctx, ops)
}

// BeginQueuing installs a pending buffer; subsequent Update calls
// append rather than execute until ExecuteQueue or FlushPending
// drains it.
func (s *Store) BeginQueuing() {
	s.queuing = true
	s.pending = nil
}

// ExecuteQueue drains and executes the pending buffer once, in FIFO
// order, leaving queuing active for further Update calls. It is a
// no-op if nothing is pending.
func (s *Store) ExecuteQueue(ctx context.Context) error {
	ops := s.pending
	s.pending = nil
	if len(ops) == 0 {
		return nil
	}
	return s.runBatch(ctx, ops)
}

// FlushPending is identical to ExecuteQueue except that it leaves
// queuing disabled afterward.
func (s *Store) FlushPending(ctx context.Context) error {
	ops := s.pending
	s.pending = nil
	s.queuing = false
	if len(ops) == 0 {
		return nil
	}
	return s.runBatch(ctx, ops)
}

// runBatch wraps ops in one transaction and enforces that the
// evaluation stack returns to empty once every op in the batch has run.
func (s *Store) runBatch(ctx context.Context, ops []update.Op) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	s.stack.Reset()
	for _, op := range ops {
		if err := s.exec(ctx, tx, op); err != nil {
			return err
		}
	}

	if !s.stack.IsEmpty() {
		n := s.stack.Len()
		s.stack.Reset()
		return &model.MalformedBatchError{Reason: fmt.Sprintf("%d entries left on the evaluation stack at batch boundary", n)}
	}

	if err := tx.Commit(); err != nil {
		return model.NewStorageError("commit", err)
	}
	return nil
}

// execer is the view of *sql.Tx that enumreg and dbpool need; kept
// local so exec.go doesn't have to import database/sql just to name
// the transaction type.
type execer = *sql.Tx
