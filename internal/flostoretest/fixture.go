// Package flostoretest provides a self-contained, in-memory Store for
// use in tests: one constructor that returns a ready-to-use handle
// and registers its cleanup with t, rather than requiring every test to thread
// context.Context and error handling through its own setup.
package flostoretest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flodb/flostore"
)

// Fixture wraps a throwaway in-memory Store with convenience helpers
// for tests.
type Fixture struct {
	*flostore.Store
}

// NewFixture opens an in-memory store and registers its cleanup with
// t, mirroring base.Fixture's t.Cleanup-driven teardown.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	ctx := context.Background()
	store, err := flostore.New(ctx, flostore.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &Fixture{Store: store}
}

// MustEdit applies edit and fails the test immediately on error.
func (f *Fixture) MustEdit(t *testing.T, edit flostore.AnimationEdit) {
	t.Helper()
	require.NoError(t, f.Edit(context.Background(), edit))
}
