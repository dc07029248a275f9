package flostore

import (
	"fmt"
	"time"
)

// Config configures a Store. There is no flag-binding layer: flostore
// is an embedded library, not a CLI, so a host application wires these
// fields directly, or from its own flag/env layer.
type Config struct {
	// Path names the SQLite database file and is shown by String.
	// Neither Open nor New reads it: Open takes the file path as its
	// own argument, and New always opens an in-memory database.
	Path string

	// MaxOpenConns bounds the number of open connections to the
	// backing database. SQLite benefits from exactly one writer, but
	// tests sometimes want a small pool to exercise read concurrency
	// alongside the single writer.
	MaxOpenConns int

	// BusyTimeout bounds how long a write waits for SQLite's write
	// lock before failing.
	BusyTimeout time.Duration
}

// DefaultConfig returns a Config with the defaults a typical embedding
// application wants.
func DefaultConfig() *Config {
	return &Config{
		MaxOpenConns: 4,
		BusyTimeout:  5 * time.Second,
	}
}

// Preflight fills in any zero or negative field that has a sane
// default. It rejects no configuration and always returns nil.
func (c *Config) Preflight() error {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 4
	}
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
	return nil
}

func (c *Config) String() string {
	if c.Path == "" {
		return fmt.Sprintf("flostore.Config{in-memory, MaxOpenConns=%d}", c.MaxOpenConns)
	}
	return fmt.Sprintf("flostore.Config{Path=%s, MaxOpenConns=%d}", c.Path, c.MaxOpenConns)
}
