package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// StorageError wraps any failure surfaced by the backing relational
// store: I/O, constraint violations, prepared-statement errors, or
// connection-state problems. Kind is a short, stable label (e.g.
// "prepare", "insert", "query", "tx") useful for metrics labels and
// log fields without parsing Detail's text.
type StorageError struct {
	Kind   string
	Detail error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Kind, e.Detail)
}

// Unwrap lets errors.Is/errors.As see through to the underlying driver error.
func (e *StorageError) Unwrap() error { return e.Detail }

// NewStorageError wraps err as a StorageError of the given kind. It
// returns nil if err is nil, so call sites can write
// "return model.NewStorageError("insert", err)" unconditionally.
func NewStorageError(kind string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Kind: kind, Detail: errors.WithStack(err)}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) (se *StorageError, ok bool) {
	return se, errors.As(err, &se)
}

// ErrNotFound is returned by query-layer lookups that expect exactly
// one row and find none.
var ErrNotFound = errors.New("flostore: not found")

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// MalformedBatchError indicates the evaluation stack was left non-empty
// at a batch boundary — a symptom of a caller submitting an Op sequence
// that doesn't lower from a single, well-formed AnimationEdit. Stack
// underflow is not reported with this error: a pop from an empty stack
// yields id 0 (or -1 from PopN) and the op goes on with that id.
type MalformedBatchError struct {
	Reason string
}

func (e *MalformedBatchError) Error() string {
	return fmt.Sprintf("flostore: malformed batch: %s", e.Reason)
}

// IsMalformedBatch reports whether err is (or wraps) a MalformedBatchError.
func IsMalformedBatch(err error) (mbe *MalformedBatchError, ok bool) {
	return mbe, errors.As(err, &mbe)
}

// EncodingError indicates a raw-points blob could not be serialized
// or deserialized.
type EncodingError struct {
	Detail error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("flostore: encoding: %v", e.Detail)
}

// Unwrap lets errors.Is/errors.As see through to the underlying codec error.
func (e *EncodingError) Unwrap() error { return e.Detail }

// NewEncodingError wraps err as an EncodingError. Returns nil if err is nil.
func NewEncodingError(err error) error {
	if err == nil {
		return nil
	}
	return &EncodingError{Detail: err}
}
