package flostore

import (
	"context"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/enumreg"
	"github.com/flodb/flostore/internal/interp"
	"github.com/flodb/flostore/internal/model"
	"github.com/flodb/flostore/internal/query"
	"github.com/flodb/flostore/internal/translate"
	"github.com/flodb/flostore/internal/update"
)

// Re-exported domain types, so callers only ever need to import
// flodb/flostore itself for everyday use.
type (
	AnimationEdit   = model.AnimationEdit
	PaintEdit       = model.PaintEdit
	SelectBrushEdit = model.SelectBrushEdit
	BrushStrokeEdit = model.BrushStrokeEdit
	MotionEdit      = model.MotionEdit
	SetPathEdit     = model.SetPathEdit

	EditKind          = model.EditKind
	DrawingStyle      = model.DrawingStyle
	BrushKind         = model.BrushKind
	ColorKind         = model.ColorKind
	MotionKind        = model.MotionKind
	MotionPathKind    = model.MotionPathKind
	VectorElementKind = model.VectorElementKind

	Color           = model.Color
	BrushDefinition = model.BrushDefinition
	BrushProperties = model.BrushProperties
	BrushPoint      = model.BrushPoint
	Point2D         = model.Point2D
	TimePoint       = model.TimePoint
	RawPoint        = model.RawPoint

	Layer         = model.Layer
	Keyframe      = model.Keyframe
	VectorElement = model.VectorElement
	Motion        = model.Motion
	EditLogEntry  = model.EditLogEntry
)

// Error-kind re-exports and the detectors that go with them.
var (
	ErrNotFound      = model.ErrNotFound
	IsNotFound       = model.IsNotFound
	IsStorage        = model.IsStorage
	IsMalformedBatch = model.IsMalformedBatch
)

// Enum-vocabulary re-exports, so callers never have to import
// internal/model directly to name an edit, brush, color or motion kind.
const (
	EditSetSize                   = model.EditSetSize
	EditAddNewLayer               = model.EditAddNewLayer
	EditRemoveLayer               = model.EditRemoveLayer
	EditLayerAddKeyFrame          = model.EditLayerAddKeyFrame
	EditLayerRemoveKeyFrame       = model.EditLayerRemoveKeyFrame
	EditLayerPaintSelectBrush     = model.EditLayerPaintSelectBrush
	EditLayerPaintBrushProperties = model.EditLayerPaintBrushProperties
	EditLayerPaintBrushStroke     = model.EditLayerPaintBrushStroke
	EditMotionCreate              = model.EditMotionCreate
	EditMotionSetType             = model.EditMotionSetType
	EditMotionSetOrigin           = model.EditMotionSetOrigin
	EditMotionSetPath             = model.EditMotionSetPath
	EditMotionAttach              = model.EditMotionAttach
	EditMotionDetach              = model.EditMotionDetach
	EditMotionDelete              = model.EditMotionDelete

	StyleDraw  = model.StyleDraw
	StyleErase = model.StyleErase

	BrushSimple = model.BrushSimple
	BrushInk    = model.BrushInk

	ColorRgb   = model.ColorRgb
	ColorHsluv = model.ColorHsluv

	LayerVector = model.LayerVector

	ElementBrushDefinition = model.ElementBrushDefinition
	ElementBrushProperties = model.ElementBrushProperties
	ElementBrushStroke     = model.ElementBrushStroke

	MotionNone           = model.MotionNone
	MotionReverse        = model.MotionReverse
	MotionTranslate      = model.MotionTranslate
	MotionScale          = model.MotionScale
	MotionRotate         = model.MotionRotate
	MotionStopAndRestart = model.MotionStopAndRestart

	PathPosition = model.PathPosition
	PathVelocity = model.PathVelocity
)

// RGB and HSLUV construct a Color of the matching kind.
func RGB(r, g, b float64) Color  { return model.RGB(r, g, b) }
func HSLUV(h, s, l float64) Color { return model.HSLUV(h, s, l) }

// SimpleBrush and InkBrush construct a BrushDefinition of the matching kind.
func SimpleBrush() BrushDefinition { return model.SimpleBrush() }
func InkBrush(minWidth, maxWidth, scaleUpDistance float64) BrushDefinition {
	return model.InkBrush(minWidth, maxWidth, scaleUpDistance)
}

// Store is the top-level handle to one animation document. It wires
// the relational store adapter, the enum registry, the update
// interpreter, the query layer and the edit translator into the single
// type most callers touch.
type Store struct {
	pool   *dbpool.Pool
	enums  *enumreg.Registry
	interp *interp.Store
	query  *query.Reader
	ids    translate.IDAllocator
}

// Open opens (creating if necessary) a SQLite-backed store at path,
// applying cfg's connection settings.
func Open(ctx context.Context, path string, cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Preflight(); err != nil {
		return nil, err
	}
	pool, err := dbpool.OpenPath(ctx, path,
		dbpool.WithMaxOpenConns(cfg.MaxOpenConns),
		dbpool.WithBusyTimeout(cfg.BusyTimeout),
	)
	if err != nil {
		return nil, err
	}
	return newStore(pool), nil
}

// New opens a throwaway, process-local in-memory store. Intended for
// tests and for callers that persist a document by some other means
// (e.g. snapshotting) than a SQLite file on disk.
func New(ctx context.Context, cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Preflight(); err != nil {
		return nil, err
	}
	pool, err := dbpool.OpenInMemory(ctx,
		dbpool.WithMaxOpenConns(cfg.MaxOpenConns),
		dbpool.WithBusyTimeout(cfg.BusyTimeout),
	)
	if err != nil {
		return nil, err
	}
	return newStore(pool), nil
}

func newStore(pool *dbpool.Pool) *Store {
	enums := enumreg.New(pool)
	return &Store{
		pool:   pool,
		enums:  enums,
		interp: interp.New(pool, enums),
		query:  query.New(pool, enums),
		ids:    translate.NewSequentialAllocator(pool),
	}
}

// Close releases the backing database connection.
func (s *Store) Close() error { return s.pool.Close() }

// Edit lowers edit into its update operations and applies them in one
// transaction. This is the primary write path for callers that don't
// need explicit queue batching; BeginQueuing/ExecuteQueue/FlushPending
// are available directly on Queue for callers that do.
func (s *Store) Edit(ctx context.Context, edit model.AnimationEdit) error {
	ops, err := translate.Lower(ctx, edit, s.ids)
	if err != nil {
		return err
	}
	return s.interp.Update(ctx, ops)
}

// Update applies a caller-assembled sequence of low-level operations
// directly, bypassing the translator. Exposed for callers (and tests)
// that already hold a []update.Op, e.g. replaying a previously lowered
// edit.
func (s *Store) Update(ctx context.Context, ops []update.Op) error {
	return s.interp.Update(ctx, ops)
}

// Queue returns the interpreter's update-queue controls: BeginQueuing
// defers subsequent Edit/Update calls until ExecuteQueue or
// FlushPending drains them.
func (s *Store) Queue() *interp.Store { return s.interp }

// Reader exposes the read-only query layer.
func (s *Store) Reader() *query.Reader { return s.query }
