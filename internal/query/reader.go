// Package query is a read-only reconstruction of domain entities from
// the joined relational tables. A Reader never touches
// internal/evalstack and never opens a transaction — every read runs
// directly against the pool's *sql.DB.
package query

import (
	"context"
	"database/sql"
	"time"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/enumreg"
	"github.com/flodb/flostore/internal/model"
)

// Reader answers read operations against one document.
type Reader struct {
	pool  *dbpool.Pool
	enums *enumreg.Registry
}

// New returns a Reader backed by pool and enums.
func New(pool *dbpool.Pool, enums *enumreg.Registry) *Reader {
	return &Reader{pool: pool, enums: enums}
}

// AnimationSize returns the singleton animation's canvas size.
func (r *Reader) AnimationSize(ctx context.Context) (width, height float64, err error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectAnimationSize, animationID)
	if err != nil {
		return 0, 0, err
	}
	if err := row.Scan(&width, &height); err != nil {
		return 0, 0, dbpool.ScanErr(err)
	}
	return width, height, nil
}

// AnimationDuration returns the singleton animation's duration.
func (r *Reader) AnimationDuration(ctx context.Context) (time.Duration, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectAnimationDuration, animationID)
	if err != nil {
		return 0, err
	}
	var micros float64
	if err := row.Scan(&micros); err != nil {
		return 0, dbpool.ScanErr(err)
	}
	return time.Duration(micros) * time.Microsecond, nil
}

// AnimationFrameLength returns the singleton animation's frame length.
func (r *Reader) AnimationFrameLength(ctx context.Context) (time.Duration, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectAnimationFrameLength, animationID)
	if err != nil {
		return 0, err
	}
	var ns int64
	if err := row.Scan(&ns); err != nil {
		return 0, dbpool.ScanErr(err)
	}
	return time.Duration(ns), nil
}

// AssignedLayerIDs lists every externally assigned layer id belonging
// to the animation.
func (r *Reader) AssignedLayerIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectAssignedLayerIDs, animationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// EditLogLength returns the number of entries in the edit log.
func (r *Reader) EditLogLength(ctx context.Context) (int64, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectEditLogLength)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, dbpool.ScanErr(err)
	}
	return n, nil
}

// EditLogValues reconstructs up to limit edit log entries starting at
// offset, ordered by id ascending, joining every side table via LEFT
// OUTER JOIN.
func (r *Reader) EditLogValues(ctx context.Context, offset, limit int64) ([]model.EditLogEntry, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectEditLogValues, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.EditLogEntry
	for rows.Next() {
		var (
			id                                    int64
			editCode                              int64
			layer, atTime, brush, props, elementID sql.NullInt64
			drawingStyle                          sql.NullInt64
		)
		if err := rows.Scan(&id, &editCode, &layer, &atTime, &drawingStyle, &brush, &props, &elementID); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		kind, err := r.editKind(ctx, editCode)
		if err != nil {
			return nil, err
		}
		entry := model.EditLogEntry{ID: id, Kind: kind}
		if layer.Valid {
			entry.HasLayer, entry.LayerID = true, layer.Int64
		}
		if atTime.Valid {
			entry.HasWhen, entry.When = true, time.Duration(atTime.Int64)*time.Microsecond
		}
		if brush.Valid {
			entry.HasBrush, entry.BrushID = true, brush.Int64
			if drawingStyle.Valid {
				styleName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainDrawingStyle, drawingStyle.Int64)
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, model.ErrNotFound
				}
				entry.DrawingStyle, _ = model.DrawingStyleByName(styleName)
			}
		}
		if props.Valid {
			entry.HasBrushProperties, entry.BrushPropertiesID = true, props.Int64
		}
		if elementID.Valid {
			entry.HasElementID, entry.ElementID = true, elementID.Int64
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// EditLogRawPoints returns the raw-points blob attached to an edit, if any.
func (r *Reader) EditLogRawPoints(ctx context.Context, editID int64) ([]byte, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectEditLogRawPoints, editID)
	if err != nil {
		return nil, err
	}
	var blob []byte
	if err := row.Scan(&blob); err != nil {
		return nil, dbpool.ScanErr(err)
	}
	return blob, nil
}

// EditLogSize returns the (width, height) recorded by a SetSize edit.
func (r *Reader) EditLogSize(ctx context.Context, editID int64) (width, height float64, err error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectEditLogSize, editID)
	if err != nil {
		return 0, 0, err
	}
	if err := row.Scan(&width, &height); err != nil {
		return 0, 0, dbpool.ScanErr(err)
	}
	return width, height, nil
}

// Color reconstructs a stored color by its row id.
func (r *Reader) Color(ctx context.Context, colorID int64) (model.Color, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectColor, colorID)
	if err != nil {
		return model.Color{}, err
	}
	var kindCode int64
	var rr, g, b, h, s, l sql.NullFloat64
	if err := row.Scan(&kindCode, &rr, &g, &b, &h, &s, &l); err != nil {
		return model.Color{}, dbpool.ScanErr(err)
	}
	kindName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainColorType, kindCode)
	if err != nil {
		return model.Color{}, err
	}
	if !ok {
		return model.Color{}, model.ErrNotFound
	}
	kind, _ := model.ColorKindByName(kindName)
	if kind == model.ColorHsluv {
		return model.Color{Kind: kind, H: h.Float64, S: s.Float64, L: l.Float64}, nil
	}
	return model.Color{Kind: kind, R: rr.Float64, G: g.Float64, B: b.Float64}, nil
}

// BrushDefinition reconstructs a stored brush by its row id.
func (r *Reader) BrushDefinition(ctx context.Context, brushID int64) (model.BrushDefinition, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectBrushDefinition, brushID)
	if err != nil {
		return model.BrushDefinition{}, err
	}
	var kindCode int64
	var minW, maxW, scale sql.NullFloat64
	if err := row.Scan(&kindCode, &minW, &maxW, &scale); err != nil {
		return model.BrushDefinition{}, dbpool.ScanErr(err)
	}
	kindName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainBrushType, kindCode)
	if err != nil {
		return model.BrushDefinition{}, err
	}
	if !ok {
		return model.BrushDefinition{}, model.ErrNotFound
	}
	kind, _ := model.BrushKindByName(kindName)
	if kind == model.BrushInk {
		return model.InkBrush(minW.Float64, maxW.Float64, scale.Float64), nil
	}
	return model.SimpleBrush(), nil
}

// BrushProperties reconstructs stored brush properties by row id.
func (r *Reader) BrushProperties(ctx context.Context, propsID int64) (size, opacity float64, colorID int64, err error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectBrushProperties, propsID)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := row.Scan(&size, &opacity, &colorID); err != nil {
		return 0, 0, 0, dbpool.ScanErr(err)
	}
	return size, opacity, colorID, nil
}

// NearestKeyFrame returns the keyframe with the largest start time at
// or before when, per invariant 3.
func (r *Reader) NearestKeyFrame(ctx context.Context, layerID int64, when time.Duration) (model.Keyframe, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectNearestKeyFrame, layerID, when.Microseconds())
	if err != nil {
		return model.Keyframe{}, err
	}
	var id, atTime int64
	if err := row.Scan(&id, &atTime); err != nil {
		return model.Keyframe{}, dbpool.ScanErr(err)
	}
	return model.Keyframe{ID: id, LayerID: layerID, StartTime: time.Duration(atTime) * time.Microsecond}, nil
}

// KeyframeTimes lists keyframe start times for layerID in [from, to).
func (r *Reader) KeyframeTimes(ctx context.Context, layerID int64, from, to time.Duration) ([]time.Duration, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectKeyFrameTimes, layerID, from.Microseconds(), to.Microseconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Duration
	for rows.Next() {
		var micros int64
		if err := rows.Scan(&micros); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		times = append(times, time.Duration(micros)*time.Microsecond)
	}
	return times, rows.Err()
}

// VectorElementsBefore lists elements of keyframeID at or before when,
// ordered by element id ascending, the order a renderer composites
// them in.
func (r *Reader) VectorElementsBefore(ctx context.Context, keyframeID int64, when time.Duration) ([]model.VectorElement, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectVectorElementsBefore, keyframeID, when.Microseconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elems []model.VectorElement
	for rows.Next() {
		var (
			id, typeCode, atTime                  int64
			brush, drawingStyle, props, assignedID sql.NullInt64
		)
		if err := rows.Scan(&id, &typeCode, &atTime, &brush, &drawingStyle, &props, &assignedID); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		kindName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainVectorElementType, typeCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, model.ErrNotFound
		}
		kind, _ := model.VectorElementKindByName(kindName)
		elem := model.VectorElement{
			ID:           id,
			KeyframeID:   keyframeID,
			Kind:         kind,
			RelativeTime: time.Duration(atTime) * time.Microsecond,
		}
		if brush.Valid {
			elem.HasBrush, elem.BrushID = true, brush.Int64
			if drawingStyle.Valid {
				styleName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainDrawingStyle, drawingStyle.Int64)
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, model.ErrNotFound
				}
				elem.DrawingStyle, _ = model.DrawingStyleByName(styleName)
			}
		}
		if props.Valid {
			elem.HasBrushProps, elem.BrushPropertiesID = true, props.Int64
		}
		if assignedID.Valid {
			elem.HasAssignedID, elem.AssignedID = true, assignedID.Int64
		}
		elems = append(elems, elem)
	}
	return elems, rows.Err()
}

// BrushPoints lists the ordered control points of an element.
func (r *Reader) BrushPoints(ctx context.Context, elementID int64) ([]model.BrushPoint, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectBrushPoints, elementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.BrushPoint
	for rows.Next() {
		var p model.BrushPoint
		if err := rows.Scan(&p.CP1.X, &p.CP1.Y, &p.CP2.X, &p.CP2.Y, &p.Position.X, &p.Position.Y, &p.Width); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// MotionsForElement lists motion ids attached to an element.
func (r *Reader) MotionsForElement(ctx context.Context, elementID int64) ([]int64, error) {
	return r.queryIDs(ctx, dbpool.SelectMotionsForElement, elementID)
}

// ElementsForMotion lists element ids attached to a motion.
func (r *Reader) ElementsForMotion(ctx context.Context, motionID int64) ([]int64, error) {
	return r.queryIDs(ctx, dbpool.SelectElementsForMotion, motionID)
}

func (r *Reader) queryIDs(ctx context.Context, tag dbpool.StatementTag, arg int64) ([]int64, error) {
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), tag, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Motion reconstructs a motion's type and optional origin.
func (r *Reader) Motion(ctx context.Context, motionID int64) (model.Motion, error) {
	row, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectMotion, motionID)
	if err != nil {
		return model.Motion{}, err
	}
	var typeCode int64
	var x, y sql.NullFloat64
	if err := row.Scan(&typeCode, &x, &y); err != nil {
		return model.Motion{}, dbpool.ScanErr(err)
	}
	kindName, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainMotionType, typeCode)
	if err != nil {
		return model.Motion{}, err
	}
	if !ok {
		return model.Motion{}, model.ErrNotFound
	}
	kind, _ := model.MotionKindByName(kindName)
	m := model.Motion{ID: motionID, Kind: kind}
	if x.Valid && y.Valid {
		m.HasOrigin = true
		m.Origin = model.Point2D{X: x.Float64, Y: y.Float64}
	}
	return m, nil
}

// MotionTimePoints lists the ordered samples of one of a motion's path
// types, ordered by point index ascending.
func (r *Reader) MotionTimePoints(ctx context.Context, motionID int64, path model.MotionPathKind) ([]model.TimePoint, error) {
	tag := path.Tag()
	codeRow, err := r.pool.QueryRow(ctx, r.pool.DB(), dbpool.SelectEnumValue, string(tag.Domain), tag.Name)
	if err != nil {
		return nil, err
	}
	var code int64
	if err := codeRow.Scan(&code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // path type never registered, so no motion has points of it
		}
		return nil, dbpool.ScanErr(err)
	}
	rows, err := r.pool.QueryRows(ctx, r.pool.DB(), dbpool.SelectMotionTimePoints, motionID, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.TimePoint
	for rows.Next() {
		var p model.TimePoint
		if err := rows.Scan(&p.X, &p.Y, &p.Milliseconds); err != nil {
			return nil, model.NewStorageError("query", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *Reader) editKind(ctx context.Context, code int64) (model.EditKind, error) {
	name, ok, err := r.enums.TagFor(ctx, r.pool.DB(), model.DomainEdit, code)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, model.ErrNotFound
	}
	kind, _ := model.EditKindByName(name)
	return kind, nil
}

// animationID is the row id of the single Animation every store seeds
// on bootstrap.
const animationID int64 = 0
