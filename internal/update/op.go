// Package update defines the closed vocabulary of low-level update
// operations that apply a single change to the relational store. Each
// Op is a plain, serializable value; internal/interp is the only
// package that gives them meaning.
//
// Op is realized as one struct with a Kind tag and a handful of
// generically-named operand fields, rather than as one Go type per
// operation: Go has no sum types, and a struct-per-op design would
// force internal/translate and internal/interp to juggle ~50 small
// named types for no behavioral gain.
package update

import (
	"time"

	"github.com/flodb/flostore/internal/model"
)

// Kind identifies which operation an Op performs.
type Kind int

// The update vocabulary, grouped by the entity each group affects.
const (
	Pop Kind = iota

	PushLayerID
	PushLayerForAssignedID

	PushEditType
	PopEditLogSetSize
	PushEditLogLayer
	PushEditLogWhen
	PopEditLogBrush
	PopEditLogBrushProperties
	PushEditLogElementID
	PushRawPoints
	PushEditLogMotionOrigin
	PushEditLogMotionType
	PushEditLogMotionElement
	PushEditLogMotionPath

	PushColorType
	PushRgb
	PushHsluv

	PushBrushType
	PushInkBrush
	PushBrushProperties

	PushLayerType
	PushAssignLayer
	PopAddKeyFrame
	PopRemoveKeyFrame
	PopDeleteLayer
	PushNearestKeyFrame

	PushVectorElementType
	PushElementAssignID
	PopVectorBrushElement
	PopVectorBrushPropertiesElement
	PopBrushPoints

	PushTimePoint
	CreateMotion
	SetMotionType
	SetMotionOrigin
	SetMotionPath
	AddMotionAttachedElement
	DeleteMotion
	DeleteMotionAttachedElement

	UpdateCanvasSize
	UpdateMotionType
)

// Op is one operation in a batch. Exactly the fields relevant to Kind
// are meaningful; the rest are zero.
type Op struct {
	Kind Kind

	// Integer operands: assigned/element/layer/motion ids, point
	// counts. Which one is used depends on Kind; see the constructor
	// for each Kind for the authoritative mapping.
	ID1, ID2 int64
	Count    int

	// Real-valued operands.
	F1, F2, F3 float64

	When time.Duration

	EditKind     model.EditKind
	Style        model.DrawingStyle
	BrushKind    model.BrushKind
	ColorKind    model.ColorKind
	LayerKind    model.LayerKind
	ElementKind  model.VectorElementKind
	MotionKind   model.MotionKind
	PathKind     model.MotionPathKind

	Points    []model.BrushPoint
	RawPoints []model.RawPoint
}

// --- Structural ---

// NewPop discards the top of the evaluation stack.
func NewPop() Op { return Op{Kind: Pop} }

// NewPushLayerID pushes a layer row id already known to the caller.
func NewPushLayerID(layerID int64) Op { return Op{Kind: PushLayerID, ID1: layerID} }

// NewPushLayerForAssignedID looks up and pushes the internal layer row
// id for an externally assigned layer id.
func NewPushLayerForAssignedID(assignedID int64) Op {
	return Op{Kind: PushLayerForAssignedID, ID1: assignedID}
}

// --- Edit log ---

// NewPushEditType inserts a new edit log header row and pushes its id.
func NewPushEditType(kind model.EditKind) Op { return Op{Kind: PushEditType, EditKind: kind} }

// NewPopEditLogSetSize consumes the edit id and records the new canvas size.
func NewPopEditLogSetSize(width, height float64) Op {
	return Op{Kind: PopEditLogSetSize, F1: width, F2: height}
}

// NewPushEditLogLayer side-writes the layer the edit applies to,
// leaving the edit id on the stack.
func NewPushEditLogLayer(layerID int64) Op { return Op{Kind: PushEditLogLayer, ID1: layerID} }

// NewPushEditLogWhen side-writes the edit's timestamp.
func NewPushEditLogWhen(when time.Duration) Op { return Op{Kind: PushEditLogWhen, When: when} }

// NewPopEditLogBrush consumes the brush id and the edit id, recording
// the selected brush and drawing style.
func NewPopEditLogBrush(style model.DrawingStyle) Op {
	return Op{Kind: PopEditLogBrush, Style: style}
}

// NewPopEditLogBrushProperties consumes the brush-properties id and the edit id.
func NewPopEditLogBrushProperties() Op { return Op{Kind: PopEditLogBrushProperties} }

// NewPushEditLogElementID side-writes the element id an edit concerns.
func NewPushEditLogElementID(elementID int64) Op {
	return Op{Kind: PushEditLogElementID, ID1: elementID}
}

// NewPushRawPoints side-writes the serialized raw input samples for a stroke.
func NewPushRawPoints(points []model.RawPoint) Op {
	return Op{Kind: PushRawPoints, RawPoints: points}
}

// NewPushEditLogMotionOrigin side-writes a motion edit's origin.
func NewPushEditLogMotionOrigin(x, y float64) Op {
	return Op{Kind: PushEditLogMotionOrigin, F1: x, F2: y}
}

// NewPushEditLogMotionType side-writes a motion edit's type.
func NewPushEditLogMotionType(kind model.MotionKind) Op {
	return Op{Kind: PushEditLogMotionType, MotionKind: kind}
}

// NewPushEditLogMotionElement side-writes the element a motion edit attaches/detaches.
func NewPushEditLogMotionElement(elementID int64) Op {
	return Op{Kind: PushEditLogMotionElement, ID1: elementID}
}

// NewPushEditLogMotionPath consumes exactly n prior time-point ids, in
// reverse index order so the first pushed point becomes point_index
// n-1, and side-writes them against the edit id.
func NewPushEditLogMotionPath(n int) Op { return Op{Kind: PushEditLogMotionPath, Count: n} }

// --- Color ---

// NewPushColorType inserts a color header row and pushes its id.
func NewPushColorType(kind model.ColorKind) Op { return Op{Kind: PushColorType, ColorKind: kind} }

// NewPushRgb side-writes RGB components against the color id on top of the stack.
func NewPushRgb(r, g, b float64) Op { return Op{Kind: PushRgb, F1: r, F2: g, F3: b} }

// NewPushHsluv side-writes HSLuv components against the color id on top of the stack.
func NewPushHsluv(h, s, l float64) Op { return Op{Kind: PushHsluv, F1: h, F2: s, F3: l} }

// --- Brush ---

// NewPushBrushType inserts a brush header row and pushes its id.
func NewPushBrushType(kind model.BrushKind) Op { return Op{Kind: PushBrushType, BrushKind: kind} }

// NewPushInkBrush side-writes ink-brush parameters against the brush id on top of the stack.
func NewPushInkBrush(minWidth, maxWidth, scaleUpDistance float64) Op {
	return Op{Kind: PushInkBrush, F1: minWidth, F2: maxWidth, F3: scaleUpDistance}
}

// NewPushBrushProperties consumes the color id and pushes a new brush-properties id.
func NewPushBrushProperties(size, opacity float64) Op {
	return Op{Kind: PushBrushProperties, F1: size, F2: opacity}
}

// --- Layers / keyframes ---

// NewPushLayerType inserts a layer row and pushes its id.
func NewPushLayerType(kind model.LayerKind) Op { return Op{Kind: PushLayerType, LayerKind: kind} }

// NewPushAssignLayer assigns an externally visible id to the layer id on top of the stack.
func NewPushAssignLayer(assignedID int64) Op { return Op{Kind: PushAssignLayer, ID1: assignedID} }

// NewPopAddKeyFrame consumes the layer id and inserts a keyframe at when.
func NewPopAddKeyFrame(when time.Duration) Op { return Op{Kind: PopAddKeyFrame, When: when} }

// NewPopRemoveKeyFrame consumes the layer id and deletes the keyframe at when.
func NewPopRemoveKeyFrame(when time.Duration) Op { return Op{Kind: PopRemoveKeyFrame, When: when} }

// NewPopDeleteLayer consumes the layer id and deletes the layer.
func NewPopDeleteLayer() Op { return Op{Kind: PopDeleteLayer} }

// NewPushNearestKeyFrame consumes the layer id and pushes (start_micros, keyframe_id).
func NewPushNearestKeyFrame(when time.Duration) Op {
	return Op{Kind: PushNearestKeyFrame, When: when}
}

// --- Vector elements ---

// NewPushVectorElementType consumes (start_micros, keyframe) and
// pushes (start_micros, keyframe, element), computing the new
// element's relative time from when and start_micros.
func NewPushVectorElementType(kind model.VectorElementKind, when time.Duration) Op {
	return Op{Kind: PushVectorElementType, ElementKind: kind, When: when}
}

// NewPushElementAssignID assigns an externally visible id to the element id on top of the stack.
func NewPushElementAssignID(assignedID int64) Op {
	return Op{Kind: PushElementAssignID, ID1: assignedID}
}

// NewPopVectorBrushElement consumes (element, brush) and records the element's brush definition.
func NewPopVectorBrushElement(style model.DrawingStyle) Op {
	return Op{Kind: PopVectorBrushElement, Style: style}
}

// NewPopVectorBrushPropertiesElement consumes (element, brushProperties).
func NewPopVectorBrushPropertiesElement() Op { return Op{Kind: PopVectorBrushPropertiesElement} }

// NewPopBrushPoints consumes the element id and inserts its ordered brush points.
func NewPopBrushPoints(points []model.BrushPoint) Op {
	return Op{Kind: PopBrushPoints, Points: points}
}

// --- Time and motion ---

// NewPushTimePoint inserts a time-point sample and pushes its id.
func NewPushTimePoint(x, y, milliseconds float64) Op {
	return Op{Kind: PushTimePoint, F1: x, F2: y, F3: milliseconds}
}

// NewCreateMotion inserts a new motion row with the given caller-assigned id.
func NewCreateMotion(motionID int64) Op { return Op{Kind: CreateMotion, ID1: motionID} }

// NewSetMotionType updates a motion's type.
func NewSetMotionType(motionID int64, kind model.MotionKind) Op {
	return Op{Kind: SetMotionType, ID1: motionID, MotionKind: kind}
}

// NewSetMotionOrigin replaces a motion's origin.
func NewSetMotionOrigin(motionID int64, x, y float64) Op {
	return Op{Kind: SetMotionOrigin, ID1: motionID, F1: x, F2: y}
}

// NewSetMotionPath atomically replaces a motion path's points,
// consuming exactly n prior time-point ids.
func NewSetMotionPath(motionID int64, path model.MotionPathKind, n int) Op {
	return Op{Kind: SetMotionPath, ID1: motionID, PathKind: path, Count: n}
}

// NewAddMotionAttachedElement attaches an element to a motion.
func NewAddMotionAttachedElement(motionID, elementID int64) Op {
	return Op{Kind: AddMotionAttachedElement, ID1: motionID, ID2: elementID}
}

// NewDeleteMotion deletes a motion row.
func NewDeleteMotion(motionID int64) Op { return Op{Kind: DeleteMotion, ID1: motionID} }

// NewDeleteMotionAttachedElement detaches an element from a motion.
func NewDeleteMotionAttachedElement(motionID, elementID int64) Op {
	return Op{Kind: DeleteMotionAttachedElement, ID1: motionID, ID2: elementID}
}

// --- Animation metadata ---

// NewUpdateCanvasSize sets the animation's size directly, bypassing
// the edit log. Unlike PopEditLogSetSize (which only records that a
// resize was requested), this mutates the Animation row itself.
func NewUpdateCanvasSize(width, height float64) Op {
	return Op{Kind: UpdateCanvasSize, F1: width, F2: height}
}

// NewUpdateMotionType sets a motion's type directly. It executes
// exactly like SetMotionType: neither op writes to the edit log (the
// edit log entry for a type change comes from the PushEditType and
// PushEditLogMotionType ops that translate.Lower emits around
// SetMotionType).
func NewUpdateMotionType(motionID int64, kind model.MotionKind) Op {
	return Op{Kind: UpdateMotionType, ID1: motionID, MotionKind: kind}
}
