package model

import "time"

// Point2D is a plain 2-D coordinate, reused for brush control points,
// motion origins and time-point samples.
type Point2D struct {
	X, Y float64
}

// Color is the closed {Rgb, Hsluv} variant. Exactly one of the
// component groups is meaningful, selected by Kind.
type Color struct {
	Kind ColorKind

	R, G, B float64 // valid when Kind == ColorRgb
	H, S, L float64 // valid when Kind == ColorHsluv
}

// RGB constructs an RGB color.
func RGB(r, g, b float64) Color { return Color{Kind: ColorRgb, R: r, G: g, B: b} }

// HSLUV constructs an HSLuv color.
func HSLUV(h, s, l float64) Color { return Color{Kind: ColorHsluv, H: h, S: s, L: l} }

// BrushDefinition is the closed {Simple, Ink(...)} variant.
type BrushDefinition struct {
	Kind BrushKind

	MinWidth, MaxWidth, ScaleUpDistance float64 // valid when Kind == BrushInk
}

// SimpleBrush constructs a Simple brush definition.
func SimpleBrush() BrushDefinition { return BrushDefinition{Kind: BrushSimple} }

// InkBrush constructs an Ink brush definition.
func InkBrush(minWidth, maxWidth, scaleUpDistance float64) BrushDefinition {
	return BrushDefinition{Kind: BrushInk, MinWidth: minWidth, MaxWidth: maxWidth, ScaleUpDistance: scaleUpDistance}
}

// BrushProperties pairs a brush size/opacity with a color.
type BrushProperties struct {
	Size, Opacity float64
	Color         Color
}

// BrushPoint is one ordered sample of a painted stroke: two control
// points, a position, and a pen width at that position.
type BrushPoint struct {
	CP1, CP2, Position Point2D
	Width              float64
}

// TimePoint is a 2-D sample with a temporal coordinate, used to build
// the ordered Position/Velocity sequences of a Motion.
type TimePoint struct {
	X, Y         float64
	Milliseconds float64
}

// Layer identifies an animation layer by both its internal row id and
// its externally assigned id.
type Layer struct {
	ID         int64
	AssignedID int64
	Kind       LayerKind
}

// Keyframe is a point in time at which a layer's content may change.
type Keyframe struct {
	ID        int64
	LayerID   int64
	StartTime time.Duration
}

// VectorElement is one entry painted into a keyframe.
type VectorElement struct {
	ID           int64
	KeyframeID   int64
	Kind         VectorElementKind
	RelativeTime time.Duration

	// Populated only for elements with a brush reference (Kind ==
	// ElementBrushDefinition).
	BrushID      int64
	HasBrush     bool
	DrawingStyle DrawingStyle

	// Populated only for elements with brush properties (Kind ==
	// ElementBrushProperties).
	BrushPropertiesID int64
	HasBrushProps     bool

	// Populated when the element has an externally assigned id.
	AssignedID    int64
	HasAssignedID bool
}

// Motion describes an attached animation: a type and an optional
// origin. The elements it drives are not held here; query.Reader's
// ElementsForMotion lists them.
type Motion struct {
	ID     int64
	Kind   MotionKind
	Origin Point2D
	HasOrigin bool
}

// EditLogEntry reconstructs one row of the append-only edit log,
// joined with whichever side tables apply to its Kind.
type EditLogEntry struct {
	ID   int64
	Kind EditKind

	HasLayer bool
	LayerID  int64

	HasWhen bool
	When    time.Duration

	HasBrush     bool
	DrawingStyle DrawingStyle
	BrushID      int64

	HasBrushProperties bool
	BrushPropertiesID  int64

	HasElementID bool
	ElementID    int64
}
