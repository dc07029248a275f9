package model

import "time"

// AnimationEdit is the high-level edit value produced by the in-memory
// editing layer (an external collaborator — flostore never constructs
// these, only lowers them). It mirrors the closed
// shape implied by the Edit tag domain: Kind selects which of the
// fields below are meaningful (e.g. LayerID and When for a keyframe
// edit); the rest are ignored.
type AnimationEdit struct {
	Kind EditKind

	// SetSize
	Width, Height float64

	// AddNewLayer / RemoveLayer / Layer(...)
	LayerID int64

	// Layer(_, AddKeyFrame|RemoveKeyFrame)
	When time.Duration

	Paint *PaintEdit

	Motion *MotionEdit
}

// PaintEdit is the payload of Layer(_, Paint(when, ...)).
type PaintEdit struct {
	When time.Duration

	SelectBrush     *SelectBrushEdit
	BrushProperties *BrushProperties
	BrushStroke     *BrushStrokeEdit
}

// SelectBrushEdit names the brush a subsequent stroke will use.
type SelectBrushEdit struct {
	Style      DrawingStyle
	Definition BrushDefinition
}

// BrushStrokeEdit carries the raw input samples for a paint stroke,
// plus an optional pre-assigned element id (nil means "allocate one").
type BrushStrokeEdit struct {
	ElementID *int64
	Points    []BrushPoint
	RawPoints []RawPoint
}

// MotionEdit is the payload of the Motion::* edit kinds.
type MotionEdit struct {
	MotionID int64

	Create bool

	SetType *MotionKind

	SetOrigin *Point2D

	SetPath *SetPathEdit

	AttachElement *int64
	DetachElement *int64

	Delete bool
}

// SetPathEdit replaces every point of one path (Position or Velocity)
// of a motion, atomically.
type SetPathEdit struct {
	Path   MotionPathKind
	Points []TimePoint
}
