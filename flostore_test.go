package flostore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flodb/flostore"
	"github.com/flodb/flostore/internal/flostoretest"
	"github.com/flodb/flostore/internal/update"
)

func TestAddLayerAndKeyFrame(t *testing.T) {
	fx := flostoretest.NewFixture(t)
	ctx := context.Background()

	fx.MustEdit(t, flostore.AnimationEdit{Kind: flostore.EditAddNewLayer, LayerID: 1})
	fx.MustEdit(t, flostore.AnimationEdit{Kind: flostore.EditLayerAddKeyFrame, LayerID: 1, When: 50 * time.Millisecond})

	ids, err := fx.Reader().AssignedLayerIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ids)

	times, err := fx.Reader().KeyframeTimes(ctx, 1, 0, time.Second)
	require.NoError(t, err)
	require.Equal(t, []time.Duration{50 * time.Millisecond}, times)
}

func TestEndToEndPaintedStroke(t *testing.T) {
	fx := flostoretest.NewFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditAddNewLayer, LayerID: 1,
	}))
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditLayerAddKeyFrame, LayerID: 1, When: 0,
	}))
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditLayerPaintSelectBrush, LayerID: 1,
		Paint: &flostore.PaintEdit{
			When: 10 * time.Millisecond,
			SelectBrush: &flostore.SelectBrushEdit{
				Style:      flostore.DrawingStyle(0),
				Definition: flostore.BrushDefinition{Kind: flostore.BrushKind(1), MinWidth: 1, MaxWidth: 4, ScaleUpDistance: 0.2},
			},
		},
	}))
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditLayerPaintBrushStroke, LayerID: 1,
		Paint: &flostore.PaintEdit{
			When: 10 * time.Millisecond,
			BrushStroke: &flostore.BrushStrokeEdit{
				Points: []flostore.BrushPoint{
					{Position: flostore.Point2D{X: 0, Y: 0}, Width: 2},
					{Position: flostore.Point2D{X: 1, Y: 1}, Width: 3},
				},
				RawPoints: []flostore.RawPoint{
					{X: 0, Y: 0, Pressure: 0.3},
					{X: 1, Y: 1, Pressure: 0.8},
				},
			},
		},
	}))

	length, err := fx.Reader().EditLogLength(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, length)

	kf, err := fx.Reader().NearestKeyFrame(ctx, 1, 10*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), kf.StartTime)

	elems, err := fx.Reader().VectorElementsBefore(ctx, kf.ID, 10*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, elems, 2) // one BrushDefinition element, one BrushStroke element

	var strokeElem flostore.VectorElement
	for _, e := range elems {
		if e.Kind == flostore.VectorElementKind(2) { // ElementBrushStroke
			strokeElem = e
		}
	}
	require.NotZero(t, strokeElem.ID)

	points, err := fx.Reader().BrushPoints(ctx, strokeElem.ID)
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, 2.0, points[0].Width)
	require.Equal(t, 3.0, points[1].Width)
}

func TestMotionLifecycle(t *testing.T) {
	fx := flostoretest.NewFixture(t)
	ctx := context.Background()

	const motionID = int64(1)
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionCreate, Motion: &flostore.MotionEdit{MotionID: motionID, Create: true},
	}))

	setType := flostore.MotionKind(2) // MotionTranslate
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionSetType, Motion: &flostore.MotionEdit{MotionID: motionID, SetType: &setType},
	}))

	origin := flostore.Point2D{X: 3, Y: 4}
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionSetOrigin, Motion: &flostore.MotionEdit{MotionID: motionID, SetOrigin: &origin},
	}))

	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionSetPath,
		Motion: &flostore.MotionEdit{
			MotionID: motionID,
			SetPath: &flostore.SetPathEdit{
				Path: flostore.MotionPathKind(0), // PathPosition
				Points: []flostore.TimePoint{
					{X: 0, Y: 0, Milliseconds: 0},
					{X: 10, Y: 0, Milliseconds: 100},
					{X: 20, Y: 5, Milliseconds: 200},
				},
			},
		},
	}))

	elementID := int64(55)
	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionAttach, Motion: &flostore.MotionEdit{MotionID: motionID, AttachElement: &elementID},
	}))

	m, err := fx.Reader().Motion(ctx, motionID)
	require.NoError(t, err)
	require.Equal(t, setType, m.Kind)
	require.True(t, m.HasOrigin)
	require.Equal(t, origin, m.Origin)

	points, err := fx.Reader().MotionTimePoints(ctx, motionID, flostore.MotionPathKind(0))
	require.NoError(t, err)
	require.Len(t, points, 3)
	require.Equal(t, 10.0, points[1].X)
	require.Equal(t, 200.0, points[2].Milliseconds)

	elems, err := fx.Reader().ElementsForMotion(ctx, motionID)
	require.NoError(t, err)
	require.Equal(t, []int64{elementID}, elems)

	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{
		Kind: flostore.EditMotionDetach, Motion: &flostore.MotionEdit{MotionID: motionID, DetachElement: &elementID},
	}))
	elems, err = fx.Reader().ElementsForMotion(ctx, motionID)
	require.NoError(t, err)
	require.Empty(t, elems)
}

func TestSetSizeDoesNotMutateAnimationRow(t *testing.T) {
	fx := flostoretest.NewFixture(t)
	ctx := context.Background()

	before, beforeH, err := fx.Reader().AnimationSize(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.Edit(ctx, flostore.AnimationEdit{Kind: flostore.EditSetSize, Width: 1920, Height: 1080}))

	after, afterH, err := fx.Reader().AnimationSize(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, beforeH, afterH)

	length, err := fx.Reader().EditLogLength(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, length)

	width, height, err := fx.Reader().EditLogSize(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1920.0, width)
	require.Equal(t, 1080.0, height)
}

// TestUpdateCanvasSizeMutatesAnimationRow exercises the raw Update escape
// hatch directly: unlike EditSetSize (which only appends an edit log
// entry), UpdateCanvasSize writes straight through to the Animation row.
// Nothing in translate.Lower emits it; it exists for callers replaying a
// previously captured op sequence or migrating a document's canvas size
// outside the edit log.
func TestUpdateCanvasSizeMutatesAnimationRow(t *testing.T) {
	fx := flostoretest.NewFixture(t)
	ctx := context.Background()

	before, beforeH, err := fx.Reader().AnimationSize(ctx)
	require.NoError(t, err)
	require.NotEqual(t, 3840.0, before)

	require.NoError(t, fx.Update(ctx, []update.Op{update.NewUpdateCanvasSize(3840, 2160)}))

	after, afterH, err := fx.Reader().AnimationSize(ctx)
	require.NoError(t, err)
	require.Equal(t, 3840.0, after)
	require.Equal(t, 2160.0, afterH)
	require.NotEqual(t, before, after)

	length, err := fx.Reader().EditLogLength(ctx)
	require.NoError(t, err)
	require.Zero(t, length, "UpdateCanvasSize bypasses the edit log entirely")
}
