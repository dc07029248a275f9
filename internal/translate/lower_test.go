package translate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flodb/flostore/internal/model"
	"github.com/flodb/flostore/internal/update"
)

// fakeAllocator hands out sequential ids without touching a database,
// so lowerBrushStroke can be exercised without internal/dbpool.
type fakeAllocator struct{ next int64 }

func (f *fakeAllocator) NextElementID(context.Context) (int64, error) {
	f.next++
	return f.next, nil
}

// stackDelta is the net effect of op on the evaluation stack's depth,
// derived from internal/interp/exec.go's case-by-case behavior. It
// exists purely to let this test check invariant 5 (the stack must be
// empty at a batch boundary) without a database.
func stackDelta(op update.Op) int {
	switch op.Kind {
	case update.Pop,
		update.PopEditLogSetSize,
		update.PopAddKeyFrame, update.PopRemoveKeyFrame, update.PopDeleteLayer,
		update.PopBrushPoints:
		return -1
	case update.PopEditLogBrush, update.PopEditLogBrushProperties,
		update.PopVectorBrushElement, update.PopVectorBrushPropertiesElement:
		return -2
	case update.PushLayerID, update.PushLayerForAssignedID, update.PushEditType,
		update.PushColorType, update.PushBrushType, update.PushLayerType, update.PushTimePoint:
		return +1
	case update.PushNearestKeyFrame, update.PushVectorElementType:
		return +1
	case update.PushEditLogMotionPath:
		return -op.Count
	case update.SetMotionPath:
		return -op.Count
	default:
		return 0
	}
}

func netDelta(ops []update.Op) int {
	total := 0
	for _, op := range ops {
		total += stackDelta(op)
	}
	return total
}

func TestLowerBalancesStackForEveryEditKind(t *testing.T) {
	ctx := context.Background()
	ids := &fakeAllocator{}

	motionID := int64(7)
	setType := model.MotionTranslate
	origin := model.Point2D{X: 1, Y: 2}
	attachElem := int64(42)
	detachElem := int64(43)
	eid := int64(99)

	cases := []struct {
		name string
		edit model.AnimationEdit
	}{
		{"SetSize", model.AnimationEdit{Kind: model.EditSetSize, Width: 640, Height: 480}},
		{"AddNewLayer", model.AnimationEdit{Kind: model.EditAddNewLayer, LayerID: 1}},
		{"RemoveLayer", model.AnimationEdit{Kind: model.EditRemoveLayer, LayerID: 1}},
		{"AddKeyFrame", model.AnimationEdit{Kind: model.EditLayerAddKeyFrame, LayerID: 1, When: time.Second}},
		{"RemoveKeyFrame", model.AnimationEdit{Kind: model.EditLayerRemoveKeyFrame, LayerID: 1, When: time.Second}},
		{"SelectBrushSimple", model.AnimationEdit{
			Kind: model.EditLayerPaintSelectBrush, LayerID: 1,
			Paint: &model.PaintEdit{When: time.Second, SelectBrush: &model.SelectBrushEdit{
				Style: model.StyleDraw, Definition: model.SimpleBrush(),
			}},
		}},
		{"SelectBrushInk", model.AnimationEdit{
			Kind: model.EditLayerPaintSelectBrush, LayerID: 1,
			Paint: &model.PaintEdit{When: time.Second, SelectBrush: &model.SelectBrushEdit{
				Style: model.StyleErase, Definition: model.InkBrush(1, 5, 0.5),
			}},
		}},
		{"BrushProperties", model.AnimationEdit{
			Kind: model.EditLayerPaintBrushProperties, LayerID: 1,
			Paint: &model.PaintEdit{When: time.Second, BrushProperties: &model.BrushProperties{
				Size: 2, Opacity: 1, Color: model.RGB(1, 0, 0),
			}},
		}},
		{"BrushStrokeNewElement", model.AnimationEdit{
			Kind: model.EditLayerPaintBrushStroke, LayerID: 1,
			Paint: &model.PaintEdit{When: time.Second, BrushStroke: &model.BrushStrokeEdit{
				Points:    []model.BrushPoint{{Width: 1}, {Width: 2}},
				RawPoints: []model.RawPoint{{X: 1, Y: 1}},
			}},
		}},
		{"BrushStrokeExistingElement", model.AnimationEdit{
			Kind: model.EditLayerPaintBrushStroke, LayerID: 1,
			Paint: &model.PaintEdit{When: time.Second, BrushStroke: &model.BrushStrokeEdit{
				ElementID: &eid,
				Points:    []model.BrushPoint{{Width: 1}},
			}},
		}},
		{"MotionCreate", model.AnimationEdit{Kind: model.EditMotionCreate, Motion: &model.MotionEdit{MotionID: motionID, Create: true}}},
		{"MotionSetType", model.AnimationEdit{Kind: model.EditMotionSetType, Motion: &model.MotionEdit{MotionID: motionID, SetType: &setType}}},
		{"MotionSetOrigin", model.AnimationEdit{Kind: model.EditMotionSetOrigin, Motion: &model.MotionEdit{MotionID: motionID, SetOrigin: &origin}}},
		{"MotionSetPathEmpty", model.AnimationEdit{Kind: model.EditMotionSetPath, Motion: &model.MotionEdit{
			MotionID: motionID, SetPath: &model.SetPathEdit{Path: model.PathPosition},
		}}},
		{"MotionSetPathPoints", model.AnimationEdit{Kind: model.EditMotionSetPath, Motion: &model.MotionEdit{
			MotionID: motionID, SetPath: &model.SetPathEdit{
				Path:   model.PathVelocity,
				Points: []model.TimePoint{{X: 0, Y: 0, Milliseconds: 0}, {X: 1, Y: 1, Milliseconds: 100}},
			},
		}}},
		{"MotionAttach", model.AnimationEdit{Kind: model.EditMotionAttach, Motion: &model.MotionEdit{MotionID: motionID, AttachElement: &attachElem}}},
		{"MotionDetach", model.AnimationEdit{Kind: model.EditMotionDetach, Motion: &model.MotionEdit{MotionID: motionID, DetachElement: &detachElem}}},
		{"MotionDelete", model.AnimationEdit{Kind: model.EditMotionDelete, Motion: &model.MotionEdit{MotionID: motionID, Delete: true}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops, err := Lower(ctx, tc.edit, ids)
			require.NoError(t, err)
			require.NotEmpty(t, ops)
			require.Equal(t, 0, netDelta(ops), "edit %s left a non-zero net stack effect", tc.name)

			var editTypeCount int
			for _, op := range ops {
				if op.Kind == update.PushEditType {
					editTypeCount++
					require.Equal(t, tc.edit.Kind, op.EditKind)
				}
			}
			require.Equal(t, 1, editTypeCount, "every edit must write exactly one edit log header")
		})
	}
}

func TestLowerUnknownEditKindIsMalformed(t *testing.T) {
	_, err := Lower(context.Background(), model.AnimationEdit{Kind: model.EditKind(999)}, &fakeAllocator{})
	require.Error(t, err)
	_, ok := model.IsMalformedBatch(err)
	require.True(t, ok)
}
