package translate

import (
	"context"

	"github.com/flodb/flostore/internal/model"
	"github.com/flodb/flostore/internal/update"
)

// Lower converts edit into the update.Op sequence that applies it,
// allocating a brush-stroke element id via ids when the edit doesn't
// carry one already. Once an id is present it is never rewritten.
func Lower(ctx context.Context, edit model.AnimationEdit, ids IDAllocator) ([]update.Op, error) {
	switch edit.Kind {

	case model.EditSetSize:
		return []update.Op{
			update.NewPushEditType(model.EditSetSize),
			update.NewPopEditLogSetSize(edit.Width, edit.Height),
		}, nil

	case model.EditAddNewLayer:
		return []update.Op{
			update.NewPushEditType(model.EditAddNewLayer),
			update.NewPushLayerType(model.LayerVector),
			update.NewPushAssignLayer(edit.LayerID),
			update.NewPop(), // layer
			update.NewPop(), // edit
		}, nil

	case model.EditRemoveLayer:
		return []update.Op{
			update.NewPushEditType(model.EditRemoveLayer),
			update.NewPushLayerForAssignedID(edit.LayerID),
			update.NewPopDeleteLayer(),
			update.NewPop(), // edit
		}, nil

	case model.EditLayerAddKeyFrame:
		return []update.Op{
			update.NewPushEditType(model.EditLayerAddKeyFrame),
			update.NewPushEditLogLayer(edit.LayerID),
			update.NewPushEditLogWhen(edit.When),
			update.NewPushLayerForAssignedID(edit.LayerID),
			update.NewPopAddKeyFrame(edit.When),
			update.NewPop(), // edit
		}, nil

	case model.EditLayerRemoveKeyFrame:
		return []update.Op{
			update.NewPushEditType(model.EditLayerRemoveKeyFrame),
			update.NewPushEditLogLayer(edit.LayerID),
			update.NewPushEditLogWhen(edit.When),
			update.NewPushLayerForAssignedID(edit.LayerID),
			update.NewPopRemoveKeyFrame(edit.When),
			update.NewPop(), // edit
		}, nil

	case model.EditLayerPaintSelectBrush:
		return lowerSelectBrush(edit)

	case model.EditLayerPaintBrushProperties:
		return lowerBrushProperties(edit)

	case model.EditLayerPaintBrushStroke:
		return lowerBrushStroke(ctx, edit, ids)

	case model.EditMotionCreate:
		return []update.Op{
			update.NewPushEditType(model.EditMotionCreate),
			update.NewCreateMotion(edit.Motion.MotionID),
			update.NewPop(), // edit
		}, nil

	case model.EditMotionSetType:
		return []update.Op{
			update.NewPushEditType(model.EditMotionSetType),
			update.NewPushEditLogMotionType(*edit.Motion.SetType),
			update.NewSetMotionType(edit.Motion.MotionID, *edit.Motion.SetType),
			update.NewPop(), // edit
		}, nil

	case model.EditMotionSetOrigin:
		return []update.Op{
			update.NewPushEditType(model.EditMotionSetOrigin),
			update.NewPushEditLogMotionOrigin(edit.Motion.SetOrigin.X, edit.Motion.SetOrigin.Y),
			update.NewSetMotionOrigin(edit.Motion.MotionID, edit.Motion.SetOrigin.X, edit.Motion.SetOrigin.Y),
			update.NewPop(), // edit
		}, nil

	case model.EditMotionSetPath:
		return lowerSetPath(edit)

	case model.EditMotionAttach:
		return []update.Op{
			update.NewPushEditType(model.EditMotionAttach),
			update.NewPushEditLogMotionElement(*edit.Motion.AttachElement),
			update.NewAddMotionAttachedElement(edit.Motion.MotionID, *edit.Motion.AttachElement),
			update.NewPop(), // edit
		}, nil

	case model.EditMotionDetach:
		// No edit-log side write: a detach is replayed structurally
		// (the motion no longer lists the element), not by re-reading
		// a log entry, matching RemoveLayer's no-side-table pattern.
		return []update.Op{
			update.NewPushEditType(model.EditMotionDetach),
			update.NewDeleteMotionAttachedElement(edit.Motion.MotionID, *edit.Motion.DetachElement),
			update.NewPop(), // edit
		}, nil

	case model.EditMotionDelete:
		return []update.Op{
			update.NewPushEditType(model.EditMotionDelete),
			update.NewDeleteMotion(edit.Motion.MotionID),
			update.NewPop(), // edit
		}, nil
	}

	return nil, &model.MalformedBatchError{Reason: "unknown edit kind"}
}

func lowerSelectBrush(edit model.AnimationEdit) ([]update.Op, error) {
	sel := edit.Paint.SelectBrush
	ops := []update.Op{
		update.NewPushEditType(model.EditLayerPaintSelectBrush),
		update.NewPushEditLogLayer(edit.LayerID),
		update.NewPushEditLogWhen(edit.Paint.When),
		update.NewPushBrushType(sel.Definition.Kind),
	}
	if sel.Definition.Kind == model.BrushInk {
		ops = append(ops, update.NewPushInkBrush(sel.Definition.MinWidth, sel.Definition.MaxWidth, sel.Definition.ScaleUpDistance))
	}
	ops = append(ops,
		update.NewPopEditLogBrush(sel.Style),
		update.NewPushLayerForAssignedID(edit.LayerID),
		update.NewPushNearestKeyFrame(edit.Paint.When),
		update.NewPushVectorElementType(model.ElementBrushDefinition, edit.Paint.When),
		update.NewPushBrushType(sel.Definition.Kind),
	)
	if sel.Definition.Kind == model.BrushInk {
		ops = append(ops, update.NewPushInkBrush(sel.Definition.MinWidth, sel.Definition.MaxWidth, sel.Definition.ScaleUpDistance))
	}
	ops = append(ops,
		update.NewPopVectorBrushElement(sel.Style),
		update.NewPop(), // keyframe
		update.NewPop(), // start_micros
	)
	return ops, nil
}

func lowerBrushProperties(edit model.AnimationEdit) ([]update.Op, error) {
	props := edit.Paint.BrushProperties
	ops := []update.Op{
		update.NewPushEditType(model.EditLayerPaintBrushProperties),
		update.NewPushEditLogLayer(edit.LayerID),
		update.NewPushEditLogWhen(edit.Paint.When),
		update.NewPushColorType(props.Color.Kind),
	}
	ops = append(ops, pushColorComponents(props.Color)...)
	ops = append(ops,
		update.NewPushBrushProperties(props.Size, props.Opacity),
		update.NewPopEditLogBrushProperties(),
		update.NewPushLayerForAssignedID(edit.LayerID),
		update.NewPushNearestKeyFrame(edit.Paint.When),
		update.NewPushVectorElementType(model.ElementBrushProperties, edit.Paint.When),
		update.NewPushColorType(props.Color.Kind),
	)
	ops = append(ops, pushColorComponents(props.Color)...)
	ops = append(ops,
		update.NewPushBrushProperties(props.Size, props.Opacity),
		update.NewPopVectorBrushPropertiesElement(),
		update.NewPop(), // keyframe
		update.NewPop(), // start_micros
	)
	return ops, nil
}

func pushColorComponents(c model.Color) []update.Op {
	if c.Kind == model.ColorHsluv {
		return []update.Op{update.NewPushHsluv(c.H, c.S, c.L)}
	}
	return []update.Op{update.NewPushRgb(c.R, c.G, c.B)}
}

func lowerBrushStroke(ctx context.Context, edit model.AnimationEdit, ids IDAllocator) ([]update.Op, error) {
	stroke := edit.Paint.BrushStroke
	eid := int64(0)
	if stroke.ElementID != nil {
		eid = *stroke.ElementID
	} else {
		allocated, err := ids.NextElementID(ctx)
		if err != nil {
			return nil, err
		}
		eid = allocated
	}

	return []update.Op{
		update.NewPushEditType(model.EditLayerPaintBrushStroke),
		update.NewPushEditLogLayer(edit.LayerID),
		update.NewPushEditLogWhen(edit.Paint.When),
		update.NewPushEditLogElementID(eid),
		update.NewPushRawPoints(stroke.RawPoints),
		update.NewPushLayerForAssignedID(edit.LayerID),
		update.NewPushNearestKeyFrame(edit.Paint.When),
		update.NewPushVectorElementType(model.ElementBrushStroke, edit.Paint.When),
		update.NewPushElementAssignID(eid),
		update.NewPopBrushPoints(stroke.Points),
		update.NewPop(), // keyframe
		update.NewPop(), // start_micros
		update.NewPop(), // edit
	}, nil
}

func lowerSetPath(edit model.AnimationEdit) ([]update.Op, error) {
	path := edit.Motion.SetPath
	n := len(path.Points)

	ops := make([]update.Op, 0, 2*n+4)
	for _, pt := range path.Points {
		ops = append(ops, update.NewPushTimePoint(pt.X, pt.Y, pt.Milliseconds))
	}
	ops = append(ops,
		update.NewPushEditType(model.EditMotionSetPath),
		update.NewPushEditLogMotionPath(n),
	)
	for _, pt := range path.Points {
		ops = append(ops, update.NewPushTimePoint(pt.X, pt.Y, pt.Milliseconds))
	}
	ops = append(ops,
		update.NewSetMotionPath(edit.Motion.MotionID, path.Path, n),
		update.NewPop(), // edit
	)
	return ops, nil
}
