package interp

import (
	"context"

	"github.com/flodb/flostore/internal/dbpool"
	"github.com/flodb/flostore/internal/model"
	"github.com/flodb/flostore/internal/update"
)

// exec applies a single Op's stack effect and relational mutation.
func (s *Store) exec(ctx context.Context, tx execer, op update.Op) error {
	switch op.Kind {

	case update.Pop:
		s.stack.Pop()

	case update.PushLayerID:
		s.stack.Push(op.ID1)

	case update.PushLayerForAssignedID:
		row, err := s.pool.QueryRow(ctx, tx, dbpool.SelectLayerID, animationID, op.ID1)
		if err != nil {
			return err
		}
		var layerID int64
		if err := row.Scan(&layerID); err != nil {
			return dbpool.ScanErr(err)
		}
		s.stack.Push(layerID)

	case update.PushEditType:
		code, err := s.enums.CodeFor(ctx, tx, op.EditKind.Tag())
		if err != nil {
			return err
		}
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertEditType, code)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.PopEditLogSetSize:
		editID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELSetSize, editID, op.F1, op.F2); err != nil {
			return err
		}

	case update.PushEditLogLayer:
		editID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELLayer, editID, op.ID1); err != nil {
			return err
		}

	case update.PushEditLogWhen:
		editID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELWhen, editID, op.When.Microseconds()); err != nil {
			return err
		}

	case update.PopEditLogBrush:
		brushID, _ := s.stack.Pop()
		editID, _ := s.stack.Pop()
		styleCode, err := s.enums.CodeFor(ctx, tx, op.Style.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELBrush, editID, styleCode, brushID); err != nil {
			return err
		}

	case update.PopEditLogBrushProperties:
		propsID, _ := s.stack.Pop()
		editID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELBrushProperties, editID, propsID); err != nil {
			return err
		}

	case update.PushEditLogElementID:
		editID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELElementID, editID, op.ID1); err != nil {
			return err
		}

	case update.PushRawPoints:
		editID, _ := s.stack.Peek()
		blob, err := model.EncodeRawPoints(op.RawPoints)
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELRawPoints, editID, blob); err != nil {
			return err
		}

	case update.PushEditLogMotionOrigin:
		editID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELMotionOrigin, editID, op.F1, op.F2); err != nil {
			return err
		}

	case update.PushEditLogMotionType:
		editID, _ := s.stack.Peek()
		code, err := s.enums.CodeFor(ctx, tx, op.MotionKind.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELMotionType, editID, code); err != nil {
			return err
		}

	case update.PushEditLogMotionElement:
		editID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertELMotionElement, editID, op.ID1); err != nil {
			return err
		}

	case update.PushEditLogMotionPath:
		editID, _ := s.stack.Pop()
		points := s.stack.PopN(op.Count)
		for i, pointID := range points {
			pointIndex := op.Count - 1 - i
			if err := s.pool.Execute(ctx, tx, dbpool.InsertELMotionTimePoint, editID, pointIndex, pointID); err != nil {
				return err
			}
		}
		s.stack.Push(editID)

	case update.PushColorType:
		code, err := s.enums.CodeFor(ctx, tx, op.ColorKind.Tag())
		if err != nil {
			return err
		}
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertColorType, code)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.PushRgb:
		colorID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertRgb, colorID, op.F1, op.F2, op.F3); err != nil {
			return err
		}

	case update.PushHsluv:
		colorID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertHsluv, colorID, op.F1, op.F2, op.F3); err != nil {
			return err
		}

	case update.PushBrushType:
		code, err := s.enums.CodeFor(ctx, tx, op.BrushKind.Tag())
		if err != nil {
			return err
		}
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertBrushType, code)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.PushInkBrush:
		brushID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertInkBrush, brushID, op.F1, op.F2, op.F3); err != nil {
			return err
		}

	case update.PushBrushProperties:
		colorID, _ := s.stack.Pop()
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertBrushProperties, op.F1, op.F2, colorID)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.PushLayerType:
		code, err := s.enums.CodeFor(ctx, tx, op.LayerKind.Tag())
		if err != nil {
			return err
		}
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertLayerType, code)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.PushAssignLayer:
		layerID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertAssignLayer, animationID, layerID, op.ID1); err != nil {
			return err
		}

	case update.PopAddKeyFrame:
		layerID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertKeyFrame, layerID, op.When.Microseconds()); err != nil {
			return err
		}

	case update.PopRemoveKeyFrame:
		layerID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.DeleteKeyFrame, layerID, op.When.Microseconds()); err != nil {
			return err
		}

	case update.PopDeleteLayer:
		layerID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.DeleteLayer, layerID); err != nil {
			return err
		}

	case update.PushNearestKeyFrame:
		layerID, _ := s.stack.Pop()
		row, err := s.pool.QueryRow(ctx, tx, dbpool.SelectNearestKeyFrame, layerID, op.When.Microseconds())
		if err != nil {
			return err
		}
		var keyframeID, startMicros int64
		if err := row.Scan(&keyframeID, &startMicros); err != nil {
			return dbpool.ScanErr(err)
		}
		s.stack.Push(startMicros)
		s.stack.Push(keyframeID)

	case update.PushVectorElementType:
		keyframeID, _ := s.stack.Pop()
		startMicros, _ := s.stack.Pop()
		code, err := s.enums.CodeFor(ctx, tx, op.ElementKind.Tag())
		if err != nil {
			return err
		}
		relative := op.When.Microseconds() - startMicros
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertVectorElementType, keyframeID, code, relative)
		if err != nil {
			return err
		}
		s.stack.Push(startMicros)
		s.stack.Push(keyframeID)
		s.stack.Push(id)

	case update.PushElementAssignID:
		elementID, _ := s.stack.Peek()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertElementAssignedID, elementID, op.ID1); err != nil {
			return err
		}

	case update.PopVectorBrushElement:
		brushID, _ := s.stack.Pop()
		elementID, _ := s.stack.Pop()
		styleCode, err := s.enums.CodeFor(ctx, tx, op.Style.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.InsertBrushDefinitionElement, elementID, brushID, styleCode); err != nil {
			return err
		}

	case update.PopVectorBrushPropertiesElement:
		propsID, _ := s.stack.Pop()
		elementID, _ := s.stack.Pop()
		if err := s.pool.Execute(ctx, tx, dbpool.InsertBrushPropertiesElement, elementID, propsID); err != nil {
			return err
		}

	case update.PopBrushPoints:
		elementID, _ := s.stack.Pop()
		for i, pt := range op.Points {
			if err := s.pool.Execute(ctx, tx, dbpool.InsertBrushPoint, elementID, i,
				pt.CP1.X, pt.CP1.Y, pt.CP2.X, pt.CP2.Y, pt.Position.X, pt.Position.Y, pt.Width); err != nil {
				return err
			}
		}

	case update.PushTimePoint:
		id, err := s.pool.Insert(ctx, tx, dbpool.InsertTimePoint, op.F1, op.F2, op.F3)
		if err != nil {
			return err
		}
		s.stack.Push(id)

	case update.CreateMotion:
		noneCode, err := s.enums.CodeFor(ctx, tx, model.MotionNone.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.InsertMotion, op.ID1, noneCode); err != nil {
			return err
		}

	case update.SetMotionType:
		code, err := s.enums.CodeFor(ctx, tx, op.MotionKind.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.UpdateMotionType, code, op.ID1); err != nil {
			return err
		}

	case update.SetMotionOrigin:
		if err := s.pool.Execute(ctx, tx, dbpool.InsertOrReplaceMotionOrigin, op.ID1, op.F1, op.F2); err != nil {
			return err
		}

	case update.SetMotionPath:
		pathCode, err := s.enums.CodeFor(ctx, tx, op.PathKind.Tag())
		if err != nil {
			return err
		}
		points := s.stack.PopN(op.Count)
		if err := s.pool.Execute(ctx, tx, dbpool.DeleteMotionPoints, op.ID1, pathCode); err != nil {
			return err
		}
		for pointIndex, pointID := range points {
			if err := s.pool.Execute(ctx, tx, dbpool.InsertMotionPathPoint, op.ID1, pathCode, pointIndex, pointID); err != nil {
				return err
			}
		}

	case update.AddMotionAttachedElement:
		if err := s.pool.Execute(ctx, tx, dbpool.InsertMotionAttachedElement, op.ID1, op.ID2); err != nil {
			return err
		}

	case update.DeleteMotion:
		// Deliberately does not purge MotionPath/MotionAttached rows
		// for this motion; they become unreachable once the Motion
		// row is gone.
		if err := s.pool.Execute(ctx, tx, dbpool.DeleteMotion, op.ID1); err != nil {
			return err
		}

	case update.DeleteMotionAttachedElement:
		if err := s.pool.Execute(ctx, tx, dbpool.DeleteMotionAttachedElement, op.ID1, op.ID2); err != nil {
			return err
		}

	case update.UpdateCanvasSize:
		if err := s.pool.Execute(ctx, tx, dbpool.UpdateAnimationSize, op.F1, op.F2, animationID); err != nil {
			return err
		}

	case update.UpdateMotionType:
		code, err := s.enums.CodeFor(ctx, tx, op.MotionKind.Tag())
		if err != nil {
			return err
		}
		if err := s.pool.Execute(ctx, tx, dbpool.UpdateMotionType, code, op.ID1); err != nil {
			return err
		}

	default:
		return &model.MalformedBatchError{Reason: "unknown update op"}
	}

	return nil
}
