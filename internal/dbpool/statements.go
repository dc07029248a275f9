package dbpool

// StatementTag is a closed enumeration of every prepared statement the
// interpreter and query layer use. Keeping it closed (rather than
// keying the cache by the SQL text or by an open string tag) is what
// lets Pool use a fixed-size array as the cache: no hashing, no
// eviction, nothing to leak. Grounded on FloStatement in
// original_source/anim_sqlite/src/db/flo_sqlite/mod.rs.
type StatementTag int

// The statement vocabulary. Order doesn't matter beyond being stable
// within a build; numStatements must track the final entry.
const (
	SelectEnumValue StatementTag = iota
	SelectLayerID
	SelectNearestKeyFrame
	SelectKeyFrameTimes
	SelectAnimationSize
	SelectAnimationDuration
	SelectAnimationFrameLength
	SelectAssignedLayerIDs
	SelectEditLogLength
	SelectEditLogValues
	SelectEditLogSize
	SelectEditLogRawPoints
	SelectColor
	SelectBrushDefinition
	SelectBrushProperties
	SelectVectorElementsBefore
	SelectBrushPoints
	SelectMotionsForElement
	SelectElementsForMotion
	SelectMotion
	SelectMotionTimePoints

	UpdateAnimationSize
	UpdateMotionType

	InsertEnumValue
	InsertEditType
	InsertELSetSize
	InsertELLayer
	InsertELWhen
	InsertELBrush
	InsertELBrushProperties
	InsertELElementID
	InsertELRawPoints
	InsertELMotionOrigin
	InsertELMotionType
	InsertELMotionElement
	InsertELMotionTimePoint
	InsertTimePoint
	InsertBrushType
	InsertInkBrush
	InsertBrushProperties
	InsertColorType
	InsertRgb
	InsertHsluv
	InsertLayerType
	InsertAssignLayer
	InsertKeyFrame
	InsertVectorElementType
	InsertElementAssignedID
	InsertBrushDefinitionElement
	InsertBrushPropertiesElement
	InsertBrushPoint
	InsertMotion
	InsertOrReplaceMotionOrigin
	InsertMotionAttachedElement
	InsertMotionPathPoint

	DeleteKeyFrame
	DeleteLayer
	DeleteMotion
	DeleteMotionPoints
	DeleteMotionAttachedElement

	numStatements
)

// queryText holds the SQL text for every tag, in tag order.
var queryText = [numStatements]string{
	SelectEnumValue: "SELECT Value FROM EnumerationDescriptions WHERE FieldName = ? AND ApiName = ?",
	SelectLayerID: "SELECT Layer.LayerId FROM AnimationLayers AS Anim " +
		"INNER JOIN LayerType AS Layer ON Layer.LayerId = Anim.LayerId " +
		"WHERE Anim.AnimationId = ? AND Anim.AssignedLayerId = ?",
	SelectNearestKeyFrame: "SELECT KeyFrameId, AtTime FROM LayerKeyFrame WHERE LayerId = ? AND AtTime <= ? ORDER BY AtTime DESC LIMIT 1",
	SelectKeyFrameTimes:   "SELECT AtTime FROM LayerKeyFrame WHERE LayerId = ? AND AtTime >= ? AND AtTime < ? ORDER BY AtTime ASC",
	SelectAnimationSize:   "SELECT SizeX, SizeY FROM Animation WHERE AnimationId = ?",
	SelectAnimationDuration: "SELECT Duration FROM Animation WHERE AnimationId = ?",
	SelectAnimationFrameLength: "SELECT FrameLengthNs FROM Animation WHERE AnimationId = ?",
	SelectAssignedLayerIDs:     "SELECT AssignedLayerId FROM AnimationLayers WHERE AnimationId = ?",
	SelectEditLogLength:        "SELECT COUNT(Id) FROM EditLog",
	SelectEditLogValues: "SELECT EL.Id, EL.Edit, Layers.Layer, Time.AtTime, Brush.DrawingStyle, Brush.Brush, BrushProps.BrushProperties, ElementId.ElementId FROM EditLog AS EL " +
		"LEFT OUTER JOIN EL_Layer           AS Layers     ON EL.Id = Layers.EditId " +
		"LEFT OUTER JOIN EL_When            AS Time       ON EL.Id = Time.EditId " +
		"LEFT OUTER JOIN EL_Brush           AS Brush      ON EL.Id = Brush.EditId " +
		"LEFT OUTER JOIN EL_BrushProperties AS BrushProps ON EL.Id = BrushProps.EditId " +
		"LEFT OUTER JOIN EL_ElementId       AS ElementId  ON EL.Id = ElementId.EditId " +
		"ORDER BY EL.Id ASC LIMIT ? OFFSET ?",
	SelectEditLogSize:      "SELECT X, Y FROM EL_Size WHERE EditId = ?",
	SelectEditLogRawPoints: "SELECT Points FROM EL_RawPoints WHERE EditId = ?",
	SelectColor: "SELECT Col.ColorType, Rgb.R, Rgb.G, Rgb.B, Hsluv.H, Hsluv.S, Hsluv.L FROM Color_Type AS Col " +
		"LEFT OUTER JOIN Color_Rgb   AS Rgb   ON Col.Color = Rgb.Color " +
		"LEFT OUTER JOIN Color_Hsluv AS Hsluv ON Col.Color = Hsluv.Color " +
		"WHERE Col.Color = ?",
	SelectBrushDefinition: "SELECT Brush.BrushType, Ink.MinWidth, Ink.MaxWidth, Ink.ScaleUpDistance FROM Brush_Type AS Brush " +
		"LEFT OUTER JOIN Brush_Ink AS Ink ON Brush.Brush = Ink.Brush " +
		"WHERE Brush.Brush = ?",
	SelectBrushProperties: "SELECT Size, Opacity, Color FROM BrushProperties WHERE BrushProperties = ?",
	SelectVectorElementsBefore: "SELECT Elem.ElementId, Elem.VectorElementType, Elem.AtTime, Brush.Brush, Brush.DrawingStyle, Props.BrushProperties, Assgn.AssignedId FROM VectorElement AS Elem " +
		"LEFT OUTER JOIN BrushElement           AS Brush ON Elem.ElementId = Brush.ElementId " +
		"LEFT OUTER JOIN BrushPropertiesElement AS Props ON Elem.ElementId = Props.ElementId " +
		"LEFT OUTER JOIN AssignedElementId      AS Assgn ON Elem.ElementId = Assgn.ElementId " +
		"WHERE Elem.KeyFrameId = ? AND Elem.AtTime <= ? " +
		"ORDER BY Elem.ElementId ASC",
	SelectBrushPoints:       "SELECT X1, Y1, X2, Y2, X3, Y3, Width FROM BrushPoint WHERE ElementId = ? ORDER BY PointId ASC",
	SelectMotionsForElement: "SELECT MotionId FROM MotionAttached WHERE ElementId = ? ORDER BY MotionId ASC",
	SelectElementsForMotion: "SELECT ElementId FROM MotionAttached WHERE MotionId = ? ORDER BY ElementId ASC",
	SelectMotion: "SELECT Mot.MotionType, Origin.X, Origin.Y FROM Motion AS Mot " +
		"LEFT OUTER JOIN MotionOrigin AS Origin ON Mot.MotionId = Origin.MotionId " +
		"WHERE Mot.MotionId = ?",
	SelectMotionTimePoints: "SELECT Point.X, Point.Y, Point.Milliseconds FROM MotionPath AS Path " +
		"INNER JOIN TimePoint AS Point ON Path.PointId = Point.PointId " +
		"WHERE Path.MotionId = ? AND Path.PathType = ? " +
		"ORDER BY Path.PointIndex ASC",

	UpdateAnimationSize: "UPDATE Animation SET SizeX = ?, SizeY = ? WHERE AnimationId = ?",
	UpdateMotionType:    "UPDATE Motion SET MotionType = ? WHERE MotionId = ?",

	InsertEnumValue: "INSERT INTO EnumerationDescriptions (FieldName, Value, ApiName, Comment) " +
		"SELECT ?, IFNULL((SELECT MAX(Value)+1 FROM EnumerationDescriptions WHERE FieldName = ?), 0), ?, ?",
	InsertEditType:               "INSERT INTO EditLog (Edit) VALUES (?)",
	InsertELSetSize:              "INSERT INTO EL_Size (EditId, X, Y) VALUES (?, ?, ?)",
	InsertELLayer:                "INSERT INTO EL_Layer (EditId, Layer) VALUES (?, ?)",
	InsertELWhen:                 "INSERT INTO EL_When (EditId, AtTime) VALUES (?, ?)",
	InsertELBrush:                "INSERT INTO EL_Brush (EditId, DrawingStyle, Brush) VALUES (?, ?, ?)",
	InsertELBrushProperties:      "INSERT INTO EL_BrushProperties (EditId, BrushProperties) VALUES (?, ?)",
	InsertELElementID:            "INSERT INTO EL_ElementId (EditId, ElementId) VALUES (?, ?)",
	InsertELRawPoints:            "INSERT INTO EL_RawPoints (EditId, Points) VALUES (?, ?)",
	InsertELMotionOrigin:         "INSERT INTO EL_MotionOrigin (EditId, X, Y) VALUES (?, ?, ?)",
	InsertELMotionType:           "INSERT INTO EL_MotionType (EditId, MotionType) VALUES (?, ?)",
	InsertELMotionElement:        "INSERT INTO EL_MotionAttach (EditId, AttachedElement) VALUES (?, ?)",
	InsertELMotionTimePoint:      "INSERT INTO EL_MotionPath (EditId, PointIndex, TimePointId) VALUES (?, ?, ?)",
	InsertTimePoint:              "INSERT INTO TimePoint (X, Y, Milliseconds) VALUES (?, ?, ?)",
	InsertBrushType:              "INSERT INTO Brush_Type (BrushType) VALUES (?)",
	InsertInkBrush:               "INSERT INTO Brush_Ink (Brush, MinWidth, MaxWidth, ScaleUpDistance) VALUES (?, ?, ?, ?)",
	InsertBrushProperties:        "INSERT INTO BrushProperties (Size, Opacity, Color) VALUES (?, ?, ?)",
	InsertColorType:              "INSERT INTO Color_Type (ColorType) VALUES (?)",
	InsertRgb:                    "INSERT INTO Color_Rgb (Color, R, G, B) VALUES (?, ?, ?, ?)",
	InsertHsluv:                  "INSERT INTO Color_Hsluv (Color, H, S, L) VALUES (?, ?, ?, ?)",
	InsertLayerType:              "INSERT INTO LayerType (LayerType) VALUES (?)",
	InsertAssignLayer:            "INSERT INTO AnimationLayers (AnimationId, LayerId, AssignedLayerId) VALUES (?, ?, ?)",
	InsertKeyFrame:               "INSERT INTO LayerKeyFrame (LayerId, AtTime) VALUES (?, ?)",
	InsertVectorElementType:      "INSERT INTO VectorElement (KeyFrameId, VectorElementType, AtTime) VALUES (?, ?, ?)",
	InsertElementAssignedID:      "INSERT INTO AssignedElementId (ElementId, AssignedId) VALUES (?, ?)",
	InsertBrushDefinitionElement: "INSERT INTO BrushElement (ElementId, Brush, DrawingStyle) VALUES (?, ?, ?)",
	InsertBrushPropertiesElement: "INSERT INTO BrushPropertiesElement (ElementId, BrushProperties) VALUES (?, ?)",
	InsertBrushPoint:             "INSERT INTO BrushPoint (ElementId, PointId, X1, Y1, X2, Y2, X3, Y3, Width) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
	InsertMotion:                 "INSERT INTO Motion (MotionId, MotionType) VALUES (?, ?)",
	InsertOrReplaceMotionOrigin:  "INSERT OR REPLACE INTO MotionOrigin (MotionId, X, Y) VALUES (?, ?, ?)",
	InsertMotionAttachedElement:  "INSERT INTO MotionAttached (MotionId, ElementId) VALUES (?, ?)",
	InsertMotionPathPoint:        "INSERT INTO MotionPath (MotionId, PathType, PointIndex, PointId) VALUES (?, ?, ?, ?)",

	DeleteKeyFrame:              "DELETE FROM LayerKeyFrame WHERE LayerId = ? AND AtTime = ?",
	DeleteLayer:                 "DELETE FROM LayerType WHERE LayerId = ?",
	DeleteMotion:                "DELETE FROM Motion WHERE MotionId = ?",
	DeleteMotionPoints:          "DELETE FROM MotionPath WHERE MotionId = ? AND PathType = ?",
	DeleteMotionAttachedElement: "DELETE FROM MotionAttached WHERE MotionId = ? AND ElementId = ?",
}
