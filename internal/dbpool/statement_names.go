package dbpool

// statementNames gives each tag a stable metrics label.
var statementNames = [numStatements]string{
	SelectEnumValue: "SelectEnumValue",
	SelectLayerID: "SelectLayerID",
	SelectNearestKeyFrame: "SelectNearestKeyFrame",
	SelectKeyFrameTimes: "SelectKeyFrameTimes",
	SelectAnimationSize: "SelectAnimationSize",
	SelectAnimationDuration: "SelectAnimationDuration",
	SelectAnimationFrameLength: "SelectAnimationFrameLength",
	SelectAssignedLayerIDs: "SelectAssignedLayerIDs",
	SelectEditLogLength: "SelectEditLogLength",
	SelectEditLogValues: "SelectEditLogValues",
	SelectEditLogSize: "SelectEditLogSize",
	SelectEditLogRawPoints: "SelectEditLogRawPoints",
	SelectColor: "SelectColor",
	SelectBrushDefinition: "SelectBrushDefinition",
	SelectBrushProperties: "SelectBrushProperties",
	SelectVectorElementsBefore: "SelectVectorElementsBefore",
	SelectBrushPoints: "SelectBrushPoints",
	SelectMotionsForElement: "SelectMotionsForElement",
	SelectElementsForMotion: "SelectElementsForMotion",
	SelectMotion: "SelectMotion",
	SelectMotionTimePoints: "SelectMotionTimePoints",
	UpdateAnimationSize: "UpdateAnimationSize",
	UpdateMotionType: "UpdateMotionType",
	InsertEnumValue: "InsertEnumValue",
	InsertEditType: "InsertEditType",
	InsertELSetSize: "InsertELSetSize",
	InsertELLayer: "InsertELLayer",
	InsertELWhen: "InsertELWhen",
	InsertELBrush: "InsertELBrush",
	InsertELBrushProperties: "InsertELBrushProperties",
	InsertELElementID: "InsertELElementID",
	InsertELRawPoints: "InsertELRawPoints",
	InsertELMotionOrigin: "InsertELMotionOrigin",
	InsertELMotionType: "InsertELMotionType",
	InsertELMotionElement: "InsertELMotionElement",
	InsertELMotionTimePoint: "InsertELMotionTimePoint",
	InsertTimePoint: "InsertTimePoint",
	InsertBrushType: "InsertBrushType",
	InsertInkBrush: "InsertInkBrush",
	InsertBrushProperties: "InsertBrushProperties",
	InsertColorType: "InsertColorType",
	InsertRgb: "InsertRgb",
	InsertHsluv: "InsertHsluv",
	InsertLayerType: "InsertLayerType",
	InsertAssignLayer: "InsertAssignLayer",
	InsertKeyFrame: "InsertKeyFrame",
	InsertVectorElementType: "InsertVectorElementType",
	InsertElementAssignedID: "InsertElementAssignedID",
	InsertBrushDefinitionElement: "InsertBrushDefinitionElement",
	InsertBrushPropertiesElement: "InsertBrushPropertiesElement",
	InsertBrushPoint: "InsertBrushPoint",
	InsertMotion: "InsertMotion",
	InsertOrReplaceMotionOrigin: "InsertOrReplaceMotionOrigin",
	InsertMotionAttachedElement: "InsertMotionAttachedElement",
	InsertMotionPathPoint: "InsertMotionPathPoint",
	DeleteKeyFrame: "DeleteKeyFrame",
	DeleteLayer: "DeleteLayer",
	DeleteMotion: "DeleteMotion",
	DeleteMotionPoints: "DeleteMotionPoints",
	DeleteMotionAttachedElement: "DeleteMotionAttachedElement",
}
