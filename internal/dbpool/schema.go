package dbpool

// bootstrapSchema creates every table the interpreter and query layer
// read and write. Column types use the narrowest SQLite affinity that
// can hold the values written to them (INTEGER for ids/codes/counts
// and for microsecond/nanosecond times, REAL for the other
// measurements, BLOB for the raw points wire format, TEXT for enum
// names).
//
// Table and column names are PascalCase, matching the domain's logical
// entity and field names 1:1 rather than translating them into
// snake_case.
const bootstrapSchema = `
CREATE TABLE IF NOT EXISTS Config (
	Package TEXT NOT NULL,
	Version TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Animation (
	AnimationId   INTEGER PRIMARY KEY,
	SizeX         REAL NOT NULL DEFAULT 1920,
	SizeY         REAL NOT NULL DEFAULT 1080,
	Duration      REAL NOT NULL DEFAULT 0,
	FrameLengthNs INTEGER NOT NULL DEFAULT 41666667
);

CREATE TABLE IF NOT EXISTS EnumerationDescriptions (
	FieldName TEXT NOT NULL,
	Value     INTEGER NOT NULL,
	ApiName   TEXT NOT NULL,
	Comment   TEXT NOT NULL DEFAULT '',
	UNIQUE (FieldName, ApiName),
	UNIQUE (FieldName, Value)
);

CREATE TABLE IF NOT EXISTS EditLog (
	Id   INTEGER PRIMARY KEY AUTOINCREMENT,
	Edit INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_Size (
	EditId INTEGER NOT NULL,
	X      REAL NOT NULL,
	Y      REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_Layer (
	EditId INTEGER NOT NULL,
	Layer  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_When (
	EditId INTEGER NOT NULL,
	AtTime INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_Brush (
	EditId       INTEGER NOT NULL,
	DrawingStyle INTEGER NOT NULL,
	Brush        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_BrushProperties (
	EditId          INTEGER NOT NULL,
	BrushProperties INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_ElementId (
	EditId    INTEGER NOT NULL,
	ElementId INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_RawPoints (
	EditId INTEGER NOT NULL,
	Points BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_MotionOrigin (
	EditId INTEGER NOT NULL,
	X      REAL NOT NULL,
	Y      REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_MotionType (
	EditId     INTEGER NOT NULL,
	MotionType INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_MotionAttach (
	EditId          INTEGER NOT NULL,
	AttachedElement INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS EL_MotionPath (
	EditId      INTEGER NOT NULL,
	PointIndex  INTEGER NOT NULL,
	TimePointId INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS LayerType (
	LayerId   INTEGER PRIMARY KEY AUTOINCREMENT,
	LayerType INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS AnimationLayers (
	AnimationId    INTEGER NOT NULL,
	LayerId        INTEGER NOT NULL,
	AssignedLayerId INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS LayerKeyFrame (
	KeyFrameId INTEGER PRIMARY KEY AUTOINCREMENT,
	LayerId    INTEGER NOT NULL,
	AtTime     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS VectorElement (
	ElementId         INTEGER PRIMARY KEY AUTOINCREMENT,
	KeyFrameId        INTEGER NOT NULL,
	VectorElementType INTEGER NOT NULL,
	AtTime            INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS BrushElement (
	ElementId    INTEGER NOT NULL,
	Brush        INTEGER NOT NULL,
	DrawingStyle INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS BrushPropertiesElement (
	ElementId       INTEGER NOT NULL,
	BrushProperties INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS BrushPoint (
	ElementId INTEGER NOT NULL,
	PointId   INTEGER NOT NULL,
	X1 REAL NOT NULL, Y1 REAL NOT NULL,
	X2 REAL NOT NULL, Y2 REAL NOT NULL,
	X3 REAL NOT NULL, Y3 REAL NOT NULL,
	Width REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS AssignedElementId (
	ElementId  INTEGER NOT NULL,
	AssignedId INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Brush_Type (
	Brush     INTEGER PRIMARY KEY AUTOINCREMENT,
	BrushType INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Brush_Ink (
	Brush           INTEGER NOT NULL,
	MinWidth        REAL NOT NULL,
	MaxWidth        REAL NOT NULL,
	ScaleUpDistance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS BrushProperties (
	BrushProperties INTEGER PRIMARY KEY AUTOINCREMENT,
	Size            REAL NOT NULL,
	Opacity         REAL NOT NULL,
	Color           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Color_Type (
	Color     INTEGER PRIMARY KEY AUTOINCREMENT,
	ColorType INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Color_Rgb (
	Color INTEGER NOT NULL,
	R REAL NOT NULL, G REAL NOT NULL, B REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS Color_Hsluv (
	Color INTEGER NOT NULL,
	H REAL NOT NULL, S REAL NOT NULL, L REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS Motion (
	MotionId   INTEGER PRIMARY KEY,
	MotionType INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS MotionOrigin (
	MotionId INTEGER PRIMARY KEY,
	X REAL NOT NULL, Y REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS MotionAttached (
	MotionId  INTEGER NOT NULL,
	ElementId INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS MotionPath (
	MotionId   INTEGER NOT NULL,
	PathType   INTEGER NOT NULL,
	PointIndex INTEGER NOT NULL,
	PointId    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS TimePoint (
	PointId      INTEGER PRIMARY KEY AUTOINCREMENT,
	X REAL NOT NULL, Y REAL NOT NULL,
	Milliseconds REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_layerkeyframe_layer ON LayerKeyFrame(LayerId, AtTime);
CREATE INDEX IF NOT EXISTS idx_vectorelement_keyframe ON VectorElement(KeyFrameId, AtTime);
CREATE INDEX IF NOT EXISTS idx_brushpoint_element ON BrushPoint(ElementId, PointId);
CREATE INDEX IF NOT EXISTS idx_motionattached_element ON MotionAttached(ElementId);
CREATE INDEX IF NOT EXISTS idx_motionattached_motion ON MotionAttached(MotionId);
CREATE INDEX IF NOT EXISTS idx_motionpath_motion ON MotionPath(MotionId, PathType, PointIndex);
`

// seedData inserts the singleton animation row if it is missing. Pool
// setup runs it on every open, immediately after bootstrapSchema, as a
// separate statement outside any transaction; the version marker is
// written by setup itself.
const seedData = `
INSERT INTO Animation (AnimationId, SizeX, SizeY, Duration, FrameLengthNs)
	SELECT 0, 1920, 1080, 0, 41666667
	WHERE NOT EXISTS (SELECT 1 FROM Animation WHERE AnimationId = 0);
`
