package graph

// ---------------------------------------------------------------------------
// Material
// ---------------------------------------------------------------------------

// MaterialSpec describes the stock a part is cut from. Thickness is the
// nominal sheet thickness in mm.
type MaterialSpec struct {
	Species   string  `json:"species,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Grade     string  `json:"grade,omitempty"`
}

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// PrimitiveKind distinguishes primitive shapes.
type PrimitiveKind int

const (
	PrimBoard PrimitiveKind = iota // rectangular solid
	PrimDowel                      // cylindrical solid
	PrimPanel                      // outline extruded to a thickness
)

// BoardData is a rectangular piece with its minimum corner at the origin.
type BoardData struct {
	PrimKind   PrimitiveKind `json:"prim_kind"`
	Dimensions Vec3          `json:"dimensions"` // length x width x thickness
	Grain      Axis          `json:"grain"`
	Material   MaterialSpec  `json:"material"`
}

func (BoardData) nodeData() {}

// DowelData is a cylinder standing on the XY plane.
type DowelData struct {
	PrimKind PrimitiveKind `json:"prim_kind"`
	Diameter float64       `json:"diameter"`
	Length   float64       `json:"length"`
	Material MaterialSpec  `json:"material"`
}

func (DowelData) nodeData() {}

// PanelData is a closed outline in the XY plane extruded along +Z.
type PanelData struct {
	PrimKind  PrimitiveKind `json:"prim_kind"`
	Outline   []Vec2        `json:"outline"`
	Thickness float64       `json:"thickness"`
	Material  MaterialSpec  `json:"material"`
}

func (PanelData) nodeData() {}

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// TransformData places its child. Rotation is applied before translation.
type TransformData struct {
	Translation *Vec3 `json:"translation,omitempty"`
	Rotation    *Vec3 `json:"rotation,omitempty"` // Euler angles in degrees
}

func (TransformData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData is an assembly of placed parts and joinery.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}

// ---------------------------------------------------------------------------
// Join
// ---------------------------------------------------------------------------

// JoinKind enumerates joint types.
type JoinKind int

const (
	JoinButt JoinKind = iota
	JoinRabbet
	JoinDado
)

func (k JoinKind) String() string {
	switch k {
	case JoinButt:
		return "butt"
	case JoinRabbet:
		return "rabbet"
	case JoinDado:
		return "dado"
	default:
		return "unknown"
	}
}

// JoinData records how two parts meet. Joints carry no geometry.
type JoinData struct {
	Kind      JoinKind `json:"kind"`
	PartA     NodeID   `json:"part_a"`
	FaceA     FaceID   `json:"face_a"`
	PartB     NodeID   `json:"part_b"`
	FaceB     FaceID   `json:"face_b"`
	Clearance float64  `json:"clearance"` // 0 means the graph default
	GlueUp    bool     `json:"glue_up"`
	Fasteners []NodeID `json:"fasteners,omitempty"`
}

func (JoinData) nodeData() {}

// ---------------------------------------------------------------------------
// Drill
// ---------------------------------------------------------------------------

// DrillData marks a hole on a part face.
type DrillData struct {
	TargetPart NodeID  `json:"target_part"`
	Face       FaceID  `json:"face"`
	Position   Vec3    `json:"position"`
	Diameter   float64 `json:"diameter"`
	Depth      float64 `json:"depth"` // 0 = through
}

func (DrillData) nodeData() {}

// ---------------------------------------------------------------------------
// Fastener
// ---------------------------------------------------------------------------

// FastenerKind enumerates fastener types.
type FastenerKind int

const (
	FastenerScrew FastenerKind = iota
	FastenerNail
	FastenerBolt
)

func (k FastenerKind) String() string {
	switch k {
	case FastenerScrew:
		return "screw"
	case FastenerNail:
		return "nail"
	case FastenerBolt:
		return "bolt"
	default:
		return "unknown"
	}
}

// FastenerData is a fastener driven through a join.
type FastenerData struct {
	Kind     FastenerKind `json:"kind"`
	Diameter float64      `json:"diameter"`
	Length   float64      `json:"length"`
	HeadDia  float64      `json:"head_dia"`
	Position Vec3         `json:"position"`
	JoinRef  NodeID       `json:"join_ref"`
}

func (FastenerData) nodeData() {}
