package goxviz

// PrimaryPoseStream is the pose stream every message must carry.
const PrimaryPoseStream = "/vehicle_pose"

// Category identifies the builder family a stream belongs to.
type Category string

const (
	CategoryPose      Category = "pose"
	CategoryPrimitive Category = "primitive"
	CategoryVariable  Category = "variable"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPose, CategoryPrimitive, CategoryVariable:
		return true
	}
	return false
}

// PrimitiveKind is the closed set of primitive shapes. The zero value means
// no shape has been started.
type PrimitiveKind string

const (
	KindImage    PrimitiveKind = "image"
	KindPolygon  PrimitiveKind = "polygon"
	KindPolyline PrimitiveKind = "polyline"
	KindPoint    PrimitiveKind = "point"
	KindCircle   PrimitiveKind = "circle"
	KindStadium  PrimitiveKind = "stadium"
	KindText     PrimitiveKind = "text"
)

// PrimitiveKinds lists every kind in declaration order.
var PrimitiveKinds = []PrimitiveKind{KindImage, KindPolygon, KindPolyline, KindPoint, KindCircle, KindStadium, KindText}

// Valid reports whether k is one of the known kinds.
func (k PrimitiveKind) Valid() bool {
	for _, v := range PrimitiveKinds {
		if v == k {
			return true
		}
	}
	return false
}

// Plural returns the collection key primitives of this kind are grouped under.
func (k PrimitiveKind) Plural() string { return string(k) + "s" }

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// WarningPolicy controls what happens to a pending record that produced a
// warning when it is flushed.
type WarningPolicy int

const (
	WarnFlush  WarningPolicy = iota // Record the warning and commit the record.
	WarnReject                      // Record the warning and drop the record.
)

// Point is an [x, y, z] coordinate. It is a slice so that malformed input
// can be reported instead of silently truncated.
type Point []float64

// Valid reports whether p has exactly three coordinates.
func (p Point) Valid() bool { return len(p) == 3 }

// Color is an [r, g, b] or [r, g, b, a] tuple.
type Color []uint8

// Style is a free-form style specification attached to a primitive.
type Style map[string]any

// StreamMetadata declares what a stream is expected to carry.
type StreamMetadata struct {
	Category      Category
	PrimitiveType PrimitiveKind // only meaningful for CategoryPrimitive
}
