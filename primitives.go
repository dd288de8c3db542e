package goxviz

// Base carries the optional per-primitive metadata that is independent of
// the geometric kind.
type Base struct {
	ObjectID string
	Style    Style
	Classes  []string
}

// Empty reports whether none of the base fields are set.
func (b *Base) Empty() bool {
	return b == nil || (b.ObjectID == "" && b.Style == nil && len(b.Classes) == 0)
}

func (b *Base) object() map[string]any {
	out := map[string]any{}
	if b.ObjectID != "" {
		out["object_id"] = b.ObjectID
	}
	if b.Style != nil {
		out["style"] = map[string]any(b.Style)
	}
	if len(b.Classes) > 0 {
		out["classes"] = append([]string(nil), b.Classes...)
	}
	return out
}

// Primitive is one formatted, immutable primitive record. The concrete type
// determines which fields exist.
type Primitive interface {
	Kind() PrimitiveKind
	// Metadata returns the base record, or nil when no base field was set.
	Metadata() *Base
	// Object renders the record as plain nested maps and slices.
	Object() map[string]any
}

// Polygon is a closed shape.
type Polygon struct {
	Vertices []Point
	Base     *Base
}

// Polyline is an open path.
type Polyline struct {
	Vertices []Point
	Base     *Base
}

// Points is a point cloud with optional per-point colors.
type Points struct {
	Points []Point
	Colors []Color
	Base   *Base
}

// Text is a label anchored at Position.
type Text struct {
	Position Point
	Text     string
	Base     *Base
}

// Circle is a disc around Center.
type Circle struct {
	Center Point
	Radius float64
	Base   *Base
}

// Stadium is a capsule between Start and End.
type Stadium struct {
	Start  Point
	End    Point
	Radius float64
	Base   *Base
}

// Image is an encoded or raw image payload. WidthPx and HeightPx are zero
// when not provided.
type Image struct {
	Data     any
	WidthPx  int
	HeightPx int
	Position Point
	Base     *Base
}

func (Polygon) Kind() PrimitiveKind  { return KindPolygon }
func (Polyline) Kind() PrimitiveKind { return KindPolyline }
func (Points) Kind() PrimitiveKind   { return KindPoint }
func (Text) Kind() PrimitiveKind     { return KindText }
func (Circle) Kind() PrimitiveKind   { return KindCircle }
func (Stadium) Kind() PrimitiveKind  { return KindStadium }
func (Image) Kind() PrimitiveKind    { return KindImage }

func (p Polygon) Metadata() *Base  { return p.Base }
func (p Polyline) Metadata() *Base { return p.Base }
func (p Points) Metadata() *Base   { return p.Base }
func (p Text) Metadata() *Base     { return p.Base }
func (p Circle) Metadata() *Base   { return p.Base }
func (p Stadium) Metadata() *Base  { return p.Base }
func (p Image) Metadata() *Base    { return p.Base }

func (p Polygon) Object() map[string]any {
	return withBase(map[string]any{"vertices": plainPoints(p.Vertices)}, p.Base)
}

func (p Polyline) Object() map[string]any {
	return withBase(map[string]any{"vertices": plainPoints(p.Vertices)}, p.Base)
}

func (p Points) Object() map[string]any {
	out := map[string]any{"points": plainPoints(p.Points)}
	if len(p.Colors) > 0 {
		// []uint8 would be rendered as a byte string by most encoders.
		cs := make([][]int, len(p.Colors))
		for i, c := range p.Colors {
			cs[i] = make([]int, len(c))
			for j, ch := range c {
				cs[i][j] = int(ch)
			}
		}
		out["colors"] = cs
	}
	return withBase(out, p.Base)
}

func (p Text) Object() map[string]any {
	out := map[string]any{"text": p.Text}
	if p.Position != nil {
		out["position"] = plainPoint(p.Position)
	}
	return withBase(out, p.Base)
}

func (p Circle) Object() map[string]any {
	out := map[string]any{"radius": p.Radius}
	if p.Center != nil {
		out["center"] = plainPoint(p.Center)
	}
	return withBase(out, p.Base)
}

func (p Stadium) Object() map[string]any {
	return withBase(map[string]any{
		"start":  plainPoint(p.Start),
		"end":    plainPoint(p.End),
		"radius": p.Radius,
	}, p.Base)
}

func (p Image) Object() map[string]any {
	out := map[string]any{"data": p.Data}
	if p.WidthPx > 0 {
		out["width_px"] = p.WidthPx
	}
	if p.HeightPx > 0 {
		out["height_px"] = p.HeightPx
	}
	if p.Position != nil {
		out["position"] = plainPoint(p.Position)
	}
	return withBase(out, p.Base)
}

func withBase(out map[string]any, b *Base) map[string]any {
	if !b.Empty() {
		out["base"] = b.object()
	}
	return out
}

func plainPoint(p Point) []float64 {
	if p == nil {
		return nil
	}
	return append([]float64(nil), p...)
}

func plainPoints(ps []Point) [][]float64 {
	if ps == nil {
		return nil
	}
	out := make([][]float64, len(ps))
	for i, p := range ps {
		out[i] = plainPoint(p)
	}
	return out
}
