package builder

import (
	"fmt"

	goxviz "github.com/reoring/goxviz"
)

const (
	fieldVertices field = 1 << iota
	fieldRadius
	fieldText
	fieldImage
	fieldDimensions
	fieldColors
	fieldStyle
	fieldID
	fieldClasses
)

var primitiveFieldNames = map[field]string{
	fieldVertices:   "vertices",
	fieldRadius:     "radius",
	fieldText:       "text",
	fieldImage:      "image",
	fieldDimensions: "dimensions",
	fieldColors:     "colors",
	fieldStyle:      "style",
	fieldID:         "id",
	fieldClasses:    "classes",
}

type pendingState int

const (
	stateEmpty   pendingState = iota // no kind chosen
	statePending                     // fields being filled for the current kind
)

type pendingPrimitive struct {
	kind     goxviz.PrimitiveKind
	set      field
	vertices []goxviz.Point
	radius   float64
	text     string
	image    any
	widthPx  int
	heightPx int
	colors   []goxviz.Color
	style    goxviz.Style
	id       string
	classes  []string
}

func (p *pendingPrimitive) vertex(i int) goxviz.Point {
	if i < len(p.vertices) {
		return p.vertices[i]
	}
	return nil
}

func (p *pendingPrimitive) base() *goxviz.Base {
	b := &goxviz.Base{ObjectID: p.id, Style: p.style, Classes: p.classes}
	if b.Empty() {
		return nil
	}
	return b
}

// PrimitiveBuilder accumulates one primitive at a time and commits it into a
// per-stream, per-kind collection. Starting a new shape while one is pending
// flushes the pending one first.
type PrimitiveBuilder struct {
	BaseBuilder
	primitives goxviz.StreamCollection
	pending    pendingPrimitive
}

var _ streamBuilder = (*PrimitiveBuilder)(nil)

// NewPrimitiveBuilder returns an empty builder reporting to v. Records for
// disabled streams are validated but never committed.
func NewPrimitiveBuilder(v *goxviz.Validator, disabledStreams ...string) *PrimitiveBuilder {
	return &PrimitiveBuilder{
		BaseBuilder: newBaseBuilder(goxviz.CategoryPrimitive, v, disabledStreams),
		primitives:  goxviz.StreamCollection{},
	}
}

// Stream commits any pending primitive and switches to stream id. Position or
// colors set without a shape cannot follow the builder to another stream.
func (b *PrimitiveBuilder) Stream(id string) *PrimitiveBuilder {
	if b.err != nil || (id != b.streamID && b.orphaned()) {
		return b
	}
	b.stream(b, id)
	return b
}

func (b *PrimitiveBuilder) state() pendingState {
	if b.pending.kind == "" {
		return stateEmpty
	}
	return statePending
}

// begin moves the builder into Pending(kind). From Pending the previous
// primitive is flushed first; from Empty the fields the new shape sets must
// not have been set by an earlier modifier.
func (b *PrimitiveBuilder) begin(kind goxviz.PrimitiveKind, fields ...field) bool {
	switch b.state() {
	case statePending:
		b.flush()
		if b.err != nil {
			return false
		}
	case stateEmpty:
		for _, f := range fields {
			if !b.setOnce(b.pending.set, f, primitiveFieldNames[f]) {
				return false
			}
		}
	}
	b.pending.kind = kind
	for _, f := range fields {
		b.pending.set |= f
	}
	return true
}

// Image starts an image primitive. data must be a byte buffer, an encoded
// string or a numeric slice; nil is accepted and reported as a warning on flush.
func (b *PrimitiveBuilder) Image(data any) *PrimitiveBuilder {
	if b.err != nil {
		return b
	}
	switch data.(type) {
	case nil, []byte, string, []float32, []float64, []int:
	default:
		b.fail(goxviz.CodeInvalidPayload, map[string]string{"field": "image", "got": fmt.Sprintf("%T", data)})
		return b
	}
	if b.begin(goxviz.KindImage, fieldImage) {
		b.pending.image = data
	}
	return b
}

// Dimensions attaches pixel dimensions to the pending image. Zero leaves a
// dimension unset.
func (b *PrimitiveBuilder) Dimensions(widthPx, heightPx int) *PrimitiveBuilder {
	if b.err != nil {
		return b
	}
	if b.pending.kind != goxviz.KindImage {
		b.fail(goxviz.CodePrerequisite, map[string]string{"op": "dimensions", "requires": "image()"})
		return b
	}
	if !b.setOnce(b.pending.set, fieldDimensions, "dimensions") {
		return b
	}
	if widthPx < 0 || heightPx < 0 {
		b.fail(goxviz.CodeInvalidPayload, map[string]string{"field": "dimensions", "got": fmt.Sprintf("%dx%d", widthPx, heightPx)})
		return b
	}
	b.pending.widthPx, b.pending.heightPx = widthPx, heightPx
	b.pending.set |= fieldDimensions
	return b
}

// Polygon starts a closed polygon.
func (b *PrimitiveBuilder) Polygon(vertices []goxviz.Point) *PrimitiveBuilder {
	return b.path(goxviz.KindPolygon, vertices)
}

// Polyline starts an open polyline.
func (b *PrimitiveBuilder) Polyline(vertices []goxviz.Point) *PrimitiveBuilder {
	return b.path(goxviz.KindPolyline, vertices)
}

// Points starts a point cloud.
func (b *PrimitiveBuilder) Points(vertices []goxviz.Point) *PrimitiveBuilder {
	return b.path(goxviz.KindPoint, vertices)
}

func (b *PrimitiveBuilder) path(kind goxviz.PrimitiveKind, vertices []goxviz.Point) *PrimitiveBuilder {
	if b.err != nil {
		return b
	}
	for i, v := range vertices {
		if !b.checkPoint(v, fmt.Sprintf("vertices[%d]", i)) {
			return b
		}
	}
	if b.begin(kind, fieldVertices) {
		b.pending.vertices = clonePoints(vertices)
	}
	return b
}

// Circle starts a circle centred at position.
func (b *PrimitiveBuilder) Circle(position goxviz.Point, radius float64) *PrimitiveBuilder {
	if b.err != nil || !b.checkPoint(position, "position") {
		return b
	}
	if b.begin(goxviz.KindCircle, fieldVertices, fieldRadius) {
		b.pending.vertices = clonePoints([]goxviz.Point{position})
		b.pending.radius = radius
	}
	return b
}

// Stadium starts a stadium between start and end.
func (b *PrimitiveBuilder) Stadium(start, end goxviz.Point, radius float64) *PrimitiveBuilder {
	if b.err != nil || !b.checkPoint(start, "start") || !b.checkPoint(end, "end") {
		return b
	}
	if b.begin(goxviz.KindStadium, fieldVertices, fieldRadius) {
		b.pending.vertices = clonePoints([]goxviz.Point{start, end})
		b.pending.radius = radius
	}
	return b
}

// Text starts a text label. Anchor it with Position.
func (b *PrimitiveBuilder) Text(message string) *PrimitiveBuilder {
	if b.err != nil {
		return b
	}
	if b.begin(goxviz.KindText, fieldText) {
		b.pending.text = message
	}
	return b
}

// Position sets a single-point anchor for the pending primitive.
func (b *PrimitiveBuilder) Position(point goxviz.Point) *PrimitiveBuilder {
	if b.err != nil || !b.setOnce(b.pending.set, fieldVertices, "position") || !b.checkPoint(point, "position") {
		return b
	}
	b.pending.vertices = clonePoints([]goxviz.Point{point})
	b.pending.set |= fieldVertices
	return b
}

// Colors sets per-point colors.
func (b *PrimitiveBuilder) Colors(colors []goxviz.Color) *PrimitiveBuilder {
	if b.err != nil || !b.setOnce(b.pending.set, fieldColors, "colors") {
		return b
	}
	b.pending.colors = append([]goxviz.Color(nil), colors...)
	b.pending.set |= fieldColors
	return b
}

// Style attaches a style specification to the pending primitive.
func (b *PrimitiveBuilder) Style(style goxviz.Style) *PrimitiveBuilder {
	if b.err != nil || !b.requireShape("style") || !b.setOnce(b.pending.set, fieldStyle, "style") {
		return b
	}
	b.pending.style = style
	b.pending.set |= fieldStyle
	return b
}

// ID sets the object id of the pending primitive.
func (b *PrimitiveBuilder) ID(identifier string) *PrimitiveBuilder {
	if b.err != nil || !b.requireShape("id") || !b.setOnce(b.pending.set, fieldID, "id") {
		return b
	}
	b.pending.id = identifier
	b.pending.set |= fieldID
	return b
}

// Classes sets the class tags of the pending primitive. Duplicates are dropped,
// first occurrence wins.
func (b *PrimitiveBuilder) Classes(classes ...string) *PrimitiveBuilder {
	if b.err != nil || !b.requireShape("classes") || !b.setOnce(b.pending.set, fieldClasses, "classes") {
		return b
	}
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	b.pending.classes = out
	b.pending.set |= fieldClasses
	return b
}

func (b *PrimitiveBuilder) requireShape(op string) bool {
	if b.state() == stateEmpty {
		b.fail(goxviz.CodePrerequisite, map[string]string{"op": op, "requires": "a shape such as polygon() or image()"})
		return false
	}
	return true
}

// orphaned fails when modifiers were applied in the Empty state and no shape
// followed them.
func (b *PrimitiveBuilder) orphaned() bool {
	if b.state() != stateEmpty || b.pending.set == 0 {
		return false
	}
	op := "colors"
	if b.pending.set&fieldVertices != 0 {
		op = "position"
	}
	b.fail(goxviz.CodePrerequisite, map[string]string{"op": op, "requires": "a shape such as polygon() or image()"})
	return true
}

// GetData commits any pending primitive and returns the collection, or nil
// when nothing was produced.
func (b *PrimitiveBuilder) GetData() (goxviz.StreamCollection, error) {
	if b.err == nil && !b.orphaned() && b.hasPending() {
		b.flush()
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.primitives) == 0 {
		return nil, nil
	}
	return b.primitives, nil
}

// Reset drops all accumulated primitives, the pending primitive, the stream
// selection and any recorded error.
func (b *PrimitiveBuilder) Reset() {
	b.primitives = goxviz.StreamCollection{}
	b.resetPending()
	b.resetBase()
}

func (b *PrimitiveBuilder) hasPending() bool { return b.state() == statePending }

func (b *PrimitiveBuilder) flush() {
	ok, warned := b.validateScope(b.pending.kind)
	if !ok {
		return
	}
	if b.pending.kind == goxviz.KindImage {
		if payloadEmpty(b.pending.image) {
			b.warn(goxviz.CodeMissingImage, map[string]string{"stream": b.streamID})
			warned = true
		}
	} else if len(b.pending.vertices) == 0 {
		b.warn(goxviz.CodeMissingVertices, map[string]string{"stream": b.streamID})
		warned = true
	}
	if b.keep(warned) {
		b.primitives.Append(b.streamID, b.format())
	}
	b.resetPending()
}

func (b *PrimitiveBuilder) format() goxviz.Primitive {
	p := &b.pending
	base := p.base()
	switch p.kind {
	case goxviz.KindPolygon:
		return goxviz.Polygon{Vertices: p.vertices, Base: base}
	case goxviz.KindPolyline:
		return goxviz.Polyline{Vertices: p.vertices, Base: base}
	case goxviz.KindPoint:
		return goxviz.Points{Points: p.vertices, Colors: p.colors, Base: base}
	case goxviz.KindText:
		return goxviz.Text{Position: p.vertex(0), Text: p.text, Base: base}
	case goxviz.KindCircle:
		return goxviz.Circle{Center: p.vertex(0), Radius: p.radius, Base: base}
	case goxviz.KindStadium:
		return goxviz.Stadium{Start: p.vertex(0), End: p.vertex(1), Radius: p.radius, Base: base}
	default:
		return goxviz.Image{Data: p.image, WidthPx: p.widthPx, HeightPx: p.heightPx, Position: p.vertex(0), Base: base}
	}
}

// payloadEmpty reports whether an accepted image payload carries no data.
func payloadEmpty(data any) bool {
	switch d := data.(type) {
	case []byte:
		return len(d) == 0
	case string:
		return d == ""
	case []float32:
		return len(d) == 0
	case []float64:
		return len(d) == 0
	case []int:
		return len(d) == 0
	}
	return data == nil
}

func (b *PrimitiveBuilder) resetPending() { b.pending = pendingPrimitive{} }

func clonePoints(ps []goxviz.Point) []goxviz.Point {
	if ps == nil {
		return nil
	}
	out := make([]goxviz.Point, len(ps))
	for i, p := range ps {
		out[i] = append(goxviz.Point(nil), p...)
	}
	return out
}
