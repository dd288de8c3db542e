package scene

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	goxviz "github.com/reoring/goxviz"
	"github.com/reoring/goxviz/builder"
)

// AutoID is the id value that requests a generated object id.
const AutoID = "auto"

var newID = uuid.NewString

// Apply replays f through b. It returns an error only for malformed frame
// entries (unknown kinds, wrong tuple sizes on pose fields); validation
// issues are recorded by b and surface from b.GetMessage.
func Apply(b *builder.Builder, f Frame) error {
	for _, id := range sortedKeys(f.Poses) {
		if err := applyPose(b.Pose(id), f.Poses[id]); err != nil {
			return fmt.Errorf("pose %s: %w", id, err)
		}
	}
	for _, id := range sortedKeys(f.Variables) {
		vb := b.Variable(id)
		for _, v := range f.Variables[id] {
			vb.Values(v.Values)
			if v.ID != "" {
				vb.ID(objectID(v.ID))
			}
		}
	}
	for _, id := range sortedKeys(f.Primitives) {
		pb := b.Primitive(id)
		for i, p := range f.Primitives[id] {
			if err := applyPrimitive(pb, p); err != nil {
				return fmt.Errorf("primitive %s[%d]: %w", id, i, err)
			}
		}
	}
	return nil
}

func applyPose(pb *builder.PoseBuilder, p PoseSpec) error {
	if p.Timestamp != nil {
		pb.Timestamp(*p.Timestamp)
	}
	if p.MapOrigin != nil {
		pb.MapOrigin(p.MapOrigin.Longitude, p.MapOrigin.Latitude, p.MapOrigin.Altitude)
	}
	if p.Position != nil {
		if len(p.Position) != 3 {
			return fmt.Errorf("position must have 3 elements, got %d", len(p.Position))
		}
		pb.Position(p.Position[0], p.Position[1], p.Position[2])
	}
	if p.Orientation != nil {
		if len(p.Orientation) != 3 {
			return fmt.Errorf("orientation must have 3 elements, got %d", len(p.Orientation))
		}
		pb.Orientation(p.Orientation[0], p.Orientation[1], p.Orientation[2])
	}
	return nil
}

func applyPrimitive(pb *builder.PrimitiveBuilder, p PrimitiveSpec) error {
	switch goxviz.PrimitiveKind(p.Kind) {
	case goxviz.KindImage:
		var data any
		if p.Data != "" {
			data = p.Data
		}
		pb.Image(data)
		if p.Width > 0 || p.Height > 0 {
			pb.Dimensions(p.Width, p.Height)
		}
		if p.Position != nil {
			pb.Position(p.Position)
		}
	case goxviz.KindPolygon:
		pb.Polygon(points(p.Vertices))
	case goxviz.KindPolyline:
		pb.Polyline(points(p.Vertices))
	case goxviz.KindPoint:
		pb.Points(points(p.Vertices))
		if p.Colors != nil {
			cs := make([]goxviz.Color, len(p.Colors))
			for i, c := range p.Colors {
				cs[i] = c
			}
			pb.Colors(cs)
		}
	case goxviz.KindCircle:
		pb.Circle(p.Position, p.Radius)
	case goxviz.KindStadium:
		pb.Stadium(p.Start, p.End, p.Radius)
	case goxviz.KindText:
		pb.Text(p.Text)
		if p.Position != nil {
			pb.Position(p.Position)
		}
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Style != nil {
		pb.Style(p.Style)
	}
	if p.ID != "" {
		pb.ID(objectID(p.ID))
	}
	if p.Classes != nil {
		pb.Classes(p.Classes...)
	}
	return nil
}

func objectID(id string) string {
	if id == AutoID {
		return newID()
	}
	return id
}

func points(vs [][]float64) []goxviz.Point {
	if vs == nil {
		return nil
	}
	out := make([]goxviz.Point, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
