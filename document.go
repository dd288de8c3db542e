package goxviz

// UpdateTypeSnapshot is the only update type the builders emit.
const UpdateTypeSnapshot = "SNAPSHOT"

// StreamCollection maps a stream id to the primitives written to it, grouped
// by pluralized kind. Order within each slice is paint order.
type StreamCollection map[string]map[string][]Primitive

// Append adds p to stream under its pluralized kind, creating both levels as needed.
func (c StreamCollection) Append(stream string, p Primitive) {
	byKind, ok := c[stream]
	if !ok {
		byKind = map[string][]Primitive{}
		c[stream] = byKind
	}
	key := p.Kind().Plural()
	byKind[key] = append(byKind[key], p)
}

// Object renders the collection as plain nested maps and slices.
func (c StreamCollection) Object() map[string]any {
	if c == nil {
		return nil
	}
	out := make(map[string]any, len(c))
	for stream, byKind := range c {
		kinds := make(map[string]any, len(byKind))
		for key, prims := range byKind {
			objs := make([]any, len(prims))
			for i, p := range prims {
				objs[i] = p.Object()
			}
			kinds[key] = objs
		}
		out[stream] = kinds
	}
	return out
}

// MapOrigin anchors a pose in geographic coordinates.
type MapOrigin struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// Pose is the vehicle (or other frame) pose on one stream.
type Pose struct {
	Timestamp   float64
	MapOrigin   *MapOrigin
	Position    Point
	Orientation Point
}

// Object renders the pose as plain nested maps and slices.
func (p Pose) Object() map[string]any {
	out := map[string]any{"timestamp": p.Timestamp}
	if p.MapOrigin != nil {
		out["map_origin"] = map[string]any{
			"longitude": p.MapOrigin.Longitude,
			"latitude":  p.MapOrigin.Latitude,
			"altitude":  p.MapOrigin.Altitude,
		}
	}
	if p.Position != nil {
		out["position"] = plainPoint(p.Position)
	}
	if p.Orientation != nil {
		out["orientation"] = plainPoint(p.Orientation)
	}
	return out
}

// VariableValues holds exactly one typed value list.
type VariableValues struct {
	Doubles []float64
	Int32s  []int32
	Bools   []bool
	Strings []string
}

func (v VariableValues) object() map[string]any {
	switch {
	case v.Doubles != nil:
		return map[string]any{"doubles": v.Doubles}
	case v.Int32s != nil:
		return map[string]any{"int32s": v.Int32s}
	case v.Bools != nil:
		return map[string]any{"bools": v.Bools}
	case v.Strings != nil:
		return map[string]any{"strings": v.Strings}
	}
	return map[string]any{}
}

// Variable is one value list, optionally tied to an object id.
type Variable struct {
	Values VariableValues
	Base   *Base
}

// Object renders the variable as plain nested maps and slices.
func (v Variable) Object() map[string]any {
	return withBase(map[string]any{"values": v.Values.object()}, v.Base)
}

// VariableSet is everything written to one variable stream.
type VariableSet struct {
	Variables []Variable
}

// Object renders the set as plain nested maps and slices.
func (s VariableSet) Object() map[string]any {
	vs := make([]any, len(s.Variables))
	for i, v := range s.Variables {
		vs[i] = v.Object()
	}
	return map[string]any{"variables": vs}
}

// StreamSet is the per-timestamp payload of one update.
type StreamSet struct {
	Timestamp  float64
	Poses      map[string]Pose
	Primitives StreamCollection
	Variables  map[string]VariableSet
}

// Object renders the stream set. Primitives and variables are nil when absent.
func (s StreamSet) Object() map[string]any {
	poses := make(map[string]any, len(s.Poses))
	for id, p := range s.Poses {
		poses[id] = p.Object()
	}
	var prims, vars any
	if s.Primitives != nil {
		prims = s.Primitives.Object()
	}
	if s.Variables != nil {
		vm := make(map[string]any, len(s.Variables))
		for id, v := range s.Variables {
			vm[id] = v.Object()
		}
		vars = vm
	}
	return map[string]any{
		"timestamp":  s.Timestamp,
		"poses":      poses,
		"primitives": prims,
		"variables":  vars,
	}
}

// Document is one assembled outbound update.
type Document struct {
	UpdateType string
	Updates    []StreamSet
}

// Object renders the document into the wire shape
// {update_type, updates: [{timestamp, poses, primitives, variables}]}.
func (d *Document) Object() map[string]any {
	updates := make([]any, len(d.Updates))
	for i, u := range d.Updates {
		updates[i] = u.Object()
	}
	return map[string]any{
		"update_type": d.UpdateType,
		"updates":     updates,
	}
}
