package goxviz_test

import (
	"reflect"
	"testing"

	goxviz "github.com/reoring/goxviz"
)

func TestPrimitiveKind_Plural(t *testing.T) {
	want := map[goxviz.PrimitiveKind]string{
		goxviz.KindImage:    "images",
		goxviz.KindPolygon:  "polygons",
		goxviz.KindPolyline: "polylines",
		goxviz.KindPoint:    "points",
		goxviz.KindCircle:   "circles",
		goxviz.KindStadium:  "stadiums",
		goxviz.KindText:     "texts",
	}
	for _, k := range goxviz.PrimitiveKinds {
		if k.Plural() != want[k] {
			t.Fatalf("%s: got %s", k, k.Plural())
		}
	}
	if goxviz.PrimitiveKind("cube").Valid() {
		t.Fatalf("unknown kind must be invalid")
	}
}

func TestStreamCollection_AppendAndObject(t *testing.T) {
	c := goxviz.StreamCollection{}
	c.Append("/s", goxviz.Polygon{Vertices: []goxviz.Point{{0, 0, 0}}})
	c.Append("/s", goxviz.Polygon{Vertices: []goxviz.Point{{1, 1, 1}}, Base: &goxviz.Base{Style: goxviz.Style{"fill_color": "#fff"}}})
	c.Append("/t", goxviz.Text{Position: goxviz.Point{1, 2, 3}, Text: "hi"})

	want := map[string]any{
		"/s": map[string]any{"polygons": []any{
			map[string]any{"vertices": [][]float64{{0, 0, 0}}},
			map[string]any{"vertices": [][]float64{{1, 1, 1}}, "base": map[string]any{"style": map[string]any{"fill_color": "#fff"}}},
		}},
		"/t": map[string]any{"texts": []any{
			map[string]any{"position": []float64{1, 2, 3}, "text": "hi"},
		}},
	}
	if got := c.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestBase_EmptyOmitted(t *testing.T) {
	p := goxviz.Circle{Center: goxviz.Point{0, 0, 0}, Radius: 1, Base: &goxviz.Base{}}
	if _, ok := p.Object()["base"]; ok {
		t.Fatalf("empty base must be omitted")
	}
}

func TestDocument_Object(t *testing.T) {
	d := &goxviz.Document{
		UpdateType: goxviz.UpdateTypeSnapshot,
		Updates: []goxviz.StreamSet{{
			Timestamp: 5,
			Poses:     map[string]goxviz.Pose{goxviz.PrimaryPoseStream: {Timestamp: 5}},
		}},
	}
	want := map[string]any{
		"update_type": "SNAPSHOT",
		"updates": []any{map[string]any{
			"timestamp":  5.0,
			"poses":      map[string]any{"/vehicle_pose": map[string]any{"timestamp": 5.0}},
			"primitives": nil,
			"variables":  nil,
		}},
	}
	if got := d.Object(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}
