package builder

import (
	"testing"

	goxviz "github.com/reoring/goxviz"
)

func TestPrimitiveState_Transitions(t *testing.T) {
	b := NewPrimitiveBuilder(goxviz.NewValidator()).Stream("/s")
	if b.state() != stateEmpty {
		t.Fatalf("new builder must start Empty")
	}

	// Modifiers that do not start a shape leave the builder Empty.
	b.Position(goxviz.Point{0, 0, 0})
	if b.state() != stateEmpty || b.pending.set&fieldVertices == 0 {
		t.Fatalf("position should fill the slot without choosing a kind")
	}

	b.Text("anchored")
	if b.state() != statePending || b.pending.kind != goxviz.KindText {
		t.Fatalf("text should move to Pending(text), got %v", b.pending.kind)
	}
	if len(b.primitives) != 0 {
		t.Fatalf("nothing may be committed before a flush")
	}

	b.Circle(goxviz.Point{1, 1, 1}, 2)
	if got := len(b.primitives["/s"]["texts"]); got != 1 {
		t.Fatalf("expected exactly one flushed text, got %d", got)
	}
	if b.pending.kind != goxviz.KindCircle || len(b.pending.vertices) != 1 {
		t.Fatalf("circle should be pending on a fresh slot, got %+v", b.pending)
	}

	if _, err := b.GetData(); err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if b.state() != stateEmpty {
		t.Fatalf("GetData must leave the builder Empty")
	}
}

func TestPrimitiveState_PositionThenPolygonConflicts(t *testing.T) {
	b := NewPrimitiveBuilder(goxviz.NewValidator()).Stream("/s")
	b.Position(goxviz.Point{0, 0, 0}).Polygon([]goxviz.Point{{1, 1, 1}})
	iss, ok := goxviz.AsIssues(b.Err())
	if !ok || iss[0].Code != goxviz.CodeSetOnce {
		t.Fatalf("expected set_once, got %v", b.Err())
	}
	if b.pending.kind != "" {
		t.Fatalf("failed shape call must not choose a kind, got %s", b.pending.kind)
	}
}

func TestPrimitiveState_FailedShapeKeepsPending(t *testing.T) {
	b := NewPrimitiveBuilder(goxviz.NewValidator()).Stream("/s")
	b.Polygon([]goxviz.Point{{0, 0, 0}}).Circle(goxviz.Point{1}, 1)
	if b.Err() == nil {
		t.Fatalf("expected invalid circle center to fail")
	}
	if b.pending.kind != goxviz.KindPolygon || len(b.pending.vertices) != 1 {
		t.Fatalf("polygon must still be pending, got %+v", b.pending)
	}
	if len(b.primitives) != 0 {
		t.Fatalf("failed call must not flush the pending polygon, got %v", b.primitives)
	}
}
