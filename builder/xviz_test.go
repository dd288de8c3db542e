package builder_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	goxviz "github.com/reoring/goxviz"
	"github.com/reoring/goxviz/builder"
	"github.com/reoring/goxviz/config"
	"github.com/reoring/goxviz/log"
)

func TestGetMessage_Assembles(t *testing.T) {
	b := builder.New()
	b.Pose("").Timestamp(100.25).Position(1, 2, 3)
	b.Variable("/vehicle/speed").Values([]float64{12.5})
	b.Primitive("/object/shape").Circle(goxviz.Point{1, 2, 3}, 5.0)

	doc, err := b.GetMessage()
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	obj := doc.Object()
	if obj["update_type"] != "SNAPSHOT" {
		t.Fatalf("update_type: %v", obj["update_type"])
	}
	updates := obj["updates"].([]any)
	if len(updates) != 1 {
		t.Fatalf("expected one update, got %d", len(updates))
	}
	u := updates[0].(map[string]any)
	if u["timestamp"] != 100.25 {
		t.Fatalf("timestamp: %v", u["timestamp"])
	}
	wantPrims := map[string]any{"/object/shape": map[string]any{"circles": []any{
		map[string]any{"center": []float64{1, 2, 3}, "radius": 5.0},
	}}}
	if !reflect.DeepEqual(u["primitives"], wantPrims) {
		t.Fatalf("primitives: %#v", u["primitives"])
	}
	if _, ok := u["poses"].(map[string]any)[goxviz.PrimaryPoseStream]; !ok {
		t.Fatalf("poses: %#v", u["poses"])
	}
	if u["variables"] == nil {
		t.Fatalf("variables missing")
	}
}

func TestGetMessage_NilPrimitivesWhenNoneBuilt(t *testing.T) {
	b := builder.New()
	b.Pose("").Timestamp(1)
	doc, err := b.GetMessage()
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	u := doc.Object()["updates"].([]any)[0].(map[string]any)
	if u["primitives"] != nil || u["variables"] != nil {
		t.Fatalf("expected nil primitives and variables, got %#v", u)
	}
}

func TestGetMessage_MissingPrimaryPose(t *testing.T) {
	b := builder.New()
	b.Pose("/some_other_pose").Timestamp(1)
	b.Primitive("/object/shape").Polygon([]goxviz.Point{{0, 0, 0}})

	doc, err := b.GetMessage()
	if doc != nil {
		t.Fatalf("expected no document, got %+v", doc)
	}
	expectCode(t, err, goxviz.CodeMissingPose)

	b2 := builder.New()
	if _, err := b2.GetMessage(); err == nil {
		t.Fatalf("expected error for a builder without poses")
	}
}

func TestGetMessage_MissingPoseRecordedOnce(t *testing.T) {
	b := builder.New()
	b.Pose("/some_other_pose").Timestamp(1)
	for i := 0; i < 2; i++ {
		_, err := b.GetMessage()
		iss := expectCode(t, err, goxviz.CodeMissingPose)
		if len(iss) != 1 {
			t.Fatalf("call %d: expected one missing_pose issue, got %v", i, iss)
		}
	}
}

func TestGetMessage_CollectsErrorsAcrossBuilders(t *testing.T) {
	b := builder.New()
	b.Pose("").Timestamp(1)
	b.Primitive("/a").Style(goxviz.Style{})
	b.Variable("/b").Values(map[string]int{})

	_, err := b.GetMessage()
	iss, ok := goxviz.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	if iss[0].Stream != "/a" || iss[1].Stream != "/b" {
		t.Fatalf("issues must be keyed by stream, got %+v", iss)
	}
	if iss[0].Category != goxviz.CategoryPrimitive || iss[1].Category != goxviz.CategoryVariable {
		t.Fatalf("issues must be keyed by category, got %+v", iss)
	}
}

func TestBuilder_ResetStartsNextMessage(t *testing.T) {
	b := builder.New()
	b.Pose("").Timestamp(1)
	b.Primitive("/a").Style(goxviz.Style{})
	if _, err := b.GetMessage(); err == nil {
		t.Fatalf("expected failure")
	}

	b.Reset()
	b.Pose("").Timestamp(2)
	b.Primitive("/a").Text("ok").Position(goxviz.Point{0, 0, 0})
	doc, err := b.GetMessage()
	if err != nil {
		t.Fatalf("after reset: %v", err)
	}
	if doc.Updates[0].Timestamp != 2 || len(doc.Updates[0].Primitives["/a"]["texts"]) != 1 {
		t.Fatalf("unexpected document %+v", doc.Updates[0])
	}
}

func TestBuilder_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.PrimaryPoseStream = "/ego"
	cfg.DisabledStreams = []string{"/debug"}
	cfg.WarningPolicy = config.PolicyReject

	b := builder.New(builder.WithConfig(cfg))
	b.Pose("").Timestamp(3)
	b.Primitive("/debug").Circle(goxviz.Point{0, 0, 0}, 1)
	b.Primitive("/labels").Text("no anchor")

	doc, err := b.GetMessage()
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if _, ok := doc.Updates[0].Poses["/ego"]; !ok {
		t.Fatalf("primary pose stream not applied: %v", doc.Updates[0].Poses)
	}
	if doc.Updates[0].Primitives != nil {
		t.Fatalf("expected disabled and rejected primitives to be dropped, got %v", doc.Updates[0].Primitives)
	}
	if !b.Validator().Warnings().HasCode(goxviz.CodeMissingVertices) {
		t.Fatalf("expected warning to be recorded, got %v", b.Validator().Issues())
	}
}

func TestBuilder_LogsIssues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := builder.New(builder.WithLogger(log.FromZap(zap.New(core))))
	b.Pose("").Timestamp(1)
	b.Primitive("/labels").Text("no anchor")
	if _, err := b.GetMessage(); err != nil {
		t.Fatalf("GetMessage: %v", err)
	}

	entries := logs.FilterField(zap.String("code", goxviz.CodeMissingVertices)).All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged warning, got %v", logs.All())
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %v", entries[0].Level)
	}
	if entries[0].ContextMap()["stream"] != "/labels" {
		t.Fatalf("expected stream field, got %v", entries[0].ContextMap())
	}
}

type recordingEncoder struct{ got map[string]any }

func (e *recordingEncoder) Encode(doc map[string]any) ([]byte, error) {
	e.got = doc
	return []byte("ok"), nil
}
func (e *recordingEncoder) Name() string { return "recording" }

func TestBuilder_EncodeHandsPlainDocument(t *testing.T) {
	b := builder.New()
	b.Pose("").Timestamp(1)
	enc := &recordingEncoder{}
	out, err := b.Encode(enc)
	if err != nil || string(out) != "ok" {
		t.Fatalf("Encode: %q %v", out, err)
	}
	if enc.got["update_type"] != goxviz.UpdateTypeSnapshot {
		t.Fatalf("encoder got %#v", enc.got)
	}
}
