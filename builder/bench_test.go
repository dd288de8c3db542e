package builder_test

import (
	"testing"

	goxviz "github.com/reoring/goxviz"
	"github.com/reoring/goxviz/builder"
	"github.com/reoring/goxviz/codec"
)

var benchPolygon = []goxviz.Point{{0, 0, 0}, {4, 0, 0}, {4, 2, 0}, {0, 2, 0}}

func BenchmarkBuilder_Message100Primitives(b *testing.B) {
	bl := builder.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bl.Reset()
		bl.Pose("").Timestamp(float64(i))
		pb := bl.Primitive("/object/shape")
		for k := 0; k < 100; k++ {
			pb.Polygon(benchPolygon).ID("obj")
		}
		if _, err := bl.GetMessage(); err != nil {
			b.Fatalf("GetMessage: %v", err)
		}
	}
}

func BenchmarkBuilder_EncodeJSON(b *testing.B) {
	bl := builder.New()
	bl.Pose("").Timestamp(1)
	pb := bl.Primitive("/object/shape")
	for k := 0; k < 100; k++ {
		pb.Circle(goxviz.Point{float64(k), 0, 0}, 1)
	}
	doc, err := bl.GetMessage()
	if err != nil {
		b.Fatalf("GetMessage: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goxviz.Encode(doc, codec.JSON{}); err != nil {
			b.Fatal(err)
		}
	}
}
