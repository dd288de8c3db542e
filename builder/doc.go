// Package builder provides fluent builders that accumulate per-stream XVIZ
// data and assemble it into a goxviz.Document.
//
// Every chained call either succeeds or records a fatal issue with the shared
// goxviz.Validator. After the first fatal issue a builder ignores further calls
// and reports the error from Err, GetData and Builder.GetMessage.
//
//	b := builder.New()
//	b.Pose("").Timestamp(12.5)
//	b.Primitive("/object/shape").
//		Polygon([]goxviz.Point{{0, 0, 0}, {4, 0, 0}, {4, 3, 0}}).ID("car-1").
//		Circle(goxviz.Point{1, 2, 3}, 5)
//	doc, err := b.GetMessage()
package builder
