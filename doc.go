// Package goxviz provides:
//
// - A fluent authoring layer for per-timestamp XVIZ scene data (pose, variables, primitives)
// - A stable error model via Issues (stream, category, code, message)
// - A normalized Document ready for wire encoding through an Encoder
//
// Design policy:
// - Keep only public model types in the root package; put builders under builder/.
// - Place wire encoders under codec/, configuration under config/, and the CLI under cmd/goxviz.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := builder.New()
//	b.Pose("").Timestamp(1000.5).Position(1, 2, 0)
//	b.Primitive("/object/shape").Polygon(vertices).ID("car-1")
//	doc, err := b.GetMessage()
//
//	wire, err := goxviz.Encode(doc, codec.JSON{})
package goxviz
