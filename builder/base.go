package builder

import (
	"fmt"

	goxviz "github.com/reoring/goxviz"
)

// field is a bit in a builder's set-once mask.
type field uint16

// streamBuilder is the contract every specialized builder implements so that
// stream switching and final flushes behave the same across builders.
type streamBuilder interface {
	hasPending() bool
	flush()
	resetPending()
}

// BaseBuilder holds the per-stream bookkeeping shared by all builders.
type BaseBuilder struct {
	category  goxviz.Category
	validator *goxviz.Validator
	disabled  map[string]struct{}
	streamID  string
	err       error
}

func newBaseBuilder(cat goxviz.Category, v *goxviz.Validator, disabled []string) BaseBuilder {
	if v == nil {
		v = goxviz.NewValidator()
	}
	ds := make(map[string]struct{}, len(disabled))
	for _, id := range disabled {
		ds[id] = struct{}{}
	}
	return BaseBuilder{category: cat, validator: v, disabled: ds}
}

// StreamID returns the stream chained calls currently apply to.
func (b *BaseBuilder) StreamID() string { return b.streamID }

// Category returns the builder category.
func (b *BaseBuilder) Category() goxviz.Category { return b.category }

// Err returns the first fatal issue raised by this builder, if any.
func (b *BaseBuilder) Err() error { return b.err }

func (b *BaseBuilder) scope() goxviz.Scope {
	return goxviz.Scope{Stream: b.streamID, Category: b.category}
}

// stream flushes any pending record of sb, then switches to id.
func (b *BaseBuilder) stream(sb streamBuilder, id string) {
	if b.err != nil {
		return
	}
	if id == "" {
		b.fail(goxviz.CodeMissingStream, nil)
		return
	}
	if sb.hasPending() {
		sb.flush()
		if b.err != nil {
			return
		}
	}
	b.streamID = id
}

// fail records a fatal issue; the builder is unusable afterwards.
func (b *BaseBuilder) fail(code string, params map[string]string) {
	err := b.validator.Error(b.scope(), code, params)
	if b.err == nil {
		b.err = err
	}
}

func (b *BaseBuilder) warn(code string, params map[string]string) {
	b.validator.Warn(b.scope(), code, params)
}

// setOnce fails when f is already present in mask.
func (b *BaseBuilder) setOnce(mask, f field, name string) bool {
	if mask&f != 0 {
		b.fail(goxviz.CodeSetOnce, map[string]string{"field": name})
		return false
	}
	return true
}

// checkPoint fails unless p has exactly three coordinates.
func (b *BaseBuilder) checkPoint(p goxviz.Point, name string) bool {
	if !p.Valid() {
		b.fail(goxviz.CodeInvalidGeometry, map[string]string{"field": name, "got": fmt.Sprint([]float64(p))})
		return false
	}
	return true
}

// validateScope runs the checks common to every flush. ok is false when a
// fatal issue was raised; warned is true when a warning was recorded.
func (b *BaseBuilder) validateScope(kind goxviz.PrimitiveKind) (ok, warned bool) {
	if b.streamID == "" {
		b.fail(goxviz.CodeMissingStream, nil)
		return false, false
	}
	return true, !b.validator.CheckStream(b.scope(), kind)
}

// keep reports whether a validated record should be committed.
func (b *BaseBuilder) keep(warned bool) bool {
	if _, off := b.disabled[b.streamID]; off {
		return false
	}
	return !(warned && b.validator.Policy() == goxviz.WarnReject)
}

func (b *BaseBuilder) resetBase() {
	b.streamID = ""
	b.err = nil
}
