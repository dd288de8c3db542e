package builder

import (
	"fmt"
	"math"

	goxviz "github.com/reoring/goxviz"
)

const (
	variableValues field = 1 << iota
	variableID
)

type pendingVariable struct {
	set    field
	values goxviz.VariableValues
	id     string
}

// VariableBuilder accumulates typed value lists per stream. Each Values call
// starts a new variable.
type VariableBuilder struct {
	BaseBuilder
	variables map[string]goxviz.VariableSet
	pending   pendingVariable
}

var _ streamBuilder = (*VariableBuilder)(nil)

// NewVariableBuilder returns an empty builder reporting to v.
func NewVariableBuilder(v *goxviz.Validator, disabledStreams ...string) *VariableBuilder {
	return &VariableBuilder{
		BaseBuilder: newBaseBuilder(goxviz.CategoryVariable, v, disabledStreams),
		variables:   map[string]goxviz.VariableSet{},
	}
}

// Stream commits any pending variable and switches to stream id.
func (b *VariableBuilder) Stream(id string) *VariableBuilder {
	b.stream(b, id)
	return b
}

// Values starts a variable. values must be a homogeneous slice of numbers,
// booleans or strings.
func (b *VariableBuilder) Values(values any) *VariableBuilder {
	if b.err != nil {
		return b
	}
	vv, ok := toVariableValues(values)
	if !ok {
		b.fail(goxviz.CodeInvalidPayload, map[string]string{"field": "values", "got": fmt.Sprintf("%T", values)})
		return b
	}
	if b.hasPending() {
		b.flush()
		if b.err != nil {
			return b
		}
	}
	b.pending.values = vv
	b.pending.set |= variableValues
	return b
}

// ID ties the pending variable to an object id.
func (b *VariableBuilder) ID(identifier string) *VariableBuilder {
	if b.err != nil {
		return b
	}
	if !b.hasPending() {
		b.fail(goxviz.CodePrerequisite, map[string]string{"op": "id", "requires": "values()"})
		return b
	}
	if !b.setOnce(b.pending.set, variableID, "id") {
		return b
	}
	b.pending.id = identifier
	b.pending.set |= variableID
	return b
}

// GetData commits any pending variable and returns variables by stream, or
// nil when nothing was produced.
func (b *VariableBuilder) GetData() (map[string]goxviz.VariableSet, error) {
	if b.err == nil && b.hasPending() {
		b.flush()
	}
	if b.err != nil {
		return nil, b.err
	}
	if len(b.variables) == 0 {
		return nil, nil
	}
	return b.variables, nil
}

// Reset drops all accumulated variables, the stream selection and any recorded error.
func (b *VariableBuilder) Reset() {
	b.variables = map[string]goxviz.VariableSet{}
	b.resetPending()
	b.resetBase()
}

func (b *VariableBuilder) hasPending() bool { return b.pending.set&variableValues != 0 }

func (b *VariableBuilder) flush() {
	ok, warned := b.validateScope("")
	if !ok {
		return
	}
	if b.keep(warned) {
		v := goxviz.Variable{Values: b.pending.values}
		if b.pending.id != "" {
			v.Base = &goxviz.Base{ObjectID: b.pending.id}
		}
		set := b.variables[b.streamID]
		set.Variables = append(set.Variables, v)
		b.variables[b.streamID] = set
	}
	b.resetPending()
}

func (b *VariableBuilder) resetPending() { b.pending = pendingVariable{} }

func toVariableValues(values any) (goxviz.VariableValues, bool) {
	switch vs := values.(type) {
	case []float64:
		return goxviz.VariableValues{Doubles: append([]float64{}, vs...)}, true
	case []float32:
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = float64(v)
		}
		return goxviz.VariableValues{Doubles: out}, true
	case []int32:
		return goxviz.VariableValues{Int32s: append([]int32{}, vs...)}, true
	case []int:
		out := make([]int32, len(vs))
		for i, v := range vs {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return goxviz.VariableValues{}, false
			}
			out[i] = int32(v)
		}
		return goxviz.VariableValues{Int32s: out}, true
	case []bool:
		return goxviz.VariableValues{Bools: append([]bool{}, vs...)}, true
	case []string:
		return goxviz.VariableValues{Strings: append([]string{}, vs...)}, true
	case []any:
		return anyValues(vs)
	}
	return goxviz.VariableValues{}, false
}

// anyValues handles decoded documents (YAML, JSON) where numbers may arrive
// as a mix of int and float64. Mixed numbers widen to doubles.
func anyValues(vs []any) (goxviz.VariableValues, bool) {
	if len(vs) == 0 {
		return goxviz.VariableValues{}, false
	}
	switch vs[0].(type) {
	case bool:
		out := make([]bool, len(vs))
		for i, v := range vs {
			b, ok := v.(bool)
			if !ok {
				return goxviz.VariableValues{}, false
			}
			out[i] = b
		}
		return goxviz.VariableValues{Bools: out}, true
	case string:
		out := make([]string, len(vs))
		for i, v := range vs {
			s, ok := v.(string)
			if !ok {
				return goxviz.VariableValues{}, false
			}
			out[i] = s
		}
		return goxviz.VariableValues{Strings: out}, true
	}
	ints := make([]int, 0, len(vs))
	floats := make([]float64, len(vs))
	allInt := true
	for i, v := range vs {
		switch n := v.(type) {
		case int:
			ints = append(ints, n)
			floats[i] = float64(n)
		case float64:
			allInt = false
			floats[i] = n
		default:
			return goxviz.VariableValues{}, false
		}
	}
	if allInt {
		return toVariableValues(ints)
	}
	return goxviz.VariableValues{Doubles: floats}, true
}
