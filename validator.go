package goxviz

import "github.com/reoring/goxviz/log"

// Validator records errors and warnings raised by builders. It is stateless
// with respect to the data being built: it only keeps the log of issues so
// that violations across several streams and builders can be reported
// together.
type Validator struct {
	logger  *log.Logger
	policy  WarningPolicy
	streams map[string]StreamMetadata
	issues  Issues
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithLogger sets the logger issues are reported to.
func WithLogger(l *log.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithWarningPolicy sets what builders do with records that produced a warning.
func WithWarningPolicy(p WarningPolicy) ValidatorOption {
	return func(v *Validator) { v.policy = p }
}

// WithStreamMetadata declares the expected category and primitive type per stream.
func WithStreamMetadata(m map[string]StreamMetadata) ValidatorOption {
	return func(v *Validator) { v.streams = m }
}

// NewValidator returns a Validator with a no-op logger and the WarnFlush policy.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{logger: log.Nop(), policy: WarnFlush}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Error records a fatal issue and returns it as an error for the caller to
// propagate.
func (v *Validator) Error(s Scope, code string, params map[string]string) error {
	it := IssueAt(s, Error, code, params)
	v.issues = AppendIssues(v.issues, it)
	v.logger.Error(it.Message, logFields(it))
	return Issues{it}
}

// Warn records a non-fatal issue.
func (v *Validator) Warn(s Scope, code string, params map[string]string) {
	it := IssueAt(s, Warn, code, params)
	v.issues = AppendIssues(v.issues, it)
	v.logger.Warn(it.Message, logFields(it))
}

// CheckStream warns when stream metadata declares s.Stream with a different
// category, or with a primitive type other than kind. Undeclared streams pass.
func (v *Validator) CheckStream(s Scope, kind PrimitiveKind) bool {
	md, ok := v.streams[s.Stream]
	if !ok {
		return true
	}
	if md.Category != "" && md.Category != s.Category {
		v.Warn(s, CodeStreamMetadata, map[string]string{"stream": s.Stream, "declared": string(md.Category), "got": string(s.Category)})
		return false
	}
	if s.Category == CategoryPrimitive && md.PrimitiveType != "" && kind != "" && md.PrimitiveType != kind {
		v.Warn(s, CodeStreamMetadata, map[string]string{"stream": s.Stream, "declared": string(md.PrimitiveType), "got": string(kind)})
		return false
	}
	return true
}

// Policy returns the configured warning policy.
func (v *Validator) Policy() WarningPolicy { return v.policy }

// Issues returns every recorded issue in the order it was raised.
func (v *Validator) Issues() Issues { return v.issues }

// Warnings returns the recorded warnings.
func (v *Validator) Warnings() Issues { return v.issues.Filter(Warn) }

// Err returns all recorded errors as Issues, or nil when there are none.
func (v *Validator) Err() error {
	errs := v.issues.Filter(Error)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Reset clears the issue log.
func (v *Validator) Reset() { v.issues = nil }

func logFields(it Issue) map[string]any {
	return map[string]any{
		"stream":   it.Stream,
		"category": string(it.Category),
		"code":     it.Code,
	}
}
