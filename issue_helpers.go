package goxviz

import "github.com/reoring/goxviz/i18n"

// IssueAt creates an Issue in the given scope with a translated message.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(s Scope, sev Severity, code string, params map[string]string) Issue {
	return Issue{
		Stream:   s.Stream,
		Category: s.Category,
		Code:     code,
		Severity: sev,
		Message:  i18n.T(code, params),
		Params:   params,
	}
}
