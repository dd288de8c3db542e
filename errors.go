package goxviz

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidGeometry  = "invalid_geometry"
	CodeInvalidPayload   = "invalid_payload"
	CodeSetOnce          = "set_once"
	CodePrerequisite     = "prerequisite"
	CodeMissingStream    = "missing_stream"
	CodeMissingPose      = "missing_pose"
	CodeMissingVertices  = "missing_vertices"
	CodeMissingImage     = "missing_image"
	CodeMissingTimestamp = "missing_timestamp"
	CodeStreamMetadata   = "stream_metadata"
)

// Scope identifies the builder context an issue was raised in.
type Scope struct {
	Stream   string
	Category Category
}

// Issue represents a single validation entry.
type Issue struct {
	Stream   string
	Category Category
	Code     string // One of the codes listed above.
	Severity Severity
	Message  string
	// Params carries structured parameters (e.g., {"field":"start","got":"[1 2]"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_geometry at /object/shape: start position must be [x, y, z]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Stream)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Filter returns the issues with the given severity.
func (iss Issues) Filter(sev Severity) Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == sev {
			out = append(out, it)
		}
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
