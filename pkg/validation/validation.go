// Package validation checks view configurations and result documents before
// they reach the report pipeline, producing issue lists instead of aborting
// on the first problem.
package validation

import "fmt"

// Issue represents one validation finding with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes. Valid reports whether the subject is
// usable; Issues may still carry non-fatal findings (e.g. skipped edges) for
// a valid subject.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

func (r *Result) addIssue(path, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *Result) fail(path, format string, args ...any) {
	r.Valid = false
	r.addIssue(path, format, args...)
}
