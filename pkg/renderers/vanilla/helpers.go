package vanilla

import (
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-reportgen/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}

// sanitizeReport strips markup from text fields that originate in query
// payloads. Templates escape output anyway; this keeps hostile names out of
// attribute positions too.
func sanitizeReport(report *model.ReportModel) {
	report.Title = sanitizeText(report.Title)
	for i := range report.Rows {
		report.Rows[i].Name = sanitizeText(report.Rows[i].Name)
	}
	for i := range report.Columns {
		report.Columns[i].Label = sanitizeText(report.Columns[i].Label)
	}
}

// cssVarBlock renders theme CSS variables as declarations for a :root rule,
// sorted for deterministic output.
func cssVarBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		out.WriteString("  ")
		out.WriteString(name)
		out.WriteString(": ")
		out.WriteString(vars[name])
		out.WriteString(";\n")
	}
	return out.String()
}
