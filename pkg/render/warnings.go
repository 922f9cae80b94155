package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/model"
)

// FormatWarning renders one skip warning for display, e.g.
// "edge 3: completion 1.5 outside [0,1]".
func FormatWarning(warning model.Warning) string {
	reason := strings.TrimSpace(warning.Reason)
	if reason == "" {
		reason = "unspecified"
	}
	return fmt.Sprintf("edge %d: %s", warning.Edge, reason)
}

// WarningLines normalises the model warnings into display strings, trimming
// whitespace and dropping duplicates while preserving edge order. Renderers
// feed these straight into the summary panel.
func WarningLines(report model.ReportModel) []string {
	if len(report.Warnings) == 0 {
		return nil
	}

	out := make([]string, 0, len(report.Warnings))
	seen := make(map[string]struct{}, len(report.Warnings))
	for _, warning := range report.Warnings {
		line := FormatWarning(warning)
		if _, exists := seen[line]; exists {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
