package dataset

import (
	"strconv"
	"strings"
)

// normalizeCompletion coerces the completion shapes found in flat exports into
// a fraction: a bare number, a numeric string, a percentage string ("45%"
// becomes 0.45), or the nested {"completion": ...} record the envelope format
// uses. Numbers above 1 pass through untouched; range checking is the report
// builder's job so out-of-range values surface as warnings, not silent fixes.
func normalizeCompletion(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		return parseCompletionString(v)
	case map[string]any:
		return normalizeCompletion(v["completion"])
	default:
		return 0, false
	}
}

func parseCompletionString(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	percent := strings.HasSuffix(trimmed, "%")
	if percent {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f /= 100
	}
	return f, true
}
