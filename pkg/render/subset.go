package render

import "github.com/goliatone/go-reportgen/pkg/model"

// Subset returns a copy of the report with only the named columns, preserving
// the requested key order and the original row order. Unknown keys are
// dropped silently; with no keys the report is returned unchanged. Rows keep
// their full payload since renderers consult the column list to decide which
// cells to draw.
func Subset(report model.ReportModel, keys ...string) model.ReportModel {
	if len(keys) == 0 {
		return report
	}

	byKey := make(map[string]model.Column, len(report.Columns))
	for _, column := range report.Columns {
		byKey[column.Key] = column
	}

	columns := make([]model.Column, 0, len(keys))
	kept := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		column, ok := byKey[key]
		if !ok {
			continue
		}
		if _, dup := kept[key]; dup {
			continue
		}
		kept[key] = struct{}{}
		columns = append(columns, column)
	}

	out := report
	out.Columns = columns
	out.Metadata = pruneColumnHints(report.Metadata, kept)
	return out
}

// pruneColumnHints drops labelKey hints for removed columns so localization
// does not resurrect them.
func pruneColumnHints(metadata map[string]string, kept map[string]struct{}) map[string]string {
	if len(metadata) == 0 {
		return metadata
	}
	out := make(map[string]string, len(metadata))
	for key, value := range metadata {
		if columnKey, ok := cutPrefix(key, columnLabelKeyPrefix); ok {
			if _, keep := kept[columnKey]; !keep {
				continue
			}
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return s, false
	}
	return s[len(prefix):], true
}
