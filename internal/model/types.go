package model

// NotAvailable is the placeholder emitted when the average statistic is
// undefined, either because no result has been built yet or because the
// post-filter row list is empty.
const NotAvailable = "n/a"

// Row is one display row derived from a single result node. Completion holds
// the formatted percentage string; CompletionValue keeps the raw fraction so
// aggregation and filtering never operate on formatted text.
type Row struct {
	Name            string         `json:"name"`
	Completion      string         `json:"completion"`
	CompletionValue float64        `json:"completionValue"`
	Attrs           map[string]any `json:"attrs,omitempty"`
}

// Column describes one table column. Label is resolved through the configured
// label lookup with the key itself as fallback.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Warning records one edge that was skipped during the build, by position in
// the source edge list.
type Warning struct {
	Edge   int    `json:"edge"`
	Reason string `json:"reason"`
}

// ReportModel is the top-level representation renderers consume. Rows,
// columns, and the average are recomputed in full on every build; there is no
// incremental update path.
type ReportModel struct {
	EntityType string   `json:"entityType,omitempty"`
	Title      string   `json:"title,omitempty"`
	Columns    []Column `json:"columns"`
	Rows       []Row    `json:"rows"`

	// Average is the post-filter mean completion as a percentage string, or
	// NotAvailable when no rows survived. AverageValue carries the raw
	// fraction and is only meaningful while AverageValid is true.
	Average      string  `json:"average"`
	AverageValue float64 `json:"averageValue,omitempty"`
	AverageValid bool    `json:"averageValid"`

	TotalEdges int       `json:"totalEdges"`
	Skipped    int       `json:"skipped"`
	Warnings   []Warning `json:"warnings,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// RowCount returns the number of materialized rows.
func (m ReportModel) RowCount() int {
	return len(m.Rows)
}

// Zero returns the model representing "no query has completed yet": an empty
// row list and the NotAvailable sentinel.
func Zero() ReportModel {
	return ReportModel{
		Rows:    []Row{},
		Average: NotAvailable,
	}
}
