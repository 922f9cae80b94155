package model

// RowPredicate decides whether a materialized row is kept. Predicates run
// after formatting, so they can inspect both the raw fraction and the
// display string. Filtered rows change the average statistic.
type RowPredicate func(Row) (bool, error)

// LabelFunc resolves a column label from an entity type and a field key.
// Implementations fall back to the key itself when no label is known.
type LabelFunc func(entityType, fieldKey string) string

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	EntityType string
	Title      string
	ColumnKeys []string
	Filter     RowPredicate
	Labeler    LabelFunc
	Metadata   map[string]string
}

func defaultOptions() Options {
	return Options{
		ColumnKeys: DefaultColumnKeys(),
		Labeler: func(_, fieldKey string) string {
			return DefaultLabeler(fieldKey)
		},
	}
}

// DefaultColumnKeys returns the fixed column order of the report table.
func DefaultColumnKeys() []string {
	return []string{"name", "completion"}
}
