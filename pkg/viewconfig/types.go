package viewconfig

// Store keeps the parsed views from view configuration documents. It is safe
// for concurrent readers when treated as immutable after construction.
type Store struct {
	views map[string]View
}

// View describes a named report presentation: which columns to show, how to
// label them, which rows to keep, and which renderer concerns (locale, theme,
// panels) to apply.
type View struct {
	Name   string
	Source string

	Title    string `json:"title" yaml:"title"`
	TitleKey string `json:"titleKey" yaml:"titleKey"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`

	// EntityType names the reported entity, e.g. "Application". It feeds the
	// label lookup and the default report title.
	EntityType string `json:"entityType" yaml:"entityType"`

	// Columns narrows and reorders the report columns. Empty keeps the
	// builder's column set.
	Columns []ColumnConfig `json:"columns" yaml:"columns"`

	// Filter is a row predicate expression compiled by pkg/filter, e.g.
	// "completionValue < 0.1".
	Filter string `json:"filter" yaml:"filter"`

	Locale       string `json:"locale" yaml:"locale"`
	Theme        string `json:"theme" yaml:"theme"`
	ThemeVariant string `json:"themeVariant" yaml:"themeVariant"`

	// Panels narrows the debug panels, in order. Empty renders the defaults.
	Panels []string `json:"panels" yaml:"panels"`

	// Icon holds inline SVG markup shown next to the report title. It is
	// sanitized at load time; scripts and event handlers never survive.
	Icon string `json:"icon" yaml:"icon"`

	Metadata map[string]string `json:"metadata" yaml:"metadata"`
}

// ColumnConfig customises one report column.
type ColumnConfig struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	LabelKey string `json:"labelKey" yaml:"labelKey"`
}

// Keys returns the configured column keys in order.
func (v View) Keys() []string {
	if len(v.Columns) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.Columns))
	for _, column := range v.Columns {
		keys = append(keys, column.Key)
	}
	return keys
}
