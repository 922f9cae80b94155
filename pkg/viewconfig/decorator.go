package viewconfig

import (
	"fmt"
	"strings"

	pkgmodel "github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// Metadata keys written by the decorator for renderers to pick up.
const (
	ViewNameMetadataKey = "view"
	SubtitleMetadataKey = "subtitle"
	IconMetadataKey     = "icon"
)

// Decorator applies a named view configuration to a report model.
type Decorator struct {
	store *Store
	view  string
}

// NewDecorator builds a Decorator applying the named view from the store.
// When store is nil or the view is unnamed, the decorator becomes a no-op.
func NewDecorator(store *Store, view string) *Decorator {
	return &Decorator{store: store, view: strings.TrimSpace(view)}
}

// Decorate augments the supplied report model with the view configuration.
// A named view that is missing from the store is an error; silent fallbacks
// hide configuration typos.
func (d *Decorator) Decorate(report *pkgmodel.ReportModel) error {
	if d == nil || d.store == nil || d.view == "" || report == nil {
		return nil
	}

	view, ok := d.store.View(d.view)
	if !ok {
		return fmt.Errorf("viewconfig: view %q not found", d.view)
	}

	applyView(report, view)
	return nil
}

// Apply applies a view directly, for callers holding a View value already.
func Apply(report *pkgmodel.ReportModel, view View) {
	if report == nil {
		return
	}
	applyView(report, view)
}

func applyView(report *pkgmodel.ReportModel, view View) {
	setMetadata(report, ViewNameMetadataKey, view.Name)

	if view.EntityType != "" {
		report.EntityType = view.EntityType
	}
	if view.Title != "" {
		report.Title = view.Title
	}
	if view.TitleKey != "" {
		setMetadata(report, render.TitleKeyHint, view.TitleKey)
	}
	if view.Subtitle != "" {
		setMetadata(report, SubtitleMetadataKey, view.Subtitle)
	}
	if view.Icon != "" {
		setMetadata(report, IconMetadataKey, view.Icon)
	}
	for key, value := range view.Metadata {
		setMetadata(report, key, value)
	}

	if len(view.Columns) > 0 {
		applyColumns(report, view.Columns)
	}
}

// applyColumns narrows and reorders the report columns to the configured
// set. Keys absent from the built model still appear so renderers can show
// auxiliary attrs; their labels fall back to the configured label or key.
func applyColumns(report *pkgmodel.ReportModel, configs []ColumnConfig) {
	existing := make(map[string]pkgmodel.Column, len(report.Columns))
	for _, column := range report.Columns {
		existing[column.Key] = column
	}

	columns := make([]pkgmodel.Column, 0, len(configs))
	for _, cfg := range configs {
		column, ok := existing[cfg.Key]
		if !ok {
			column = pkgmodel.Column{Key: cfg.Key, Label: cfg.Key}
		}
		if cfg.Label != "" {
			column.Label = cfg.Label
		}
		if cfg.LabelKey != "" {
			setMetadata(report, render.ColumnLabelKeyHint(cfg.Key), cfg.LabelKey)
		}
		columns = append(columns, column)
	}
	report.Columns = columns
}

func setMetadata(report *pkgmodel.ReportModel, key, value string) {
	if key == "" || value == "" {
		return
	}
	if report.Metadata == nil {
		report.Metadata = make(map[string]string)
	}
	report.Metadata[key] = value
}
