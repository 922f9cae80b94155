package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// Transformer mutates a ReportModel after building but before view decorators
// run. Implementations can retitle reports, inject metadata, or perform
// arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, report *model.ReportModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, report *model.ReportModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, report *model.ReportModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, report)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON
// document. The shape supports report-level fields and per-column patches:
//
//	{
//	  "title": "Landscape Completion",
//	  "entityType": "Application",
//	  "metadata": {"subtitle": "Quarterly review"},
//	  "columns": {
//	    "completion": {"label": "Done", "labelKey": "report.column.done"}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Title      string                     `json:"title"`
	EntityType string                     `json:"entityType"`
	Metadata   map[string]string          `json:"metadata"`
	Columns    map[string]jsonColumnPatch `json:"columns"`
}

type jsonColumnPatch struct {
	Label    string `json:"label"`
	LabelKey string `json:"labelKey"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied report.
func (t *JSONPresetTransformer) Transform(ctx context.Context, report *model.ReportModel) error {
	if report == nil {
		return errors.New("json preset transformer: report model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		report.Title = t.document.Title
	}
	if t.document.EntityType != "" {
		report.EntityType = t.document.EntityType
	}
	if len(t.document.Metadata) > 0 {
		report.Metadata = model.MergeMetadata(report.Metadata, t.document.Metadata)
	}

	for key, patch := range t.document.Columns {
		column := findColumn(report.Columns, key)
		if column == nil {
			return fmt.Errorf("json preset transformer: column %q not found", key)
		}
		if patch.Label != "" {
			column.Label = patch.Label
		}
		if strings.TrimSpace(patch.LabelKey) != "" {
			report.Metadata = model.MergeMetadata(report.Metadata, map[string]string{
				render.ColumnLabelKeyHint(key): strings.TrimSpace(patch.LabelKey),
			})
		}
	}
	return nil
}

func findColumn(columns []model.Column, key string) *model.Column {
	for idx := range columns {
		if columns[idx].Key == key {
			return &columns[idx]
		}
	}
	return nil
}
