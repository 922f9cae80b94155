// Package jsonreport serializes report models as indented JSON for
// machine-readable handoff and golden-file testing.
package jsonreport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// Renderer emits the localized report model as deterministic JSON.
type Renderer struct {
	indent string
}

// Option configures the JSON renderer.
type Option func(*Renderer)

// WithIndent overrides the indentation string (default two spaces). Empty
// produces compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the JSON renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render applies localization then marshals the model. Map keys serialize in
// sorted order, so output is stable for a given model.
func (r *Renderer) Render(_ context.Context, report model.ReportModel, opts render.RenderOptions) ([]byte, error) {
	report.Columns = append([]model.Column(nil), report.Columns...)
	render.LocalizeReportModel(&report, opts)
	if opts.Title != "" {
		report.Title = opts.Title
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(report)
	} else {
		out, err = json.MarshalIndent(report, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal report: %w", err)
	}
	return append(out, '\n'), nil
}
