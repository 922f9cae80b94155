package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/query"
)

// Builder materializes report models from parsed query results. A Builder is
// immutable after construction and safe for concurrent use as long as the
// configured predicate and labeler are.
type Builder struct {
	options Options
}

// New constructs a Builder from pre-resolved options. Zero-value fields are
// replaced by the defaults so callers can set only what they need.
func New(options Options) *Builder {
	defaults := defaultOptions()
	if len(options.ColumnKeys) == 0 {
		options.ColumnKeys = defaults.ColumnKeys
	}
	if options.Labeler == nil {
		options.Labeler = defaults.Labeler
	}
	return &Builder{options: options}
}

// Build converts a result into a ReportModel. Rows preserve edge order;
// malformed edges are skipped with a warning instead of aborting the batch,
// and the average is computed over the post-filter row list only. A predicate
// error aborts the build since it signals a configuration problem, not a
// data-quality one.
func (b *Builder) Build(result query.Result) (ReportModel, error) {
	report := ReportModel{
		EntityType: b.options.EntityType,
		Title:      b.options.Title,
		Columns:    b.columns(),
		Rows:       make([]Row, 0, len(result.Edges)),
		TotalEdges: len(result.Edges),
		Metadata:   cloneStringMap(b.options.Metadata),
	}

	var sum float64
	for i, edge := range result.Edges {
		row, reason := rowFromNode(edge.Node)
		if reason != "" {
			report.Skipped++
			report.Warnings = append(report.Warnings, Warning{Edge: i, Reason: reason})
			continue
		}

		if b.options.Filter != nil {
			keep, err := b.options.Filter(row)
			if err != nil {
				return ReportModel{}, fmt.Errorf("model builder: filter row %d (%s): %w", i, row.Name, err)
			}
			if !keep {
				continue
			}
		}

		report.Rows = append(report.Rows, row)
		sum += row.CompletionValue
	}

	if len(report.Rows) == 0 {
		report.Average = NotAvailable
		return report, nil
	}

	report.AverageValue = sum / float64(len(report.Rows))
	report.Average = FormatPercent(report.AverageValue)
	report.AverageValid = true
	return report, nil
}

func (b *Builder) columns() []Column {
	keys := b.options.ColumnKeys
	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		label := b.options.Labeler(b.options.EntityType, key)
		if strings.TrimSpace(label) == "" {
			label = key
		}
		columns = append(columns, Column{Key: key, Label: label})
	}
	return columns
}

// rowFromNode converts one node into a row, or reports why it cannot. The
// returned reason is empty for well-formed nodes.
func rowFromNode(node query.Node) (Row, string) {
	if !node.HasName() {
		return Row{}, "node has no name"
	}
	if node.Completion == nil {
		return Row{}, "node has no completion record"
	}
	value := node.Completion.Completion
	if value < 0 || value > 1 {
		return Row{}, fmt.Sprintf("completion %v outside [0,1]", value)
	}

	return Row{
		Name:            node.Name,
		Completion:      FormatPercent(value),
		CompletionValue: value,
		Attrs:           cloneAttrs(node.Attrs),
	}, ""
}

func cloneAttrs(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// MergeMetadata overlays src onto dst, allocating when needed. Keys are
// applied in sorted order so repeated merges stay deterministic even when
// callers log or snapshot intermediate states.
func MergeMetadata(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		dst[key] = src[key]
	}
	return dst
}
