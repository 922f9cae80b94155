package model

import internalmodel "github.com/goliatone/go-reportgen/internal/model"

// NotAvailable re-exports the sentinel used for an undefined average.
const NotAvailable = internalmodel.NotAvailable

type Row = internalmodel.Row
type Column = internalmodel.Column
type Warning = internalmodel.Warning
type ReportModel = internalmodel.ReportModel

// RowPredicate decides whether a materialized row is kept.
type RowPredicate = internalmodel.RowPredicate

// LabelFunc resolves a column label from an entity type and a field key.
type LabelFunc = internalmodel.LabelFunc

// DefaultLabeler converts a field key into a human-friendly column label.
func DefaultLabeler(key string) string {
	return internalmodel.DefaultLabeler(key)
}

// FormatPercent renders a fraction in [0,1] as a one-decimal percentage.
func FormatPercent(fraction float64) string {
	return internalmodel.FormatPercent(fraction)
}

// ParsePercent converts a percentage string back into a fraction.
func ParsePercent(value string) (float64, error) {
	return internalmodel.ParsePercent(value)
}

// Zero returns the model representing "no query has completed yet".
func Zero() ReportModel {
	return internalmodel.Zero()
}

// MergeMetadata overlays src onto dst with deterministic key order.
func MergeMetadata(dst, src map[string]string) map[string]string {
	return internalmodel.MergeMetadata(dst, src)
}
