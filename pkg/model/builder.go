package model

import (
	internalmodel "github.com/goliatone/go-reportgen/internal/model"
	"github.com/goliatone/go-reportgen/pkg/query"
)

// Builder converts parsed query results into report models.
type Builder interface {
	Build(result query.Result) (ReportModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	entityType string
	title      string
	columnKeys []string
	filter     RowPredicate
	labeler    LabelFunc
	metadata   map[string]string
}

// WithEntityType records the entity type the result was queried for. The
// value feeds the label lookup and ends up on the model for renderers.
func WithEntityType(entityType string) BuilderOption {
	return func(opts *builderOptions) {
		opts.entityType = entityType
	}
}

// WithTitle sets the report title.
func WithTitle(title string) BuilderOption {
	return func(opts *builderOptions) {
		opts.title = title
	}
}

// WithColumnKeys overrides the fixed column key order (defaults to
// name, completion).
func WithColumnKeys(keys ...string) BuilderOption {
	return func(opts *builderOptions) {
		if len(keys) == 0 {
			return
		}
		opts.columnKeys = append([]string(nil), keys...)
	}
}

// WithFilter installs the row predicate. With no predicate every row passes.
func WithFilter(filter RowPredicate) BuilderOption {
	return func(opts *builderOptions) {
		opts.filter = filter
	}
}

// WithLabeler overrides the default column label lookup.
func WithLabeler(labeler LabelFunc) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithMetadata seeds model metadata entries, typically view hints consumed by
// decorators and renderers.
func WithMetadata(metadata map[string]string) BuilderOption {
	return func(opts *builderOptions) {
		opts.metadata = MergeMetadata(opts.metadata, metadata)
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return internalmodel.New(internalmodel.Options{
		EntityType: cfg.entityType,
		Title:      cfg.title,
		ColumnKeys: cfg.columnKeys,
		Filter:     cfg.filter,
		Labeler:    cfg.labeler,
		Metadata:   cfg.metadata,
	})
}
