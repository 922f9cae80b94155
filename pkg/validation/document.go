package validation

import (
	"context"
	"fmt"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// ValidateResultDocument parses a result document with the supplied format
// adapter and reports what the pipeline would do with it: a payload that
// cannot be parsed is invalid; edges that would be skipped surface as
// non-fatal issues on a valid result.
func ValidateResultDocument(ctx context.Context, adapter query.FormatAdapter, doc query.Document) Result {
	result := Result{Valid: true}
	if adapter == nil {
		result.fail("", "format adapter is required")
		return result
	}

	parsed, err := adapter.Parse(ctx, doc, query.NewParserOptions())
	if err != nil {
		result.fail("", "parse: %v", err)
		return result
	}

	builder := model.NewBuilder()
	report, err := builder.Build(parsed)
	if err != nil {
		result.fail("", "build: %v", err)
		return result
	}

	for _, warning := range report.Warnings {
		result.addIssue(fmt.Sprintf("edges[%d]", warning.Edge), "%s", render.FormatWarning(warning))
	}
	if report.RowCount() == 0 {
		result.addIssue("", "no usable rows; average is %s", model.NotAvailable)
	}

	return result
}
