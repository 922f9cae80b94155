package query

import "context"

// Parser normalises raw result documents into the Result IR that downstream
// packages consume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Result, error)
}

// ParserOptions exposes the knobs shared by result parsers. The zero value is
// ready to use: auto-discovered result path, auxiliary attrs preserved.
type ParserOptions struct {
	// ResultPath pins the dotted path to the edge container inside the response
	// payload (e.g. "allFactSheets" or "report.allFactSheets"). Empty means the
	// parser discovers the first object carrying an "edges" array.
	ResultPath string

	// OmitAttrs drops auxiliary node fields instead of preserving them on
	// Node.Attrs.
	OmitAttrs bool
}

// CaptureAttrs reports whether auxiliary node fields should be preserved.
func (o ParserOptions) CaptureAttrs() bool {
	return !o.OmitAttrs
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithResultPath pins the location of the edge container.
func WithResultPath(path string) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResultPath = path
	}
}

// WithAttrCapture toggles preservation of auxiliary node fields.
func WithAttrCapture(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.OmitAttrs = !enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/ call this helper to remain
// consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level reportgen package to avoid import cycles.
