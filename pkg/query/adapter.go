package query

import "context"

// FormatAdapter normalises one input format into the shared Result IR. The
// orchestrator resolves adapters by explicit format name or by payload
// detection, so a single pipeline serves GraphQL envelopes and flat datasets
// alike.
type FormatAdapter interface {
	Name() string
	Detect(src Source, raw []byte) bool
	Load(ctx context.Context, src Source) (Document, error)
	Parse(ctx context.Context, doc Document, opts ParserOptions) (Result, error)
}
