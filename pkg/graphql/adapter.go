package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	internalparser "github.com/goliatone/go-reportgen/internal/graphql/parser"
	"github.com/goliatone/go-reportgen/pkg/query"
)

const DefaultAdapterName = "graphql"

// Adapter exposes the GraphQL envelope format behind the query.FormatAdapter
// interface so the orchestrator can resolve it alongside other input formats.
type Adapter struct {
	loader query.Loader
}

// NewAdapter constructs a GraphQL adapter with the supplied loader.
func NewAdapter(loader query.Loader) *Adapter {
	return &Adapter{loader: loader}
}

// Name returns the adapter registry identifier.
func (a *Adapter) Name() string {
	return DefaultAdapterName
}

// Detect reports whether the raw payload appears to be a GraphQL response
// envelope.
func (a *Adapter) Detect(_ query.Source, raw []byte) bool {
	return detectEnvelope(raw)
}

// Load fetches the raw result document.
func (a *Adapter) Load(ctx context.Context, src query.Source) (query.Document, error) {
	if a == nil || a.loader == nil {
		return query.Document{}, errors.New("graphql adapter: loader is nil")
	}
	return a.loader.Load(ctx, src)
}

// Parse decodes the envelope into the Result IR using the supplied options.
func (a *Adapter) Parse(ctx context.Context, doc query.Document, opts query.ParserOptions) (query.Result, error) {
	return internalparser.New(opts).Parse(ctx, doc)
}

func detectEnvelope(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var probe struct {
		Data   json.RawMessage `json:"data"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return false
	}
	return len(probe.Data) > 0 || len(probe.Errors) > 0
}
