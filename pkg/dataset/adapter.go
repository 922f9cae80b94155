package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/goliatone/go-reportgen/pkg/query"
)

const DefaultAdapterName = "dataset"

// Adapter exposes flat datasets behind the query.FormatAdapter interface.
type Adapter struct {
	loader query.Loader
}

// NewAdapter constructs a dataset adapter with the supplied loader.
func NewAdapter(loader query.Loader) *Adapter {
	return &Adapter{loader: loader}
}

// Name returns the adapter registry identifier.
func (a *Adapter) Name() string {
	return DefaultAdapterName
}

// Detect reports whether the raw payload looks like a flat dataset.
func (a *Adapter) Detect(_ query.Source, raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '[' {
		var rows []json.RawMessage
		return json.Unmarshal(trimmed, &rows) == nil
	}
	if trimmed[0] != '{' {
		return false
	}
	var container rowContainer
	if err := json.Unmarshal(trimmed, &container); err != nil {
		return false
	}
	return container.Rows != nil || container.Items != nil
}

// Load fetches the raw dataset document.
func (a *Adapter) Load(ctx context.Context, src query.Source) (query.Document, error) {
	if a == nil || a.loader == nil {
		return query.Document{}, errors.New("dataset adapter: loader is nil")
	}
	return a.loader.Load(ctx, src)
}

// Parse synthesizes the Result IR from the flat records. The ResultPath option
// does not apply to this format and is ignored.
func (a *Adapter) Parse(ctx context.Context, doc query.Document, opts query.ParserOptions) (query.Result, error) {
	if err := ctx.Err(); err != nil {
		return query.Result{}, err
	}
	rows, collection, err := decodeRows(doc.Raw())
	if err != nil {
		return query.Result{}, err
	}
	return resultFromRows(rows, collection, opts), nil
}
