package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/query"
)

// resolveAdapter picks the format adapter for one request: an explicit format
// wins, otherwise the payload is probed against every registered adapter, and
// the configured default breaks ties with zero matches.
func (o *Orchestrator) resolveAdapter(ctx context.Context, req Request) (query.FormatAdapter, error) {
	if o.adapterRegistry == nil {
		return nil, errors.New("orchestrator: adapter registry is nil")
	}

	format := strings.TrimSpace(req.Format)
	if format != "" {
		adapter, err := o.adapterRegistry.Get(format)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	}

	raw, src, err := o.rawForDetection(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		if o.defaultFormat == "" {
			return nil, errors.New("orchestrator: format is required")
		}
		return o.adapterRegistry.Get(o.defaultFormat)
	}

	matches := o.adapterRegistry.Detect(src, raw)
	switch len(matches) {
	case 0:
		if o.defaultFormat == "" {
			return nil, errors.New("orchestrator: unable to detect format")
		}
		return o.adapterRegistry.Get(o.defaultFormat)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("orchestrator: multiple adapters matched payload (%s), specify format", formatAdapterNames(matches))
	}
}

func (o *Orchestrator) rawForDetection(ctx context.Context, req Request) ([]byte, query.Source, error) {
	switch {
	case req.Document != nil:
		return req.Document.Raw(), req.Document.Source(), nil
	case req.Source != nil:
		if o.loader == nil {
			return nil, nil, errors.New("orchestrator: loader is nil")
		}
		doc, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, nil, fmt.Errorf("orchestrator: load document for detection: %w", err)
		}
		return doc.Raw(), req.Source, nil
	default:
		return nil, nil, errors.New("orchestrator: source or document is required")
	}
}

func formatAdapterNames(adapters []query.FormatAdapter) string {
	if len(adapters) == 0 {
		return ""
	}
	names := make([]string, 0, len(adapters))
	for _, adapter := range adapters {
		if adapter == nil {
			continue
		}
		name := strings.TrimSpace(adapter.Name())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, ", ")
}
