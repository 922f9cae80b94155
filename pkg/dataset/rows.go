package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-reportgen/pkg/query"
)

// rowContainer matches the wrapper object shape. Only one of the keys is
// expected; "rows" wins when both are present.
type rowContainer struct {
	Rows  []json.RawMessage `json:"rows"`
	Items []json.RawMessage `json:"items"`
}

// decodeRows accepts a bare JSON array or a rows/items wrapper and returns the
// raw records in order.
func decodeRows(raw []byte) ([]json.RawMessage, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, "", errors.New("dataset: payload is empty")
	}

	switch trimmed[0] {
	case '[':
		var rows []json.RawMessage
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, "", fmt.Errorf("dataset: decode array: %w", err)
		}
		return rows, "", nil
	case '{':
		var container rowContainer
		if err := json.Unmarshal(trimmed, &container); err != nil {
			return nil, "", fmt.Errorf("dataset: decode container: %w", err)
		}
		if container.Rows != nil {
			return container.Rows, "rows", nil
		}
		if container.Items != nil {
			return container.Items, "items", nil
		}
		return nil, "", errors.New("dataset: container carries no rows or items array")
	default:
		return nil, "", errors.New("dataset: payload is neither an array nor a container object")
	}
}

// resultFromRows synthesizes the shared Result IR from flat records. Each
// record becomes one edge; records that fail to decode yield zero-value nodes
// the report builder skips and counts, mirroring the envelope parser's
// leniency.
func resultFromRows(rows []json.RawMessage, collection string, opts query.ParserOptions) query.Result {
	result := query.Result{
		Collection: collection,
		TotalCount: len(rows),
		Edges:      make([]query.Edge, 0, len(rows)),
	}

	for _, raw := range rows {
		fields := make(map[string]any)
		if err := json.Unmarshal(raw, &fields); err != nil {
			result.Edges = append(result.Edges, query.Edge{})
			continue
		}
		result.Edges = append(result.Edges, query.Edge{Node: nodeFromRecord(fields, opts)})
	}
	return result
}

func nodeFromRecord(fields map[string]any, opts query.ParserOptions) query.Node {
	node := query.Node{}

	if id, ok := fields["id"].(string); ok {
		node.ID = id
	}
	if name, ok := fields["name"].(string); ok {
		node.Name = name
	}
	completion, completionOK := normalizeCompletion(fields["completion"])
	if completionOK {
		node.Completion = &query.Completion{Completion: completion}
	}

	if !opts.CaptureAttrs() {
		return node
	}

	for key, value := range fields {
		switch key {
		case "id", "name":
			continue
		case "completion":
			if completionOK {
				continue
			}
		}
		if node.Attrs == nil {
			node.Attrs = make(map[string]any)
		}
		node.Attrs[key] = value
	}
	return node
}
