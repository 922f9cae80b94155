package parser

import (
	"encoding/json"

	pkgquery "github.com/goliatone/go-reportgen/pkg/query"
)

// decodeEdge extracts one edge leniently. A malformed edge or node never
// fails the parse; it yields a zero-value Node that the report builder skips
// with a warning, keeping edge ordering and counts intact.
func (p *Parser) decodeEdge(raw json.RawMessage) pkgquery.Edge {
	var edge struct {
		Cursor string          `json:"cursor"`
		Node   json.RawMessage `json:"node"`
	}
	if err := json.Unmarshal(raw, &edge); err != nil {
		return pkgquery.Edge{}
	}

	out := pkgquery.Edge{Cursor: edge.Cursor}
	if len(edge.Node) == 0 {
		return out
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(edge.Node, &fields); err != nil {
		return out
	}

	out.Node = p.decodeNode(fields)
	return out
}

// decodeNode promotes the well-known fields and preserves the rest as attrs.
// A completion record that is present but not an object holding a numeric
// "completion" stays raw in attrs so downstream warnings can tell malformed
// from missing.
func (p *Parser) decodeNode(fields map[string]any) pkgquery.Node {
	node := pkgquery.Node{}

	if id, ok := fields["id"].(string); ok {
		node.ID = id
	}
	if name, ok := fields["name"].(string); ok {
		node.Name = name
	}
	completion, completionOK := extractCompletion(fields["completion"])
	if completionOK {
		node.Completion = &pkgquery.Completion{Completion: completion}
	}

	if !p.options.CaptureAttrs() {
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

func extractCompletion(value any) (float64, bool) {
	record, ok := value.(map[string]any)
	if !ok {
		return 0, false
	}
	return toFloat(record["completion"])
}

func toFloat(value any) (float64, bool) {
	f, ok := value.(float64)
	return f, ok
}
