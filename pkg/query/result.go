package query

import "strings"

// Result is the parsed form of a workspace query response: an ordered list of
// edges plus collection-level metadata. Parsers for every supported input
// format produce this IR; the report builder consumes it.
type Result struct {
	// Collection names the edge container the parser located, e.g.
	// "allFactSheets". Empty for formats without a named container.
	Collection string

	// TotalCount mirrors the count reported by the platform. Zero when the
	// payload carries none; len(Edges) remains the authoritative local count.
	TotalCount int

	Edges []Edge
}

// Edge wraps a single node, preserving the platform's pagination cursor when
// one was present.
type Edge struct {
	Cursor string
	Node   Node
}

// Node is one entity instance. Completion stays a pointer so a missing record
// is distinguishable from a legitimate 0.0 ratio; Name uses the empty string
// for absence since an unnamed row is a data-quality error either way. Attrs
// carries any additional node fields the parser preserved.
type Node struct {
	ID    string
	Name  string
	Attrs map[string]any

	Completion *Completion
}

// Completion mirrors the nested completion record on the wire.
type Completion struct {
	Completion float64
}

// EdgeCount returns the number of edges in the result.
func (r Result) EdgeCount() int {
	return len(r.Edges)
}

// HasName reports whether the node carries a usable name.
func (n Node) HasName() bool {
	return strings.TrimSpace(n.Name) != ""
}

// Attr returns an auxiliary node field, when the parser captured one.
func (n Node) Attr(key string) (any, bool) {
	if n.Attrs == nil {
		return nil, false
	}
	value, ok := n.Attrs[key]
	return value, ok
}
