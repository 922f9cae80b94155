package dataset

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/query"
)

func documentFromJSON(t *testing.T, payload string) query.Document {
	t.Helper()
	doc, err := query.NewDocument(query.SourceFromFile("dataset.json"), []byte(payload))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func TestAdapter_Detect(t *testing.T) {
	adapter := NewAdapter(nil)

	cases := []struct {
		name    string
		payload string
		want    bool
	}{
		{"bare array", `[{"name":"App"}]`, true},
		{"rows container", `{"rows":[{"name":"App"}]}`, true},
		{"items container", `{"items":[]}`, true},
		{"graphql envelope", `{"data":{"allFactSheets":{"edges":[]}}}`, false},
		{"scalar", `42`, false},
		{"empty", ``, false},
		{"malformed array", `[{"name":`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := adapter.Detect(nil, []byte(tc.payload)); got != tc.want {
				t.Errorf("Detect(%s) = %v, want %v", tc.payload, got, tc.want)
			}
		})
	}
}

func TestAdapter_ParseBareArray(t *testing.T) {
	doc := documentFromJSON(t, `[
		{"id":"a-1","name":"Portal","completion":0.6},
		{"id":"a-2","name":"Billing","completion":{"completion":0.25}},
		{"id":"a-3","name":"Ledger","completion":"45%"}
	]`)

	result, err := NewAdapter(nil).Parse(context.Background(), doc, query.NewParserOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if result.TotalCount != 3 || len(result.Edges) != 3 {
		t.Fatalf("edges: total=%d len=%d", result.TotalCount, len(result.Edges))
	}
	if result.Collection != "" {
		t.Errorf("bare arrays carry no collection name, got %q", result.Collection)
	}

	want := []query.Node{
		{ID: "a-1", Name: "Portal", Completion: &query.Completion{Completion: 0.6}},
		{ID: "a-2", Name: "Billing", Completion: &query.Completion{Completion: 0.25}},
		{ID: "a-3", Name: "Ledger", Completion: &query.Completion{Completion: 0.45}},
	}
	for i, node := range want {
		if diff := cmp.Diff(node, result.Edges[i].Node); diff != "" {
			t.Errorf("edge %d node mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestAdapter_ParseRowsContainer(t *testing.T) {
	doc := documentFromJSON(t, `{"rows":[{"name":"Portal","completion":1}]}`)

	result, err := NewAdapter(nil).Parse(context.Background(), doc, query.NewParserOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.Collection != "rows" {
		t.Errorf("collection: %q", result.Collection)
	}
	if len(result.Edges) != 1 || result.Edges[0].Node.Completion == nil {
		t.Fatalf("edges: %+v", result.Edges)
	}
}

func TestAdapter_ParseMalformedRecordsYieldZeroNodes(t *testing.T) {
	doc := documentFromJSON(t, `{"rows":[{"name":"Portal","completion":0.5},"not-an-object"]}`)

	result, err := NewAdapter(nil).Parse(context.Background(), doc, query.NewParserOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(result.Edges) != 2 {
		t.Fatalf("edges: %d", len(result.Edges))
	}
	// The second record is undecodable; its zero node is the builder's cue to
	// skip and count it.
	if result.Edges[1].Node.Name != "" || result.Edges[1].Node.Completion != nil {
		t.Errorf("expected zero node for malformed record, got %+v", result.Edges[1].Node)
	}
}

func TestAdapter_ParseCapturesAttrs(t *testing.T) {
	doc := documentFromJSON(t, `[{"id":"a-1","name":"Portal","completion":0.5,"owner":"platform"}]`)

	result, err := NewAdapter(nil).Parse(context.Background(), doc, query.NewParserOptions(query.WithAttrCapture(true)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	node := result.Edges[0].Node
	if node.Attrs["owner"] != "platform" {
		t.Errorf("attrs: %+v", node.Attrs)
	}
	if _, ok := node.Attrs["name"]; ok {
		t.Errorf("core fields must not be duplicated into attrs: %+v", node.Attrs)
	}
}

func TestAdapter_ParseRejectsUnknownShapes(t *testing.T) {
	for _, payload := range []string{`{}`, `42`, `"text"`} {
		doc := documentFromJSON(t, payload)
		if _, err := NewAdapter(nil).Parse(context.Background(), doc, query.NewParserOptions()); err == nil {
			t.Errorf("expected error for payload %s", payload)
		}
	}
}

func TestNormalizeCompletion(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"number", 0.75, 0.75, true},
		{"numeric string", "0.3", 0.3, true},
		{"percent string", "45%", 0.45, true},
		{"padded percent", " 80 % ", 0.8, true},
		{"nested record", map[string]any{"completion": 0.9}, 0.9, true},
		{"nested string", map[string]any{"completion": "10%"}, 0.1, true},
		{"out of range passes through", 1.5, 1.5, true},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"empty string", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := normalizeCompletion(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Errorf("normalizeCompletion(%v) = %v, %v; want %v, %v", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}
