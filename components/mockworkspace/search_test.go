package mockworkspace

import "testing"

func TestSearchApplications(t *testing.T) {
	ratio := func(v float64) *float64 { return &v }
	apps := []Application{
		{ID: "a-1", Name: "Customer Portal", Completion: ratio(0.8)},
		{ID: "a-2", Name: "Billing Engine", Completion: ratio(0.4)},
		{ID: "a-3", Completion: ratio(0.5)},
		{ID: "a-4", Name: "Customer Data Hub"},
	}

	cases := []struct {
		name   string
		needle string
		want   []string
	}{
		{"empty matches all", "", []string{"a-1", "a-2", "a-3", "a-4"}},
		{"case insensitive", "customer", []string{"a-1", "a-4"}},
		{"padded needle", "  BILLING ", []string{"a-2"}},
		{"no match", "warehouse", []string{}},
		{"nameless entries never match", "a", []string{"a-1", "a-4"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchApplications(apps, tc.needle)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tc.want))
			}
			for i, app := range got {
				if app.ID != tc.want[i] {
					t.Errorf("result %d: got %s, want %s", i, app.ID, tc.want[i])
				}
			}
		})
	}
}

func TestGraphQLHandler_NameVariable(t *testing.T) {
	rec := postGraphQL(t, GraphQLHandler(), `{"query":"query($name:String){...}","variables":{"name":"portal"}}`, nil)

	env := decodeEnvelope(t, rec)
	if env.Data.AllFactSheets.TotalCount != 1 {
		t.Fatalf("total count: got %d", env.Data.AllFactSheets.TotalCount)
	}
	if len(env.Data.AllFactSheets.Edges) != 1 || env.Data.AllFactSheets.Edges[0].Node["name"] != "Customer Portal" {
		t.Fatalf("edges: %+v", env.Data.AllFactSheets.Edges)
	}
}
