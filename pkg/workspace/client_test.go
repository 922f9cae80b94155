package workspace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-reportgen/pkg/workspace"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := workspace.NewClient(); err == nil {
		t.Fatalf("expected missing base URL error")
	}
	if _, err := workspace.NewClient(workspace.WithBaseURL("not a url")); err == nil {
		t.Fatalf("expected invalid base URL error")
	}
}

func TestClient_Init(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/init" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"workspace": map[string]any{"id": "ws-1", "name": "Acme"},
			"translations": map[string]any{
				"en": map[string]any{"Application.name": "Name"},
			},
		})
	}))
	defer server.Close()

	client, err := workspace.NewClient(
		workspace.WithBaseURL(server.URL),
		workspace.WithAPIToken("secret"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ws, err := client.Init(context.Background())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if ws.ID != "ws-1" || ws.Name != "Acme" {
		t.Errorf("unexpected workspace %+v", ws)
	}
	if ws.Translations["en"]["Application.name"] != "Name" {
		t.Errorf("unexpected translations %v", ws.Translations)
	}
}

func TestClient_ExecuteGraphQL(t *testing.T) {
	var busy, released int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}

		var payload struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(payload.Query, "allFactSheets") {
			t.Errorf("unexpected query %q", payload.Query)
		}
		if payload.Variables["first"] != float64(10) {
			t.Errorf("unexpected variables %v", payload.Variables)
		}

		_, _ = w.Write([]byte(`{"data":{"allFactSheets":{"edges":[]}}}`))
	}))
	defer server.Close()

	client, err := workspace.NewClient(
		workspace.WithBaseURL(server.URL),
		workspace.WithStatusReporter(workspace.StatusFunc(func(label string) func() {
			busy++
			return func() { released++ }
		})),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	doc, err := client.ExecuteGraphQL(context.Background(),
		"{ allFactSheets { edges { node { displayName } } } }",
		map[string]any{"first": 10},
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(string(doc.Raw()), "allFactSheets") {
		t.Errorf("unexpected document payload %s", doc.Raw())
	}
	if busy != 1 || released != 1 {
		t.Errorf("expected busy acquired and released once, got busy=%d released=%d", busy, released)
	}
}

func TestClient_ExecuteGraphQL_ReleasesBusyOnFailure(t *testing.T) {
	var released int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workspace unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := workspace.NewClient(
		workspace.WithBaseURL(server.URL),
		workspace.WithStatusReporter(workspace.StatusFunc(func(string) func() {
			return func() { released++ }
		})),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.ExecuteGraphQL(context.Background(), "{ allFactSheets { edges } }", nil)
	if err == nil {
		t.Fatalf("expected status error")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "workspace unavailable") {
		t.Errorf("expected body snippet in error, got %v", err)
	}
	if released != 1 {
		t.Errorf("expected busy released on failure, got %d", released)
	}
}

func TestWorkspace_Translator(t *testing.T) {
	ws := &workspace.Workspace{
		Translations: map[string]map[string]string{
			"en":    {"report.title": "Completion", "Application.name": "Name"},
			"de":    {"report.title": "Fertigstellung"},
			"de-AT": {},
		},
	}

	translator := ws.Translator()

	if msg, err := translator.Translate("de", "report.title"); err != nil || msg != "Fertigstellung" {
		t.Errorf("expected de translation, got %q (%v)", msg, err)
	}
	// de-AT falls through de to the de table
	if msg, err := translator.Translate("de-AT", "report.title"); err != nil || msg != "Fertigstellung" {
		t.Errorf("expected de-AT fallback, got %q (%v)", msg, err)
	}
	// fr falls back to en
	if msg, err := translator.Translate("fr", "Application.name"); err != nil || msg != "Name" {
		t.Errorf("expected en fallback, got %q (%v)", msg, err)
	}
	if _, err := translator.Translate("en", "missing.key"); err == nil {
		t.Errorf("expected missing key error")
	}
}

func TestWorkspace_Labeler(t *testing.T) {
	ws := &workspace.Workspace{
		Translations: map[string]map[string]string{
			"en": {"Application.name": "Application Name"},
		},
	}

	labeler := ws.Labeler("en")

	if got := labeler("Application", "name"); got != "Application Name" {
		t.Errorf("expected platform label, got %q", got)
	}
	if got := labeler("Application", "completionRatio"); got != "Completion Ratio" {
		t.Errorf("expected humanized fallback, got %q", got)
	}
}
