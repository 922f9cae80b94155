package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (r stubRenderer) Name() string        { return r.name }
func (r stubRenderer) ContentType() string { return "text/plain" }
func (r stubRenderer) Render(context.Context, model.ReportModel, render.RenderOptions) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "console"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.Register(stubRenderer{name: "vanilla"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name to fail")
	}

	if !registry.Has("console") {
		t.Fatalf("expected console to be registered")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected missing renderer error")
	}

	if diff := cmp.Diff([]string{"console", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}
