package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/filter"
	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

// ValidateView checks one view configuration: column keys must be unique and
// non-empty, the filter expression must compile, and every named panel must
// exist in the registry. A nil registry falls back to the built-in panels.
func ValidateView(view viewconfig.View, registry *panels.Registry) Result {
	result := Result{Valid: true}
	if registry == nil {
		registry = panels.NewRegistry()
	}

	seen := make(map[string]struct{}, len(view.Columns))
	for i, column := range view.Columns {
		path := fmt.Sprintf("columns[%d]", i)
		key := strings.TrimSpace(column.Key)
		if key == "" {
			result.fail(path, "column key is empty")
			continue
		}
		if _, dup := seen[key]; dup {
			result.fail(path, "duplicate column %q", key)
			continue
		}
		seen[key] = struct{}{}
	}

	if strings.TrimSpace(view.Filter) != "" {
		if _, err := filter.Compile(view.Filter); err != nil {
			result.fail("filter", "%v", err)
		}
	}

	for i, name := range view.Panels {
		if strings.TrimSpace(name) == "" {
			result.fail(fmt.Sprintf("panels[%d]", i), "panel name is empty")
			continue
		}
		if !registry.Has(name) {
			result.fail(fmt.Sprintf("panels[%d]", i), "unknown panel %q", name)
		}
	}

	return result
}

// ValidateStore validates every view in a store, keyed by view name.
func ValidateStore(store *viewconfig.Store, registry *panels.Registry) map[string]Result {
	out := make(map[string]Result)
	if store == nil {
		return out
	}
	for _, view := range store.Views() {
		out[view.Name] = ValidateView(view, registry)
	}
	return out
}
