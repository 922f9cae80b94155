package panels

import (
	"fmt"
	"strings"
	"sync"
)

// Built-in panel identifiers exposed by the registry.
const (
	PanelSummary = "summary"
	PanelColumns = "columns"
	PanelAverage = "average"
)

// Panel describes one report section renderers can draw: the summary line,
// the column table, the completion average. TitleKey feeds the translator;
// Partial names the template fragment HTML renderers include. Default panels
// render when the request does not narrow the selection.
type Panel struct {
	Name     string
	TitleKey string
	Partial  string
	Default  bool
}

// Registry stores panels in registration order, which is also the default
// render order. An empty registry renders nothing.
type Registry struct {
	mu     sync.RWMutex
	panels []Panel
}

// NewRegistry constructs a registry with the built-in report panels
// registered: summary, columns and average, all enabled by default.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry with no panels, for callers that
// want full control over the panel set.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// Register adds a panel. Duplicate names return an error so wiring mistakes
// surface at startup rather than as missing report sections.
func (r *Registry) Register(panel Panel) error {
	name := strings.TrimSpace(panel.Name)
	if name == "" {
		return fmt.Errorf("panels: panel name is required")
	}
	panel.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.panels {
		if existing.Name == name {
			return fmt.Errorf("panels: panel %q already registered", name)
		}
	}
	r.panels = append(r.panels, panel)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(panel Panel) {
	if err := r.Register(panel); err != nil {
		panic(err)
	}
}

// Get retrieves a panel by name.
func (r *Registry) Get(name string) (Panel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, panel := range r.panels {
		if panel.Name == name {
			return panel, true
		}
	}
	return Panel{}, false
}

// Has reports whether a panel is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all panels in registration order.
func (r *Registry) List() []Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Panel(nil), r.panels...)
}

// Names returns the registered panel names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.panels))
	for _, panel := range r.panels {
		names = append(names, panel.Name)
	}
	return names
}

// Defaults returns the panels marked as default, in registration order.
func (r *Registry) Defaults() []Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Panel, 0, len(r.panels))
	for _, panel := range r.panels {
		if panel.Default {
			out = append(out, panel)
		}
	}
	return out
}

// Select resolves a requested panel list, preserving the requested order.
// With no names it returns the default panels. Unknown names error so view
// typos do not silently drop report sections.
func (r *Registry) Select(names []string) ([]Panel, error) {
	if len(names) == 0 {
		return r.Defaults(), nil
	}

	out := make([]Panel, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		panel, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("panels: panel %q not found", name)
		}
		out = append(out, panel)
	}
	return out, nil
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(Panel{
		Name:     PanelSummary,
		TitleKey: "report.panel.summary",
		Partial:  "panel_summary",
		Default:  true,
	})
	r.MustRegister(Panel{
		Name:     PanelColumns,
		TitleKey: "report.panel.columns",
		Partial:  "panel_columns",
		Default:  true,
	})
	r.MustRegister(Panel{
		Name:     PanelAverage,
		TitleKey: "report.panel.average",
		Partial:  "panel_average",
		Default:  true,
	})
}
