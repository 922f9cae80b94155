package console

// Option configures the console renderer.
type Option func(*Renderer)

// WithColor toggles ANSI styling. Disable for deterministic output in tests
// or when piping into files.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// WithPromptDriver overrides the prompt driver used for interactive
// exploration.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPanels narrows the default panel selection, in render order.
func WithPanels(names ...string) Option {
	return func(r *Renderer) {
		r.panelNames = append([]string(nil), names...)
	}
}
