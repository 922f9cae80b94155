package mockworkspace

import "net/http"

// Component is a small, extraction-friendly wrapper around the mock platform
// handlers, their configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// GraphQLHandler returns the net/http handler for query execution.
func (c *Component) GraphQLHandler() http.Handler {
	if c == nil {
		return GraphQLHandler()
	}
	return GraphQLHandlerWithOptions(c.opts)
}

// InitHandler returns the net/http handler for workspace bootstrap.
func (c *Component) InitHandler() http.Handler {
	if c == nil {
		return InitHandler()
	}
	return InitHandlerWithOptions(c.opts)
}

// RegisterRoutes registers both component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
