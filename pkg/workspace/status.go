package workspace

// StatusReporter surfaces long-running platform calls to the host
// application, e.g. a spinner in a CLI or a busy bar in a report UI. Busy
// returns a release function the client invokes when the call finishes,
// success or failure.
type StatusReporter interface {
	Busy(label string) (release func())
}

// StatusFunc adapts a function into a StatusReporter.
type StatusFunc func(label string) func()

// Busy calls the underlying function.
func (fn StatusFunc) Busy(label string) func() {
	return fn(label)
}

// NopStatus is the default reporter; it does nothing.
type NopStatus struct{}

// Busy returns a release function that does nothing.
func (NopStatus) Busy(string) func() {
	return func() {}
}
