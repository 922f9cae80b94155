package model

// Decorator enriches a report model after the canonical build, e.g. applying
// a view configuration or injecting metadata for renderers.
type Decorator interface {
	Decorate(*ReportModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*ReportModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(report *ReportModel) error {
	return fn(report)
}
