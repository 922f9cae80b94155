// Package orchestrator coordinates the report pipeline: load a query-result
// document, parse it through a format adapter, build the report model, apply
// views, transformers and decorators, then render with the selected renderer.
package orchestrator
