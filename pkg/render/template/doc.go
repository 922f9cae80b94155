// Package template defines renderer-agnostic template interfaces and
// adapters. HTML renderers depend on the TemplateRenderer seam instead of a
// concrete engine so callers can swap implementations per deployment.
package template
