// Package viewconfig loads named report views from YAML or JSON documents
// and applies them to built report models: column selection and labels,
// translation key hints, row filters, locale, theme and panel choices.
package viewconfig
