// Package mockworkspace provides an in-process stand-in for the workspace
// platform: a GraphQL endpoint answering fact-sheet completion queries from
// an embedded dataset, and an init endpoint that seeds workspace metadata and
// translations.
//
// The handlers are deterministic, honour the "first" query variable for page
// sizing, and can inject GraphQL-level failures, which makes the component
// useful both for examples and for exercising error paths in tests.
package mockworkspace
