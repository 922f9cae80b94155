// Package dataset adapts flat JSON datasets (a bare array of records or a
// {"rows": [...]} wrapper) to the shared query contracts, so already-tabular
// exports flow through the same pipeline as live GraphQL results.
package dataset
