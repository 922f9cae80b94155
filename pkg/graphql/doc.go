// Package graphql adapts the workspace platform's GraphQL response envelope
// to the shared query contracts. The envelope decoder itself lives under
// internal/graphql to keep wire details out of the public surface.
package graphql
