// Package query exposes the public contracts for the load and parse stages:
// sources, raw result documents, and the result IR consumed by the report
// builder. Implementations live under internal/ so wire-format details stay
// hidden from consumers.
package query
