// Package model defines the typed report model consumed by renderers: rows
// with raw and formatted completion values, column descriptors, the average
// statistic with its "n/a" sentinel, and skip/warning accounting for
// malformed edges. Builders reside in internal/model but return the types
// defined here. The row transform is pure and synchronous: rows preserve the
// source edge order, CompletionValue always carries the untransformed source
// fraction, and the average is computed over the post-filter row list only.
package model
