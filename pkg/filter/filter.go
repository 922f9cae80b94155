package filter

import "github.com/goliatone/go-reportgen/pkg/model"

// Predicate decides whether a report row is kept. Implementations must be
// safe for repeated calls; the builder invokes them once per materialized row.
type Predicate interface {
	Keep(row model.Row) (bool, error)
}

// Func adapts a plain function into a Predicate.
type Func func(row model.Row) (bool, error)

// Keep calls the underlying function.
func (fn Func) Keep(row model.Row) (bool, error) {
	return fn(row)
}

// RowPredicate converts a Predicate into the callback shape the model builder
// accepts.
func RowPredicate(p Predicate) model.RowPredicate {
	if p == nil {
		return nil
	}
	return p.Keep
}
