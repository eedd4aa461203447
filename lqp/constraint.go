package lqp

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wjcskqygj2015/hyrise/expr"
)

// columnKey is the comparable value form of an expr.LQPColumn, used as the
// element type of the sets below. LQPColumn is ordinarily handled by
// pointer, but its fields (an interface over a pointer-backed node, plus an
// int) are themselves comparable, so the dereferenced value works directly
// as a mapset element without a hand-rolled key type.
type columnKey = expr.LQPColumn

func keyOf(col *expr.LQPColumn) columnKey { return *col }

// UniqueConstraint names a set of column expressions whose combined values
// are unique across every row of the node it is attached to — Hyrise's
// UCC (unique column combination), rendered here as a set rather than a
// single column so that composite keys are representable.
type UniqueConstraint struct {
	columns mapset.Set[columnKey]
}

// NewUniqueConstraint builds a UniqueConstraint over the given columns.
func NewUniqueConstraint(columns ...*expr.LQPColumn) UniqueConstraint {
	s := mapset.NewThreadUnsafeSet[columnKey]()
	for _, c := range columns {
		s.Add(keyOf(c))
	}
	return UniqueConstraint{columns: s}
}

// Columns returns the constraint's columns as LQPColumn pointers, in no
// particular order.
func (u UniqueConstraint) Columns() []*expr.LQPColumn {
	out := make([]*expr.LQPColumn, 0, u.columns.Cardinality())
	for c := range u.columns.Iter() {
		cc := c
		out = append(out, &cc)
	}
	return out
}

// Len reports how many columns make up the constraint.
func (u UniqueConstraint) Len() int { return u.columns.Cardinality() }

// Contains reports whether col is one of the constraint's columns.
func (u UniqueConstraint) Contains(col *expr.LQPColumn) bool {
	return u.columns.Contains(keyOf(col))
}

// Equal reports whether two constraints name exactly the same column set.
func (u UniqueConstraint) Equal(o UniqueConstraint) bool {
	return u.columns.Equal(o.columns)
}

// MatchesExactly reports whether the constraint's column set is exactly
// the given columns, neither more nor fewer.
func (u UniqueConstraint) MatchesExactly(columns ...*expr.LQPColumn) bool {
	other := mapset.NewThreadUnsafeSet[columnKey]()
	for _, c := range columns {
		other.Add(keyOf(c))
	}
	return u.columns.Equal(other)
}

// ConstraintSet is an immutable collection of UniqueConstraints — "the set
// of sets of column expressions" that hold on a node's output. Equal
// constraints are deduplicated; construction and every transformation
// return a new ConstraintSet rather than mutating in place.
type ConstraintSet struct {
	items []UniqueConstraint
}

// EmptyConstraintSet is the conservative fallback returned whenever a node
// cannot establish that any constraint survives an operation.
var EmptyConstraintSet = ConstraintSet{}

// NewConstraintSet builds a ConstraintSet from the given constraints,
// dropping duplicates.
func NewConstraintSet(constraints ...UniqueConstraint) ConstraintSet {
	var s ConstraintSet
	for _, c := range constraints {
		s = s.Add(c)
	}
	return s
}

// Add returns a ConstraintSet with c appended, unless an equal constraint
// is already present.
func (s ConstraintSet) Add(c UniqueConstraint) ConstraintSet {
	for _, existing := range s.items {
		if existing.Equal(c) {
			return s
		}
	}
	items := make([]UniqueConstraint, len(s.items), len(s.items)+1)
	copy(items, s.items)
	items = append(items, c)
	return ConstraintSet{items: items}
}

// Union returns the deduplicated union of s and o.
func (s ConstraintSet) Union(o ConstraintSet) ConstraintSet {
	result := s
	for _, c := range o.items {
		result = result.Add(c)
	}
	return result
}

// Len reports how many distinct constraints the set holds.
func (s ConstraintSet) Len() int { return len(s.items) }

// Items returns the set's constraints in insertion order.
func (s ConstraintSet) Items() []UniqueConstraint {
	out := make([]UniqueConstraint, len(s.items))
	copy(out, s.items)
	return out
}

// ContainsExact reports whether any constraint in the set names exactly the
// given columns.
func (s ConstraintSet) ContainsExact(columns ...*expr.LQPColumn) bool {
	for _, c := range s.items {
		if c.MatchesExactly(columns...) {
			return true
		}
	}
	return false
}

// Filter returns the subset of constraints for which keep returns true.
func (s ConstraintSet) Filter(keep func(UniqueConstraint) bool) ConstraintSet {
	var out ConstraintSet
	for _, c := range s.items {
		if keep(c) {
			out = out.Add(c)
		}
	}
	return out
}

// OnlyColumnsFrom returns the subset of constraints whose every column
// satisfies allowed — used when a node (e.g. Projection) may
// drop columns and any constraint naming a dropped column no longer holds.
func (s ConstraintSet) OnlyColumnsFrom(allowed func(*expr.LQPColumn) bool) ConstraintSet {
	return s.Filter(func(c UniqueConstraint) bool {
		for _, col := range c.Columns() {
			if !allowed(col) {
				return false
			}
		}
		return true
	})
}
