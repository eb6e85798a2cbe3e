package gps

// ConstraintsList is a set of Constraints keyed by identity (pointer
// equality — sound because all Constraints are interned by a Resolver).
// Like DependenciesList, every operation returns a new value and leaves the
// receiver unchanged.
type ConstraintsList struct {
	items []*Constraint
}

// NewConstraintsList builds a ConstraintsList from cs, dropping duplicates
// after the first occurrence.
func NewConstraintsList(cs ...*Constraint) ConstraintsList {
	var l ConstraintsList
	for _, c := range cs {
		l = l.Push(c)
	}
	return l
}

// Contains reports whether c is a member, by identity.
func (l ConstraintsList) Contains(c *Constraint) bool {
	for _, item := range l.items {
		if item == c {
			return true
		}
	}
	return false
}

// Push returns a new list with c added, unless already present.
func (l ConstraintsList) Push(c *Constraint) ConstraintsList {
	if l.Contains(c) {
		return l
	}
	next := make([]*Constraint, len(l.items), len(l.items)+1)
	copy(next, l.items)
	return ConstraintsList{items: append(next, c)}
}

// Union returns a new list with every member of both l and other.
func (l ConstraintsList) Union(other ConstraintsList) ConstraintsList {
	result := l
	other.Each(func(c *Constraint) {
		result = result.Push(c)
	})
	return result
}

// Each calls fn once per member, in insertion order.
func (l ConstraintsList) Each(fn func(c *Constraint)) {
	for _, c := range l.items {
		fn(c)
	}
}

// Len returns the number of members.
func (l ConstraintsList) Len() int {
	return len(l.items)
}

// Violated reports whether uv fails any member constraint that names it.
func (l ConstraintsList) Violated(uv *UnitVersion) bool {
	for _, c := range l.items {
		if c.name == uv.name && !c.isSatisfied(uv) {
			return true
		}
	}
	return false
}

// ExactIntersectionByNames returns the subset of l's Exact constraints whose
// name appears in names. This is the dual operation used on both sides of
// exact-constraint propagation (§4.6): it is applied once to the
// already-in-force constraint set to find pins on a newly declared
// dependency, and again to a unit's own constraint set to find the pins it
// declares on packages it itself depends on.
func (l ConstraintsList) ExactIntersectionByNames(names DependenciesList) ConstraintsList {
	var result ConstraintsList
	for _, c := range l.items {
		if c.kind == Exact && names.Contains(c.name) {
			result = result.Push(c)
		}
	}
	return result
}
