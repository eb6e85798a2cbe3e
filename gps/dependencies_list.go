package gps

// DependenciesList is an ordered set of unique package names still required
// but not yet chosen. Every operation returns a new list; the receiver is
// left unchanged, so a DependenciesList can be shared freely across search
// states.
//
// The backing store is a flat, eagerly-copied slice rather than a
// persistent trie: real dependency graphs rarely carry more than a few
// dozen live names in any one state, and the Design Notes explicitly
// sanction flat arrays with eager copying at that scale in preference to
// the complexity of a hash-trie.
type DependenciesList struct {
	names []string
}

// NewDependenciesList builds a DependenciesList from names, in the order
// given, dropping duplicates after the first occurrence.
func NewDependenciesList(names ...string) DependenciesList {
	var d DependenciesList
	for _, n := range names {
		d = d.Push(n)
	}
	return d
}

// IsEmpty reports whether the list has no names.
func (d DependenciesList) IsEmpty() bool {
	return len(d.names) == 0
}

// Peek returns the head of the list under insertion order, and whether the
// list was non-empty. Peek is a deterministic function of the list's
// history, which the solver relies on for reproducible search.
func (d DependenciesList) Peek() (string, bool) {
	if len(d.names) == 0 {
		return "", false
	}
	return d.names[0], true
}

// Contains reports whether name is present in the list.
func (d DependenciesList) Contains(name string) bool {
	for _, n := range d.names {
		if n == name {
			return true
		}
	}
	return false
}

// Push returns a new list with name appended, unless it is already present.
func (d DependenciesList) Push(name string) DependenciesList {
	if d.Contains(name) {
		return d
	}
	next := make([]string, len(d.names), len(d.names)+1)
	copy(next, d.names)
	return DependenciesList{names: append(next, name)}
}

// Remove returns a new list with name removed, if present.
func (d DependenciesList) Remove(name string) DependenciesList {
	if !d.Contains(name) {
		return d
	}
	next := make([]string, 0, len(d.names))
	for _, n := range d.names {
		if n != name {
			next = append(next, n)
		}
	}
	return DependenciesList{names: next}
}

// Union returns a new list preserving the receiver's order, with any names
// from other not already present appended in other's order.
func (d DependenciesList) Union(other DependenciesList) DependenciesList {
	result := d
	other.Each(func(name string) {
		result = result.Push(name)
	})
	return result
}

// Each calls fn once for every name, in list order.
func (d DependenciesList) Each(fn func(name string)) {
	for _, n := range d.names {
		fn(n)
	}
}

// Len returns the number of names in the list.
func (d DependenciesList) Len() int {
	return len(d.names)
}
