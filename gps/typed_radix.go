package gps

import "github.com/armon/go-radix"

// Typed wrappers around github.com/armon/go-radix: a thin wrapper that
// avoids type assertions
// everywhere else in the package. The Resolver's two interning tables
// (UnitVersions by "name@version", Constraints by printed form) are both
// built-once, never-mutated-after-registration maps, so unlike
// DependenciesList/ConstraintsList they don't need persistent-value
// semantics — a single shared trie per Resolver is correct and avoids the
// copy-on-write cost that value semantics would otherwise force here.

type unitVersionTrie struct {
	t *radix.Tree
}

func newUnitVersionTrie() unitVersionTrie {
	return unitVersionTrie{t: radix.New()}
}

// Get looks up a UnitVersion by its "name@version" key.
func (t unitVersionTrie) Get(key string) (*UnitVersion, bool) {
	v, ok := t.t.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*UnitVersion), true
}

// Insert adds uv under key, returning the previous value if the key was
// already present.
func (t unitVersionTrie) Insert(key string, uv *UnitVersion) (*UnitVersion, bool) {
	old, had := t.t.Insert(key, uv)
	if !had {
		return nil, false
	}
	return old.(*UnitVersion), true
}

// Len reports the number of interned UnitVersions.
func (t unitVersionTrie) Len() int {
	return t.t.Len()
}

type constraintTrie struct {
	t *radix.Tree
}

func newConstraintTrie() constraintTrie {
	return constraintTrie{t: radix.New()}
}

// Get looks up a Constraint by its "name@body" key.
func (t constraintTrie) Get(key string) (*Constraint, bool) {
	v, ok := t.t.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Constraint), true
}

// Insert adds c under key, returning the previous value if the key was
// already present.
func (t constraintTrie) Insert(key string, c *Constraint) (*Constraint, bool) {
	old, had := t.t.Insert(key, c)
	if !had {
		return nil, false
	}
	return old.(*Constraint), true
}

// Len reports the number of interned Constraints.
func (t constraintTrie) Len() int {
	return t.t.Len()
}
