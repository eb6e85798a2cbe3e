package gps

import (
	"fmt"
	"strings"
)

// ConstraintKind distinguishes a pin to one precise version from an
// at-least bound paired with earliest-compatible-version (ecv) checking.
type ConstraintKind uint8

const (
	// Exact constraints require the exact version named.
	Exact ConstraintKind = iota
	// AtLeast constraints require a version no lower than the one named,
	// subject to the candidate's own ecv bound.
	AtLeast
)

func (k ConstraintKind) String() string {
	if k == Exact {
		return "exact"
	}
	return "at-least"
}

// Constraint is one parsed requirement on a package's version. Constraints
// are always obtained from a Resolver's interner (Resolver.GetConstraint);
// two Constraints with the same (name, printed form) are always the same
// *Constraint value, so identity comparison is sound for equality.
type Constraint struct {
	name    string
	kind    ConstraintKind
	version Version
	body    string // printed form, as supplied at parse time; the interning key
}

// Name is the package name this constraint restricts.
func (c *Constraint) Name() string { return c.name }

// Kind reports whether this is an Exact or AtLeast constraint.
func (c *Constraint) Kind() ConstraintKind { return c.kind }

// Version is the version boundary named by this constraint.
func (c *Constraint) Version() Version { return c.version }

// String renders the constraint as "name@body", matching the combined
// syntax accepted by ParseConstraintString.
func (c *Constraint) String() string {
	return fmt.Sprintf("%s@%s", c.name, c.body)
}

// isSatisfied reports whether uv is an admissible pick for this constraint.
//
// An Exact constraint holds iff uv's version equals the constraint's
// version, regardless of uv's ecv. An AtLeast constraint holds iff the
// constraint's version is no greater than uv's version, AND uv's ecv is no
// greater than the constraint's version — the latter clause encodes that
// the candidate must still consider itself compatible with a consumer
// pinned at the constraint's version.
func (c *Constraint) isSatisfied(uv *UnitVersion) bool {
	if c.kind == Exact {
		return uv.version.Equal(c.version)
	}
	return uv.version.AtLeast(c.version) && c.version.AtLeast(uv.ecv)
}

// SatisfyingUnitVersion finds the UnitVersion this constraint would select
// out of the given Resolver's registry.
//
// For an Exact constraint this is a direct lookup by "name@version". For an
// AtLeast constraint it is the first UnitVersion, in registration order,
// that satisfies isSatisfied. Returns nil if no such UnitVersion is
// registered.
func (c *Constraint) SatisfyingUnitVersion(r *Resolver) *UnitVersion {
	if c.kind == Exact {
		key := c.name + "@" + c.version.String()
		uv, _ := r.unitVersionsByKey.Get(key)
		return uv
	}
	for _, uv := range r.unitVersions[c.name] {
		if c.isSatisfied(uv) {
			return uv
		}
	}
	return nil
}

// parseConstraintBody parses the version portion of a constraint: a leading
// "=" pins Exact, anything else is AtLeast.
func parseConstraintBody(body string) (ConstraintKind, Version, error) {
	if strings.HasPrefix(body, "=") {
		v, err := NewVersion(strings.TrimPrefix(body, "="))
		if err != nil {
			return 0, Version{}, err
		}
		return Exact, v, nil
	}
	v, err := NewVersion(body)
	if err != nil {
		return 0, Version{}, err
	}
	return AtLeast, v, nil
}

// ParseConstraintString splits a combined "name@=version" / "name@version"
// specifier into its name and version-constraint-body parts.
func ParseConstraintString(spec string) (name, body string, err error) {
	i := strings.LastIndex(spec, "@")
	if i < 0 {
		return "", "", fmt.Errorf("gps: malformed constraint %q, want name@version", spec)
	}
	return spec[:i], spec[i+1:], nil
}
