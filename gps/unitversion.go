package gps

import "fmt"

// UnitVersion is an immutable descriptor of one concrete release of one
// package: its name, version, earliest-compatible-version (ecv), the
// dependency names it pulls in, and the constraints it imposes on others.
//
// UnitVersions are built with NewUnitVersion and then, before any call to
// Resolver.Resolve, populated with AddDependency/AddConstraint. Once
// registered with a Resolver they are never mutated again.
type UnitVersion struct {
	name    string
	version Version
	ecv     Version

	dependencies DependenciesList
	constraints  ConstraintsList
}

// NewUnitVersion constructs a UnitVersion for one release of name at
// version, compatible back to ecv.
func NewUnitVersion(name string, version, ecv Version) *UnitVersion {
	return &UnitVersion{
		name:    name,
		version: version,
		ecv:     ecv,
	}
}

// Name is the package name.
func (u *UnitVersion) Name() string { return u.name }

// Version is the concrete version of this release.
func (u *UnitVersion) Version() Version { return u.version }

// ECV is the earliest version this release still considers itself
// compatible with.
func (u *UnitVersion) ECV() Version { return u.ecv }

// Dependencies are the package names this release pulls in.
func (u *UnitVersion) Dependencies() DependenciesList { return u.dependencies }

// Constraints are the restrictions this release imposes on other packages.
func (u *UnitVersion) Constraints() ConstraintsList { return u.constraints }

// String renders the UnitVersion as "name@version", which also doubles as
// its interning key in a Resolver's registry.
func (u *UnitVersion) String() string {
	return fmt.Sprintf("%s@%s", u.name, u.version)
}

// AddDependency declares that this release requires the named package, with
// no version restriction of its own (any restriction is expressed
// separately via AddConstraint). It is used only during registration,
// before the UnitVersion is added to a Resolver; it errors if name was
// already declared.
func (u *UnitVersion) AddDependency(name string) error {
	if u.dependencies.Contains(name) {
		return &duplicateDependencyError{name: name}
	}
	u.dependencies = u.dependencies.Push(name)
	return nil
}

// AddConstraint imposes c on whichever package it names. It is used only
// during registration; it errors if an identical (by identity) constraint
// was already added.
func (u *UnitVersion) AddConstraint(c *Constraint) error {
	if u.constraints.Contains(c) {
		return &duplicateConstraintError{c: c}
	}
	u.constraints = u.constraints.Push(c)
	return nil
}
