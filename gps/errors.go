package gps

import "fmt"

// RegistryError indicates that the Resolver's registry is inconsistent with
// the constraints it was asked to satisfy — typically, that an exact
// constraint names a UnitVersion that was never registered. Unlike a search
// dead-end, a RegistryError is fatal: the caller's view of the universe is
// incomplete, and continuing the search would risk producing a subtly wrong
// answer, so Resolve returns it immediately.
type RegistryError struct {
	Constraint *Constraint
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("no unit version was found for the constraint — %s", e.Constraint)
}

// noCandidateError records that no registered version of a package could
// satisfy the constraints active at the point it was needed.
type noCandidateError struct {
	name string
}

func (e *noCandidateError) Error() string {
	return fmt.Sprintf("cannot choose satisfying versions of package — %s", e.name)
}

// allCandidatesInvalidError records that every candidate version of a
// package produced, after propagation, a state where some earlier choice
// was newly invalidated.
type allCandidatesInvalidError struct {
	name string
	last *UnitVersion // the last invalid candidate tried, for diagnostics only
}

func (e *allCandidatesInvalidError) Error() string {
	return fmt.Sprintf("none of the versions produce a sensible result — %s", e.name)
}

// errCouldNotResolve is returned when the search space is exhausted with no
// remembered dead-end to report.
var errCouldNotResolve = fmt.Errorf("couldn't resolve")

// duplicateDependencyError is returned by UnitVersion.AddDependency when the
// named dependency was already declared on the receiver.
type duplicateDependencyError struct {
	name string
}

func (e *duplicateDependencyError) Error() string {
	return fmt.Sprintf("dependency already exists — %s", e.name)
}

// duplicateConstraintError is returned by UnitVersion.AddConstraint when an
// identical constraint (by identity) was already added to the receiver.
type duplicateConstraintError struct {
	c *Constraint
}

func (e *duplicateConstraintError) Error() string {
	return fmt.Sprintf("constraint already exists — %s", e.c)
}
