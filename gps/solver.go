package gps

import (
	"container/heap"
	"errors"
	"math"

	"github.com/Sirupsen/logrus"
)

// Options tunes the search: how expensive a partial solution is judged to
// be, how that judgement is combined with the accumulated cost of getting
// there, and whether to stop after the first propagation pass.
//
// All three functions default to constants that make every state cost zero,
// which leaves the search ordered only by how many choices a state has made,
// always expanding the state with the most choices first — deterministic, but making no
// attempt to prefer newer or otherwise "better" versions. Callers that care
// about the shape of the returned solution should supply their own.
type Options struct {
	CostFunction         func(choices []*UnitVersion) float64
	EstimateCostFunction func(state SearchState) float64
	CombineCostFunction  func(cost, estimate float64) float64

	// StopAfterFirstPropagation makes Resolve return as soon as the initial
	// propagation pass completes, without entering the search loop at all.
	// It returns the choices propagation made, even when dependencies are
	// still left unresolved; it fails only if propagation itself fails.
	StopAfterFirstPropagation bool
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.CostFunction == nil {
		out.CostFunction = func([]*UnitVersion) float64 { return 0 }
	}
	if out.EstimateCostFunction == nil {
		out.EstimateCostFunction = func(SearchState) float64 { return 0 }
	}
	if out.CombineCostFunction == nil {
		out.CombineCostFunction = func(cost, estimate float64) float64 { return cost + estimate }
	}
	return &out
}

// Resolve searches for one assignment of a UnitVersion to every package
// reachable from dependencies, honoring constraints, using registered
// UnitVersions as candidates. initialChoices seeds the search with
// UnitVersions already fixed before search begins — e.g. packages pinned by
// a prior lock. They are placed in the initial state's choice list, and their
// names are dropped from the dependencies still to be chosen; their own
// dependencies and constraints are not propagated. Resolve returns the chosen UnitVersions in the
// order they were fixed, or an error describing why no assignment exists.
func (r *Resolver) Resolve(dependencies []string, constraints []*Constraint, initialChoices []*UnitVersion, opts *Options) ([]*UnitVersion, error) {
	opts = opts.withDefaults()

	root := NewUnitVersion("target", Version{}, Version{})
	root.dependencies = NewDependenciesList(dependencies...)
	root.constraints = NewConstraintsList(constraints...)

	seedChoices := make([]*UnitVersion, len(initialChoices))
	copy(seedChoices, initialChoices)

	start, err := r.propagateExactTransDeps(root, NewDependenciesList(), NewConstraintsList(), seedChoices)
	if err != nil {
		return nil, err
	}
	start.choices = removeChoice(start.choices, root.name)

	r.l.WithFields(logrus.Fields{
		"dependencies": start.dependencies.Len(),
		"constraints":  start.constraints.Len(),
		"choices":      len(start.choices),
	}).Debug("resolve: initial propagation complete")

	if opts.StopAfterFirstPropagation {
		return start.choices, nil
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	r.pushState(pq, start, opts)

	var lastErr error
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)

		if math.IsInf(item.estimate, 1) {
			r.l.Debug("resolve: best remaining state has infinite estimated cost, aborting")
			break
		}
		if item.state.IsTerminal() {
			r.l.WithField("choices", len(item.state.choices)).Info("resolve: solution found")
			return item.state.choices, nil
		}

		neighbors, err := r.stateNeighbors(item.state, opts)
		if err != nil {
			var regErr *RegistryError
			if errors.As(err, &regErr) {
				return nil, err
			}
			r.l.WithError(err).Debug("resolve: dead end, backtracking")
			lastErr = err
			continue
		}
		for _, ns := range neighbors {
			r.pushState(pq, ns, opts)
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errCouldNotResolve
}

// stateNeighbors expands state by choosing a UnitVersion for one still-open
// dependency and propagating the consequences of each candidate choice.
func (r *Resolver) stateNeighbors(state SearchState, opts *Options) ([]SearchState, error) {
	name, ok := state.dependencies.Peek()
	if !ok {
		return nil, nil
	}
	remaining := state.dependencies.Remove(name)
	candidates := r.unitVersions[name]

	var neighbors []SearchState
	var lastInvalid *UnitVersion
	sawCandidate := false

	for _, uv := range candidates {
		if state.constraints.Violated(uv) {
			continue
		}
		sawCandidate = true

		seedChoices := pushChoice(state.choices, uv)
		next, err := r.propagateExactTransDeps(uv, remaining, state.constraints, seedChoices)
		if err != nil {
			return nil, err
		}

		if stateHasViolation(next) {
			lastInvalid = uv
			continue
		}
		neighbors = append(neighbors, next)
	}

	if !sawCandidate {
		return nil, &noCandidateError{name: name}
	}
	if len(neighbors) == 0 {
		return nil, &allCandidatesInvalidError{name: name, last: lastInvalid}
	}
	return neighbors, nil
}

func stateHasViolation(s SearchState) bool {
	for _, c := range s.choices {
		if s.constraints.Violated(c) {
			return true
		}
	}
	return false
}

// removeChoice drops the choice for name, if any. Used once, to strip the
// synthetic root out of the initial state's choice list.
func removeChoice(choices []*UnitVersion, name string) []*UnitVersion {
	next := make([]*UnitVersion, 0, len(choices))
	for _, c := range choices {
		if c.name != name {
			next = append(next, c)
		}
	}
	return next
}

// pushState computes state's priority under opts and adds it to pq.
func (r *Resolver) pushState(pq *priorityQueue, s SearchState, opts *Options) {
	cost := opts.CostFunction(s.choices)
	estimate := opts.EstimateCostFunction(s)
	priority := opts.CombineCostFunction(cost, estimate)
	heap.Push(pq, &pqItem{state: s, estimate: estimate, priority: priority, numChoices: len(s.choices)})
}
