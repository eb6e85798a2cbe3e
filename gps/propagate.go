package gps

// pushChoice returns a new choices slice with uv added, unless a choice for
// the same package name is already present. Search-state invariants forbid
// two choices sharing a name, so this is set-like (idempotent) rather than
// a raw append — which also makes it safe for propagateExactTransDeps to
// both receive a choice set that already contains its seed UnitVersion and
// add that same seed again as it dequeues it.
func pushChoice(choices []*UnitVersion, uv *UnitVersion) []*UnitVersion {
	for _, c := range choices {
		if c.name == uv.name {
			return choices
		}
	}
	next := make([]*UnitVersion, len(choices), len(choices)+1)
	copy(next, choices)
	return append(next, uv)
}

// exactTransitiveConstraints computes the closure, over u and everything u
// reaches by following exact dependency-constraints transitively, of the
// exact constraints imposed on packages that are also named as
// dependencies. The closure is computed with an explicit worklist rather
// than recursion, since the chain of exact pins can run deep.
func (r *Resolver) exactTransitiveConstraints(u *UnitVersion) (ConstraintsList, error) {
	var result ConstraintsList
	visited := map[*UnitVersion]bool{u: true}
	worklist := []*UnitVersion{u}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		var err error
		cur.constraints.ExactIntersectionByNames(cur.dependencies).Each(func(c *Constraint) {
			if err != nil {
				return
			}
			result = result.Push(c)
			satisfying := c.SatisfyingUnitVersion(r)
			if satisfying == nil {
				err = &RegistryError{Constraint: c}
				return
			}
			if !visited[satisfying] {
				visited[satisfying] = true
				worklist = append(worklist, satisfying)
			}
		})
		if err != nil {
			return ConstraintsList{}, err
		}
	}
	return result, nil
}

// exactTransitiveDependencyVersions maps each constraint in
// exactTransitiveConstraints(u) to the UnitVersion it forces.
func (r *Resolver) exactTransitiveDependencyVersions(u *UnitVersion) ([]*UnitVersion, error) {
	ecs, err := r.exactTransitiveConstraints(u)
	if err != nil {
		return nil, err
	}
	uvs := make([]*UnitVersion, 0, ecs.Len())
	ecs.Each(func(c *Constraint) {
		uvs = append(uvs, c.SatisfyingUnitVersion(r))
	})
	return uvs, nil
}

// inexactTransitiveDependencies computes the dependency names u still needs
// generally resolved: u's own dependencies, plus the dependencies of
// everything forced into existence by u's exact-constraint closure, minus
// any name that closure already pinned to a specific version.
func (r *Resolver) inexactTransitiveDependencies(u *UnitVersion) (DependenciesList, error) {
	ecs, err := r.exactTransitiveConstraints(u)
	if err != nil {
		return DependenciesList{}, err
	}

	deps := u.dependencies
	ecs.Each(func(c *Constraint) {
		satisfying := c.SatisfyingUnitVersion(r)
		deps = deps.Union(satisfying.dependencies)
	})
	ecs.Each(func(c *Constraint) {
		deps = deps.Remove(c.name)
	})
	return deps, nil
}

// propagateExactTransDeps runs the exact-constraint propagation closure
// seeded by uv, folding its effects into dependencies/constraints/choices.
// The tuple on entry is assumed already propagated; only uv (and its
// consequences) may expose new forced choices.
func (r *Resolver) propagateExactTransDeps(
	uv *UnitVersion,
	dependencies DependenciesList,
	constraints ConstraintsList,
	choices []*UnitVersion,
) (SearchState, error) {
	queue := []*UnitVersion{uv}
	enqueued := map[string]bool{uv.name: true}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		choices = pushChoice(choices, u)

		exactUVs, err := r.exactTransitiveDependencyVersions(u)
		if err != nil {
			return SearchState{}, err
		}
		inexactDeps, err := r.inexactTransitiveDependencies(u)
		if err != nil {
			return SearchState{}, err
		}

		transitiveConstraints := u.constraints
		for _, e := range exactUVs {
			transitiveConstraints = transitiveConstraints.Union(e.constraints)
		}

		dependencies = dependencies.Union(inexactDeps)
		constraints = constraints.Union(transitiveConstraints)
		for _, e := range exactUVs {
			choices = pushChoice(choices, e)
		}

		for _, c := range choices {
			dependencies = dependencies.Remove(c.name)
		}

		a := constraints.ExactIntersectionByNames(u.dependencies)
		b := u.constraints.ExactIntersectionByNames(u.dependencies)
		newExact := a.Union(b)

		var ferr error
		newExact.Each(func(c *Constraint) {
			if ferr != nil {
				return
			}
			satisfying := c.SatisfyingUnitVersion(r)
			if satisfying == nil {
				ferr = &RegistryError{Constraint: c}
				return
			}
			if !enqueued[satisfying.name] {
				enqueued[satisfying.name] = true
				queue = append(queue, satisfying)
			}
		})
		if ferr != nil {
			return SearchState{}, ferr
		}
	}

	return SearchState{dependencies: dependencies, constraints: constraints, choices: choices}, nil
}
