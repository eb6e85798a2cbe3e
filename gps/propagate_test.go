package gps

import "testing"

func TestExactTransitiveConstraintsChain(t *testing.T) {
	r := newTestResolver(t)

	r.mustRegister(t, uvFixture{name: "c", version: "3.0.0"})
	r.mustRegister(t, uvFixture{
		name: "b", version: "2.0.0",
		deps:        []string{"c"},
		constraints: []string{"c@=3.0.0"},
	})
	a := r.mustRegister(t, uvFixture{
		name: "a", version: "1.0.0",
		deps:        []string{"b"},
		constraints: []string{"b@=2.0.0"},
	})

	ecs, err := r.exactTransitiveConstraints(a)
	if err != nil {
		t.Fatal(err)
	}
	if ecs.Len() != 2 {
		t.Fatalf("exactTransitiveConstraints returned %d constraints, want 2", ecs.Len())
	}

	uvs, err := r.exactTransitiveDependencyVersions(a)
	if err != nil {
		t.Fatal(err)
	}
	got := choicesByName(uvs)
	if got["b"] != "2.0.0" || got["c"] != "3.0.0" {
		t.Errorf("exactTransitiveDependencyVersions = %v, want b=2.0.0, c=3.0.0", got)
	}
}

func TestExactTransitiveConstraintsMissingRegistration(t *testing.T) {
	r := newTestResolver(t)
	r.mustRegister(t, uvFixture{name: "b", version: "1.0.0"}) // note: not 2.0.0
	a := r.mustRegister(t, uvFixture{
		name: "a", version: "1.0.0",
		deps:        []string{"b"},
		constraints: []string{"b@=2.0.0"},
	})

	_, err := r.exactTransitiveConstraints(a)
	if err == nil {
		t.Fatal("expected an error when the exact constraint's version was never registered")
	}
	if _, ok := err.(*RegistryError); !ok {
		t.Errorf("error type = %T, want *RegistryError", err)
	}
}

func TestInexactTransitiveDependencies(t *testing.T) {
	r := newTestResolver(t)
	r.mustRegister(t, uvFixture{name: "b", version: "1.0.0", deps: []string{"c", "d"}})
	a := r.mustRegister(t, uvFixture{
		name: "a", version: "1.0.0",
		deps:        []string{"b", "e"},
		constraints: []string{"b@=1.0.0"},
	})

	deps, err := r.inexactTransitiveDependencies(a)
	if err != nil {
		t.Fatal(err)
	}

	if deps.Contains("b") {
		t.Error("inexactTransitiveDependencies should exclude a name that is already exactly pinned")
	}
	for _, want := range []string{"c", "d", "e"} {
		if !deps.Contains(want) {
			t.Errorf("inexactTransitiveDependencies missing %q", want)
		}
	}
	if deps.Len() != 3 {
		t.Errorf("Len() = %d, want 3", deps.Len())
	}
}

func TestPropagateExactTransDepsSeedOnly(t *testing.T) {
	r := newTestResolver(t)
	a := r.mustRegister(t, uvFixture{name: "a", version: "1.0.0", deps: []string{"x"}})

	state, err := r.propagateExactTransDeps(a, NewDependenciesList(), NewConstraintsList(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(state.choices) != 1 || state.choices[0] != a {
		t.Errorf("choices = %v, want [a]", state.choices)
	}
	if !state.dependencies.Contains("x") {
		t.Error("propagateExactTransDeps dropped a's plain dependency")
	}
}
