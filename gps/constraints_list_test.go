package gps

import "testing"

func TestGetConstraintIsInterned(t *testing.T) {
	r := newTestResolver(t)

	c1, err := r.GetConstraint("a", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	c2, err := r.GetConstraint("a", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c2 {
		t.Error("GetConstraint returned distinct pointers for identical (name, body)")
	}

	c3, err := r.GetConstraintFromSpec("a@1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c3 {
		t.Error("GetConstraintFromSpec did not resolve to the same interned Constraint")
	}
}

func TestConstraintsListPushDedupsByIdentity(t *testing.T) {
	r := newTestResolver(t)
	c, err := r.GetConstraint("a", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}

	l := NewConstraintsList(c)
	l2 := l.Push(c)
	if l2.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after re-pushing the same *Constraint", l2.Len())
	}
}

func TestConstraintsListViolated(t *testing.T) {
	r := newTestResolver(t)
	c, err := r.GetConstraint("a", "=1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	l := NewConstraintsList(c)

	match := NewUnitVersion("a", mustVersion(t, "1.0.0"), mustVersion(t, "1.0.0"))
	mismatch := NewUnitVersion("a", mustVersion(t, "2.0.0"), mustVersion(t, "1.0.0"))
	unrelated := NewUnitVersion("b", mustVersion(t, "1.0.0"), mustVersion(t, "1.0.0"))

	if l.Violated(match) {
		t.Error("Violated(match) = true, want false")
	}
	if !l.Violated(mismatch) {
		t.Error("Violated(mismatch) = false, want true")
	}
	if l.Violated(unrelated) {
		t.Error("Violated(unrelated package) = true, want false")
	}
}

func TestExactIntersectionByNames(t *testing.T) {
	r := newTestResolver(t)
	exactA, err := r.GetConstraint("a", "=1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	atLeastB, err := r.GetConstraint("b", "1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	exactC, err := r.GetConstraint("c", "=1.0.0")
	if err != nil {
		t.Fatal(err)
	}

	l := NewConstraintsList(exactA, atLeastB, exactC)
	names := NewDependenciesList("a", "b")

	got := l.ExactIntersectionByNames(names)
	if got.Len() != 1 || !got.Contains(exactA) {
		t.Errorf("ExactIntersectionByNames = %d members, want exactly {exactA}", got.Len())
	}
}
