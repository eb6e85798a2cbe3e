package gps

import "testing"

func TestDependenciesListPersistence(t *testing.T) {
	base := NewDependenciesList("a", "b")
	extended := base.Push("c")

	if base.Contains("c") {
		t.Error("Push mutated the receiver")
	}
	if !extended.Contains("c") {
		t.Error("Push did not add the new name")
	}
	if base.Len() != 2 || extended.Len() != 3 {
		t.Errorf("Len() = %d/%d, want 2/3", base.Len(), extended.Len())
	}
}

func TestDependenciesListPushDedups(t *testing.T) {
	l := NewDependenciesList("a")
	l2 := l.Push("a")
	if l2.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after re-pushing an existing name", l2.Len())
	}
}

func TestDependenciesListPeekOrder(t *testing.T) {
	l := NewDependenciesList("a", "b", "c")
	name, ok := l.Peek()
	if !ok || name != "a" {
		t.Errorf("Peek() = (%q, %v), want (\"a\", true)", name, ok)
	}
}

func TestDependenciesListRemove(t *testing.T) {
	l := NewDependenciesList("a", "b", "c")
	l2 := l.Remove("b")

	if l.Contains("b") == false {
		t.Error("Remove mutated the receiver")
	}
	if l2.Contains("b") {
		t.Error("Remove did not drop the name")
	}
	if l2.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l2.Len())
	}
}

func TestDependenciesListUnion(t *testing.T) {
	a := NewDependenciesList("a", "b")
	b := NewDependenciesList("b", "c")

	u := a.Union(b)
	for _, want := range []string{"a", "b", "c"} {
		if !u.Contains(want) {
			t.Errorf("Union missing %q", want)
		}
	}
	if u.Len() != 3 {
		t.Errorf("Len() = %d, want 3", u.Len())
	}
}
