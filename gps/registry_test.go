package gps

import "testing"

func TestAddUnitVersionIdempotent(t *testing.T) {
	r := newTestResolver(t)
	uv := NewUnitVersion("a", mustVersion(t, "1.0.0"), mustVersion(t, "1.0.0"))

	r.AddUnitVersion(uv)
	r.AddUnitVersion(uv)

	if got := len(r.unitVersions["a"]); got != 1 {
		t.Errorf("registered %d times, want 1", got)
	}
}

func TestLatestVersionIsMonotone(t *testing.T) {
	r := newTestResolver(t)

	r.mustRegister(t, uvFixture{name: "a", version: "1.0.0"})
	if v, ok := r.LatestVersion("a"); !ok || v.String() != "1.0.0" {
		t.Fatalf("LatestVersion = (%v, %v), want (1.0.0, true)", v, ok)
	}

	r.mustRegister(t, uvFixture{name: "a", version: "0.5.0"})
	if v, _ := r.LatestVersion("a"); v.String() != "1.0.0" {
		t.Errorf("LatestVersion regressed to %v after registering an older release", v)
	}

	r.mustRegister(t, uvFixture{name: "a", version: "2.0.0"})
	if v, _ := r.LatestVersion("a"); v.String() != "2.0.0" {
		t.Errorf("LatestVersion = %v, want 2.0.0", v)
	}
}

func TestLatestVersionUnknownPackage(t *testing.T) {
	r := newTestResolver(t)
	if _, ok := r.LatestVersion("nope"); ok {
		t.Error("LatestVersion(\"nope\") reported present, want absent")
	}
}
