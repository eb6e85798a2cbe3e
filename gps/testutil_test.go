package gps

import (
	"testing"

	"github.com/Sirupsen/logrus"
)

func mustVersion(t *testing.T, s string) Version {
	t.Helper()
	v, err := NewVersion(s)
	if err != nil {
		t.Fatalf("NewVersion(%q): %v", s, err)
	}
	return v
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	l := logrus.New()
	if testing.Verbose() {
		l.Level = logrus.DebugLevel
	} else {
		l.Level = logrus.WarnLevel
	}
	return NewResolver(l)
}

// uvFixture describes one UnitVersion to register, in a compact form
// convenient for table-driven tests.
type uvFixture struct {
	name, version string
	ecv           string // defaults to version when empty
	deps          []string
	constraints   []string // "name@body" specs, evaluated against the fixture's Resolver
}

func (r *Resolver) mustRegister(t *testing.T, f uvFixture) *UnitVersion {
	t.Helper()

	version := mustVersion(t, f.version)
	ecv := version
	if f.ecv != "" {
		ecv = mustVersion(t, f.ecv)
	}

	uv := NewUnitVersion(f.name, version, ecv)
	for _, d := range f.deps {
		if err := uv.AddDependency(d); err != nil {
			t.Fatalf("%s@%s: AddDependency(%q): %v", f.name, f.version, d, err)
		}
	}
	for _, cs := range f.constraints {
		c, err := r.GetConstraintFromSpec(cs)
		if err != nil {
			t.Fatalf("%s@%s: GetConstraintFromSpec(%q): %v", f.name, f.version, cs, err)
		}
		if err := uv.AddConstraint(c); err != nil {
			t.Fatalf("%s@%s: AddConstraint(%q): %v", f.name, f.version, cs, err)
		}
	}

	r.AddUnitVersion(uv)
	return uv
}

func choicesByName(choices []*UnitVersion) map[string]string {
	out := make(map[string]string, len(choices))
	for _, c := range choices {
		out[c.name] = c.version.String()
	}
	return out
}
