package gps

import "github.com/Sirupsen/logrus"

// Resolver is the registry of all known UnitVersions and interned
// Constraints, plus the search driver described in solver.go. A Resolver is
// populated once via AddUnitVersion/GetConstraint and then queried,
// possibly many times, via Resolve; the registry must not be mutated while
// a Resolve call is in flight.
type Resolver struct {
	l *logrus.Logger

	unitVersions      map[string][]*UnitVersion // name -> registration order
	unitVersionsByKey unitVersionTrie           // "name@version" -> *UnitVersion
	latestVersion     map[string]Version        // name -> max version added
	constraintsByKey  constraintTrie            // "name@body" -> *Constraint
}

// NewResolver builds an empty Resolver. If l is nil, a default logrus
// logger is used.
func NewResolver(l *logrus.Logger) *Resolver {
	if l == nil {
		l = logrus.New()
	}
	return &Resolver{
		l:                 l,
		unitVersions:      make(map[string][]*UnitVersion),
		unitVersionsByKey: newUnitVersionTrie(),
		latestVersion:     make(map[string]Version),
		constraintsByKey:  newConstraintTrie(),
	}
}

// AddUnitVersion registers uv. It is idempotent on uv.String(): a second
// registration of an equivalent UnitVersion is a no-op, and latestVersion is
// only ever advanced, never retreated.
func (r *Resolver) AddUnitVersion(uv *UnitVersion) {
	key := uv.String()
	if _, had := r.unitVersionsByKey.Get(key); had {
		r.l.WithField("unit", key).Debug("addUnitVersion: already registered, skipping")
		return
	}

	r.unitVersionsByKey.Insert(key, uv)
	r.unitVersions[uv.name] = append(r.unitVersions[uv.name], uv)

	if cur, has := r.latestVersion[uv.name]; !has || uv.version.AtLeast(cur) {
		r.latestVersion[uv.name] = uv.version
	}

	r.l.WithFields(logrus.Fields{
		"unit":    key,
		"latest":  r.latestVersion[uv.name],
		"variant": len(r.unitVersions[uv.name]),
	}).Debug("addUnitVersion: registered")
}

// GetConstraint interns and returns the Constraint for (name, versionConstraint).
// Repeating the call with the same arguments always returns the identical
// *Constraint.
func (r *Resolver) GetConstraint(name, versionConstraint string) (*Constraint, error) {
	key := name + "@" + versionConstraint
	if c, had := r.constraintsByKey.Get(key); had {
		return c, nil
	}

	kind, version, err := parseConstraintBody(versionConstraint)
	if err != nil {
		return nil, err
	}

	c := &Constraint{name: name, kind: kind, version: version, body: versionConstraint}
	r.constraintsByKey.Insert(key, c)
	r.l.WithFields(logrus.Fields{"name": name, "constraint": versionConstraint, "kind": kind}).Debug("getConstraint: interned")
	return c, nil
}

// GetConstraintFromSpec interns a Constraint given the combined
// "name@=version" / "name@version" syntax.
func (r *Resolver) GetConstraintFromSpec(spec string) (*Constraint, error) {
	name, body, err := ParseConstraintString(spec)
	if err != nil {
		return nil, err
	}
	return r.GetConstraint(name, body)
}

// LatestVersion returns the highest version registered for name, and
// whether any version has been registered at all.
func (r *Resolver) LatestVersion(name string) (Version, bool) {
	v, has := r.latestVersion[name]
	return v, has
}
