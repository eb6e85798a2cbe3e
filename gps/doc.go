// Package gps resolves a set of package dependency requirements into a
// concrete assignment of one version per required package.
//
// A Resolver is populated with the universe of known UnitVersions and asked
// to Resolve a set of top-level dependency names and constraints against
// them. The search is A*-style best-first search over partial assignments,
// with exact-version constraints propagated to a fixed point before each
// branch point is considered.
//
// Version parsing and ordering are delegated to Masterminds/semver; this
// package never inspects a version string itself.
package gps
