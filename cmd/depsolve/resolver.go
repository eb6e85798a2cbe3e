// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"

	"github.com/Sirupsen/logrus"
	"github.com/depsolve/gps/gps"
)

// buildResolver registers every package a manifest declares into a fresh
// Resolver.
func buildResolver(l *logrus.Logger, m *manifest) (*gps.Resolver, error) {
	r := gps.NewResolver(l)

	for _, p := range m.Packages {
		version, err := gps.NewVersion(p.Version)
		if err != nil {
			return nil, errors.Wrapf(err, "package %q", p.Name)
		}

		ecvBody := p.ECV
		if ecvBody == "" {
			ecvBody = p.Version
		}
		ecv, err := gps.NewVersion(ecvBody)
		if err != nil {
			return nil, errors.Wrapf(err, "package %q ecv", p.Name)
		}

		uv := gps.NewUnitVersion(p.Name, version, ecv)
		for _, d := range p.Dependencies {
			if err := uv.AddDependency(d); err != nil {
				return nil, errors.Wrapf(err, "package %q", p.Name)
			}
		}
		for _, c := range p.Constraints {
			constraint, err := r.GetConstraint(c.Name, c.Body)
			if err != nil {
				return nil, errors.Wrapf(err, "package %q constraint on %q", p.Name, c.Name)
			}
			if err := uv.AddConstraint(constraint); err != nil {
				return nil, errors.Wrapf(err, "package %q", p.Name)
			}
		}

		r.AddUnitVersion(uv)
	}

	return r, nil
}

// buildRequirements turns a manifest's [[requirements]] tables into the
// (dependencies, constraints) pair Resolver.Resolve expects.
func buildRequirements(r *gps.Resolver, m *manifest) ([]string, []*gps.Constraint, error) {
	var deps []string
	var constraints []*gps.Constraint

	for _, req := range m.Requirements {
		deps = append(deps, req.Name)
		if req.Constraint == "" {
			continue
		}
		c, err := r.GetConstraint(req.Name, req.Constraint)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "requirement %q", req.Name)
		}
		constraints = append(constraints, c)
	}

	return deps, constraints, nil
}
