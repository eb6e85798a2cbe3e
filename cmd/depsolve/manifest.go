// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// rawConstraint is one [[packages.constraints]] table entry.
type rawConstraint struct {
	Name string
	Body string
}

// rawPackage is one [[packages]] table entry: a UnitVersion plus the
// constraints it imposes on its own dependencies.
type rawPackage struct {
	Name         string
	Version      string
	ECV          string
	Dependencies []string
	Constraints  []rawConstraint
}

// rawRequirement is one [[requirements]] table entry: a top-level
// dependency, optionally with its own version constraint.
type rawRequirement struct {
	Name       string
	Constraint string
}

type manifest struct {
	Packages     []rawPackage
	Requirements []rawRequirement
}

// tomlMapper reads typed fields off a *toml.Tree, accumulating the first
// error encountered so callers can check it once at the end of a table
// instead of after every field.
type tomlMapper struct {
	tree *toml.Tree
	err  error
}

func (m *tomlMapper) getString(key, dflt string) string {
	if m.err != nil {
		return dflt
	}
	v := m.tree.Get(key)
	if v == nil {
		return dflt
	}
	s, ok := v.(string)
	if !ok {
		m.err = errors.Errorf("%q must be a string, got %T", key, v)
		return dflt
	}
	return s
}

func (m *tomlMapper) getStringSlice(key string) []string {
	if m.err != nil {
		return nil
	}
	v := m.tree.Get(key)
	if v == nil {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		m.err = errors.Errorf("%q must be an array, got %T", key, v)
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			m.err = errors.Errorf("%q entries must be strings, got %T", key, item)
			return nil
		}
		out = append(out, s)
	}
	return out
}

// readManifest parses a TOML manifest of the form:
//
//	[[packages]]
//	  name = "a"
//	  version = "1.0.0"
//	  dependencies = ["b"]
//
//	  [[packages.constraints]]
//	    name = "b"
//	    body = "=2.0.0"
//
//	[[requirements]]
//	  name = "a"
//	  constraint = "1.0.0"
func readManifest(r io.Reader) (*manifest, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	m := &manifest{}

	if packages, ok := tree.Get("packages").([]*toml.Tree); ok {
		for _, pt := range packages {
			pm := &tomlMapper{tree: pt}
			pkg := rawPackage{
				Name:         pm.getString("name", ""),
				Version:      pm.getString("version", ""),
				ECV:          pm.getString("ecv", ""),
				Dependencies: pm.getStringSlice("dependencies"),
			}
			if pm.err != nil {
				return nil, errors.Wrapf(pm.err, "package %q", pkg.Name)
			}

			if cts, ok := pt.Get("constraints").([]*toml.Tree); ok {
				for _, ct := range cts {
					cm := &tomlMapper{tree: ct}
					c := rawConstraint{
						Name: cm.getString("name", ""),
						Body: cm.getString("body", ""),
					}
					if cm.err != nil {
						return nil, errors.Wrapf(cm.err, "package %q constraint", pkg.Name)
					}
					pkg.Constraints = append(pkg.Constraints, c)
				}
			}
			m.Packages = append(m.Packages, pkg)
		}
	}

	if reqs, ok := tree.Get("requirements").([]*toml.Tree); ok {
		for _, rt := range reqs {
			rm := &tomlMapper{tree: rt}
			req := rawRequirement{
				Name:       rm.getString("name", ""),
				Constraint: rm.getString("constraint", ""),
			}
			if rm.err != nil {
				return nil, errors.Wrap(rm.err, "requirement")
			}
			m.Requirements = append(m.Requirements, req)
		}
	}

	if len(m.Packages) == 0 {
		return nil, errors.New("manifest declares no packages")
	}
	return m, nil
}
