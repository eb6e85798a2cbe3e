// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/depsolve/gps/gps"
)

var resolveCmd = &command{
	fn:   runResolve,
	name: "resolve",
	short: "[flags] <manifest.toml>\n\tResolve the dependencies declared in a manifest.",
	long: `

Flags:
	-first-propagation	stop after the initial propagation pass instead of searching
`,
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	firstProp := fs.Bool("first-propagation", false, "stop after the initial propagation pass instead of searching")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("resolve requires exactly one manifest path")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "opening manifest")
	}
	defer f.Close()

	m, err := readManifest(f)
	if err != nil {
		return err
	}

	l := newLogger()
	r, err := buildResolver(l, m)
	if err != nil {
		return err
	}
	deps, constraints, err := buildRequirements(r, m)
	if err != nil {
		return err
	}

	choices, err := r.Resolve(deps, constraints, nil, &gps.Options{StopAfterFirstPropagation: *firstProp})
	if err != nil {
		return errors.Wrap(err, "resolve failed")
	}

	for _, c := range choices {
		fmt.Printf("%s@%s\n", c.Name(), c.Version())
	}
	return nil
}
