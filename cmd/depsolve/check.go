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

var checkCmd = &command{
	fn:    runCheck,
	name:  "check",
	short: "<manifest.toml>\n\tPropagation-only dry run: check a manifest without searching.",
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("check requires exactly one manifest path")
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
	if _, err := r.Resolve(deps, constraints, nil, &gps.Options{StopAfterFirstPropagation: true}); err != nil {
		return errors.Wrap(err, "propagation failed")
	}

	fmt.Println("ok")
	return nil
}
