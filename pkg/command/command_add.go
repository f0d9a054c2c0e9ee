// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/fitvcs/fit/pkg/fit"
)

// Add file contents to the index
type Add struct {
	PathSpec []string `arg:"" name:"pathspec" help:"Files or directories to stage"`
}

func (c *Add) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if len(c.PathSpec) == 0 {
		die("nothing specified, nothing added")
		return ErrArgRequired
	}
	for _, p := range c.PathSpec {
		if err := r.Add(p); err != nil {
			diev("add %s: %v", p, err)
			return err
		}
		g.DbgPrint("add %s", p)
	}
	return nil
}
