// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/fitvcs/fit/pkg/fit"
)

type Remove struct {
	PathSpec []string `arg:"" name:"pathspec" help:"Files to remove from the index and the working tree"`
}

func (c *Remove) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if len(c.PathSpec) == 0 {
		die("nothing specified, nothing removed")
		return ErrArgRequired
	}
	for _, p := range c.PathSpec {
		if err := r.Remove(p); err != nil {
			diev("rm %s: %v", p, err)
			return err
		}
		g.DbgPrint("rm %s", p)
	}
	return nil
}
