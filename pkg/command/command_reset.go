// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/fitvcs/fit/pkg/fit"
)

// Reset current HEAD to the specified state
type Reset struct {
	Revision string `arg:"" name:"commit" help:"Resets the current branch head and working tree to <commit>"`
}

func (c *Reset) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if err := r.Reset(c.Revision); err != nil {
		diev("reset to %s: %v", c.Revision, err)
		return err
	}
	return nil
}
