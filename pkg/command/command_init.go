// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/fitvcs/fit/pkg/fit"
)

type Init struct {
	Branch    string `name:"branch" short:"b" help:"Override the name of the initial branch" default:"master" placeholder:"<branch>"`
	Directory string `arg:"" name:"directory" optional:"" help:"Repository directory" default:"."`
}

func (c *Init) Run(g *Globals) error {
	r, err := fit.Init(c.Directory, c.Branch)
	if err != nil {
		diev("%v", err)
		return err
	}
	g.DbgPrint("initialized fit repository in %s", r.Worktree)
	return nil
}
