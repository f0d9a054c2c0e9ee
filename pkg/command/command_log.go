// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/fitvcs/fit/pkg/fit"
)

// Log lists commit history; -p/--patch additionally prints the patch
// each commit introduced against its parent.
type Log struct {
	Patch bool `name:"patch" short:"p" help:"Show the patch introduced by each commit"`
}

func (c *Log) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	entries, err := r.Log()
	if err != nil {
		diev("log: %v", err)
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "commit %s\n", e.Hash)
		if !e.Commit.Parent.IsZero() {
			fmt.Fprintf(os.Stdout, "parent %s\n", e.Commit.Parent)
		}
		// The commit object itself carries no author field; the user
		// identity is display-only, read from the repository's own
		// .fit/config rather than the object.
		if name, ok := r.GetConfig("user.name"); ok {
			if email, ok := r.GetConfig("user.email"); ok {
				fmt.Fprintf(os.Stdout, "Author: %s <%s>\n", name, email)
			} else {
				fmt.Fprintf(os.Stdout, "Author: %s\n", name)
			}
		}
		fmt.Fprintf(os.Stdout, "\n    %s\n\n", e.Commit.Message)
		if !c.Patch {
			continue
		}
		diffs, err := r.CommitPatch(e)
		if err != nil {
			diev("log -p: %v", err)
			return err
		}
		for _, d := range diffs {
			fmt.Fprintf(os.Stdout, "diff --fit a/%s b/%s\n", d.Path, d.Path)
			for _, l := range d.Lines {
				fmt.Fprintln(os.Stdout, plainLine(l))
			}
		}
	}
	return nil
}
