// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/fitvcs/fit/modules/linediff"
	"github.com/fitvcs/fit/pkg/fit"
)

type Diff struct {
	NameOnly bool     `name:"name-only" help:"Show only names of changed files"`
	Revision []string `arg:"" optional:"" name:"revision" help:"Zero or two commits; two compares them, zero compares the index against HEAD"`
}

func (c *Diff) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose

	var diffs []fit.FileDiff
	switch len(c.Revision) {
	case 0:
		diffs, err = r.DiffStagedVsHEAD()
	case 2:
		diffs, err = r.DiffCommits(c.Revision[0], c.Revision[1])
	default:
		die("diff expects either zero or two commit arguments")
		return ErrArgRequired
	}
	if err != nil {
		diev("diff: %v", err)
		return err
	}
	for _, d := range diffs {
		if c.NameOnly {
			fmt.Fprintln(os.Stdout, d.Path)
			continue
		}
		fmt.Fprintf(os.Stdout, "diff --fit a/%s b/%s\n", d.Path, d.Path)
		for _, l := range d.Lines {
			fmt.Fprintln(os.Stdout, plainLine(l))
		}
	}
	return nil
}

// plainLine renders a diff line as " line"/"-line"/"+line", plain text
// with no coloring.
func plainLine(l linediff.Line) string {
	return string(l.Tag.Sign()) + l.Text
}
