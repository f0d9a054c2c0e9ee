// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/fitvcs/fit/pkg/fit"
)

// Show the contents of a commit: its header plus its tree's rows.
type Show struct {
	Object string `arg:"" optional:"" name:"object" help:"Commit to show" default:"HEAD"`
}

func (c *Show) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	object := c.Object
	if object == "HEAD" {
		tipStr, err := r.Refs.CurrentCommit()
		if err != nil {
			diev("%v", err)
			return err
		}
		object = tipStr
	}
	result, err := r.Show(object)
	if err != nil {
		diev("show %s: %v", c.Object, err)
		return err
	}
	fmt.Fprintf(os.Stdout, "commit %s\n", result.Hash)
	if !result.Commit.Parent.IsZero() {
		fmt.Fprintf(os.Stdout, "parent %s\n", result.Commit.Parent)
	}
	fmt.Fprintf(os.Stdout, "\n    %s\n\n", result.Commit.Message)
	for _, row := range result.Tree.Rows {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", row.Hash, row.Path)
	}
	return nil
}
