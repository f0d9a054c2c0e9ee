// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"
	"sort"

	"github.com/fitvcs/fit/pkg/fit"
)

type Status struct {
	Short bool `name:"short" short:"s" help:"Give the output in the short-format"`
}

func (s *Status) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	status, err := r.Status()
	if err != nil {
		diev("status: %v", err)
		return err
	}
	if status.IsClean() {
		fmt.Fprintln(os.Stderr, "nothing to commit, working tree clean")
		return nil
	}
	if s.Short {
		s.renderShort(status)
		return nil
	}
	render := func(title, prefix string, paths []string) {
		if len(paths) == 0 {
			return
		}
		sort.Strings(paths)
		if title != "" {
			fmt.Fprintln(os.Stdout, title)
		}
		for _, p := range paths {
			fmt.Fprintln(os.Stdout, "\t"+prefix+p)
		}
		fmt.Fprintln(os.Stdout)
	}
	render("Changes to be committed:", "added:    ", status.Added)
	render("", "modified: ", status.Modified)
	render("", "deleted:  ", status.Deleted)
	var notStaged []string
	for p := range status.NotStaged {
		notStaged = append(notStaged, p)
	}
	render("Changes not staged for commit:", "", notStaged)
	render("Untracked files:", "", status.Untracked)
	return nil
}

func (s *Status) renderShort(status *fit.Status) {
	print := func(code string, paths []string) {
		for _, p := range paths {
			fmt.Fprintf(os.Stdout, "%s %s\n", code, p)
		}
	}
	print("A ", status.Added)
	print("M ", status.Modified)
	print("D ", status.Deleted)
	for p, st := range status.NotStaged {
		if st == fit.WorktreeDeleted {
			fmt.Fprintf(os.Stdout, " D %s\n", p)
		} else {
			fmt.Fprintf(os.Stdout, " M %s\n", p)
		}
	}
	print("??", status.Untracked)
}
