// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/fitvcs/fit/pkg/fit"
)

// Join two development histories together
type Merge struct {
	Revision string `arg:"" name:"branch" help:"Branch to merge into the current branch"`
}

func (c *Merge) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	result, err := r.Merge(c.Revision)
	if err != nil {
		diev("merge %s: %v", c.Revision, err)
		if errors.Is(err, fit.ErrMergeNotFastForward) {
			return &fit.ErrExitCode{ExitCode: 2, Message: err.Error()}
		}
		if errors.Is(err, fit.ErrMergeSelf) || errors.Is(err, fit.ErrMergePolicy) {
			return &fit.ErrExitCode{ExitCode: 1, Message: err.Error()}
		}
		return err
	}
	switch result {
	case fit.MergeAlreadyUpToDate:
		g.DbgPrint("already up to date")
	case fit.MergeFastForward:
		g.DbgPrint("fast-forwarded to %s", c.Revision)
	}
	return nil
}
