// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/fitvcs/fit/pkg/fit"
)

// Stash dispatches to the LIFO push/pop pair. Push is the default="1"
// child, so "fit stash" with no further argument runs it without the
// user ever typing "push".
type Stash struct {
	Push StashPush `cmd:"push" default:"1" hidden:"" help:"Stash the current working state"`
	Pop  StashPop  `cmd:"pop" help:"Apply and remove the most recent stash"`
}

type StashPush struct {
}

func (c *StashPush) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	hash, err := r.Stash()
	if err != nil {
		diev("stash: %v", err)
		return err
	}
	g.DbgPrint("saved working directory state: %s", hash)
	return nil
}

type StashPop struct {
}

func (c *StashPop) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	hash, err := r.StashPop()
	if err != nil {
		if errors.Is(err, fit.ErrStashEmpty) {
			die("cannot pop, stash something first")
			return err
		}
		diev("stash pop: %v", err)
		return err
	}
	g.DbgPrint("restored stash %s", hash)
	return nil
}
