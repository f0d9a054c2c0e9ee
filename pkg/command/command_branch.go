// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	"github.com/fitvcs/fit/pkg/fit"
)

// Branch dispatches "branch list|create <n>|delete <n>|checkout
// <n>|checkout-new <n>". List is the default="1" child, so a bare
// "fit branch" lists branches without the user ever typing "list";
// "branch -v" is handled by BranchList's own flag.
type Branch struct {
	List        BranchList        `cmd:"list" default:"1" help:"List branches"`
	Create      BranchCreate      `cmd:"create" help:"Create a new branch"`
	Delete      BranchDelete      `cmd:"delete" help:"Delete a branch"`
	Checkout    BranchCheckout    `cmd:"checkout" help:"Switch to an existing branch"`
	CheckoutNew BranchCheckoutNew `cmd:"checkout-new" help:"Create a branch and switch to it"`
}

type BranchList struct {
	Verbose bool `name:"verbose" short:"v" help:"Show the tip commit and subject of each branch"`
}

func (c *BranchList) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	infos, err := r.ListBranches()
	if err != nil {
		diev("%v", err)
		return err
	}
	for _, info := range infos {
		marker := " "
		if info.Current {
			marker = "*"
		}
		if c.Verbose {
			fmt.Fprintf(os.Stdout, "%s %-16s %s %s\n", marker, info.Name, info.Tip, info.Subject)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, info.Name)
	}
	return nil
}

type BranchCreate struct {
	Name string `arg:"" name:"name" help:"Name of the new branch"`
}

func (c *BranchCreate) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if err := r.CreateBranch(c.Name); err != nil {
		diev("branch create %s: %v", c.Name, err)
		return err
	}
	g.DbgPrint("created branch %s", c.Name)
	return nil
}

type BranchDelete struct {
	Name string `arg:"" name:"name" help:"Name of the branch to delete"`
}

func (c *BranchDelete) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if err := r.DeleteBranch(c.Name); err != nil {
		diev("branch delete %s: %v", c.Name, err)
		return err
	}
	return nil
}

type BranchCheckout struct {
	Name string `arg:"" name:"name" help:"Name of the branch to check out"`
}

func (c *BranchCheckout) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if err := r.Checkout(c.Name); err != nil {
		diev("branch checkout %s: %v", c.Name, err)
		return err
	}
	g.DbgPrint("switched to branch %s", c.Name)
	return nil
}

type BranchCheckoutNew struct {
	Name string `arg:"" name:"name" help:"Name of the branch to create and check out"`
}

func (c *BranchCheckoutNew) Run(g *Globals) error {
	r, err := fit.Open(g.CWD)
	if err != nil {
		diev("%v", err)
		return err
	}
	r.Verbose = g.Verbose
	if err := r.CheckoutNew(c.Name); err != nil {
		diev("branch checkout-new %s: %v", c.Name, err)
		return err
	}
	g.DbgPrint("created and switched to branch %s", c.Name)
	return nil
}
