// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"errors"
	"fmt"

	"github.com/fitvcs/fit/modules/objfmt"
	"github.com/fitvcs/fit/modules/refs"
)

// BranchInfo is one row of ListBranches: a branch's name plus the tip
// hash and first message line `branch -v` shows alongside it.
type BranchInfo struct {
	Name    string
	Current bool
	Tip     objfmt.Hash
	Subject string
}

// CurrentBranch returns the name of the checked-out branch.
func (r *Repository) CurrentBranch() (string, error) {
	return r.Refs.CurrentBranch()
}

// ListBranches returns every branch with its tip and, for `-v`
// formatting, the first line of its tip commit's message.
func (r *Repository) ListBranches() ([]BranchInfo, error) {
	names, err := r.Refs.ListBranches()
	if err != nil {
		return nil, err
	}
	current, err := r.Refs.CurrentBranch()
	if err != nil {
		return nil, err
	}
	infos := make([]BranchInfo, 0, len(names))
	for _, name := range names {
		tipStr, err := r.Refs.ReadBranch(name)
		if err != nil {
			return nil, err
		}
		tip, err := objfmt.NewHash(tipStr)
		if err != nil {
			return nil, fmt.Errorf("fit: branch %s has a malformed tip: %w", name, err)
		}
		commit, err := r.readCommit(tip)
		if err != nil {
			return nil, err
		}
		infos = append(infos, BranchInfo{
			Name:    name,
			Current: name == current,
			Tip:     tip,
			Subject: firstLine(commit.Message),
		})
	}
	return infos, nil
}

// CreateBranch creates a new branch pointing at the current commit.
func (r *Repository) CreateBranch(name string) error {
	if err := r.Refs.CreateBranch(name); err != nil {
		if errors.Is(err, refs.ErrProtected) {
			return fmt.Errorf("%w: %v", ErrProtectedBranch, err)
		}
		if errors.Is(err, refs.ErrAlreadyExists) {
			return fmt.Errorf("%w: %v", ErrBranchExists, err)
		}
		return err
	}
	return nil
}

// DeleteBranch removes a branch; it refuses master and the current branch.
func (r *Repository) DeleteBranch(name string) error {
	if err := r.Refs.DeleteBranch(name); err != nil {
		if errors.Is(err, refs.ErrProtected) {
			return fmt.Errorf("%w: %v", ErrProtectedBranch, err)
		}
		if errors.Is(err, refs.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
		}
		return err
	}
	return nil
}

// Checkout switches to an existing branch: updates HEAD, then
// materializes its tip commit onto the working directory and Index.
func (r *Repository) Checkout(name string) error {
	if !r.Refs.BranchExists(name) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	if err := r.Refs.SetHEAD(name); err != nil {
		return err
	}
	tipStr, err := r.Refs.ReadBranch(name)
	if err != nil {
		return err
	}
	tip, err := objfmt.NewHash(tipStr)
	if err != nil {
		return fmt.Errorf("fit: branch %s has a malformed tip: %w", name, err)
	}
	return r.materialize(tip)
}

// CheckoutNew creates name from the current commit, then checks it out.
func (r *Repository) CheckoutNew(name string) error {
	if err := r.CreateBranch(name); err != nil {
		return err
	}
	return r.Checkout(name)
}

func firstLine(message string) string {
	for i, r := range message {
		if r == '\n' {
			return message[:i]
		}
	}
	return message
}
