// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"

	"github.com/fitvcs/fit/modules/objfmt"
	"github.com/fitvcs/fit/modules/refs"
)

// MergeResult reports what the merge actually did, so the command
// layer can print the right message.
type MergeResult int

const (
	MergeFastForward MergeResult = iota
	MergeAlreadyUpToDate
	MergeUnsupported
)

// ancestry walks first-parent links from tip to the initial commit
// (which has no parent), returning the chain in order (tip first).
// Every commit's parent chain is finite and acyclic, so this always
// terminates.
func (r *Repository) ancestry(tip objfmt.Hash) ([]objfmt.Hash, error) {
	var chain []objfmt.Hash
	cur := tip
	for {
		chain = append(chain, cur)
		commit, err := r.readCommit(cur)
		if err != nil {
			return nil, err
		}
		if commit.Parent.IsZero() {
			return chain, nil
		}
		cur = commit.Parent
	}
}

// MergeBase returns the first commit of b's ancestry that also appears
// in a's ancestry.
func (r *Repository) MergeBase(a, b objfmt.Hash) (objfmt.Hash, error) {
	aChain, err := r.ancestry(a)
	if err != nil {
		return objfmt.ZeroHash, err
	}
	aSet := make(map[objfmt.Hash]bool, len(aChain))
	for _, h := range aChain {
		aSet[h] = true
	}
	bChain, err := r.ancestry(b)
	if err != nil {
		return objfmt.ZeroHash, err
	}
	for _, h := range bChain {
		if aSet[h] {
			return h, nil
		}
	}
	return objfmt.ZeroHash, ErrMergeBaseNotFound
}

// Merge merges branch into the current branch. Only "master <- feature
// branch" is a permitted direction, and only a fast-forward is
// performed: there is no three-way content merge, so a merge whose
// base is neither tip fails with ErrMergeNotFastForward.
func (r *Repository) Merge(branch string) (MergeResult, error) {
	current, err := r.Refs.CurrentBranch()
	if err != nil {
		return MergeUnsupported, err
	}
	if branch == current {
		return MergeUnsupported, ErrMergeSelf
	}
	if current != refs.MasterName() || branch == refs.MasterName() {
		return MergeUnsupported, ErrMergePolicy
	}
	if !r.Refs.BranchExists(branch) {
		return MergeUnsupported, fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}

	masterTipStr, err := r.Refs.CurrentCommit()
	if err != nil {
		return MergeUnsupported, err
	}
	masterTip, err := objfmt.NewHash(masterTipStr)
	if err != nil {
		return MergeUnsupported, fmt.Errorf("fit: master tip is malformed: %w", err)
	}
	branchTipStr, err := r.Refs.ReadBranch(branch)
	if err != nil {
		return MergeUnsupported, err
	}
	branchTip, err := objfmt.NewHash(branchTipStr)
	if err != nil {
		return MergeUnsupported, fmt.Errorf("fit: branch %s tip is malformed: %w", branch, err)
	}

	if masterTip == branchTip {
		return MergeAlreadyUpToDate, nil
	}

	base, err := r.MergeBase(masterTip, branchTip)
	if err != nil {
		return MergeUnsupported, err
	}
	if base == branchTip {
		// branch is behind master; nothing to do.
		return MergeAlreadyUpToDate, nil
	}
	if base == masterTip {
		if err := r.Refs.WriteBranch(refs.MasterName(), branchTip.String()); err != nil {
			return MergeUnsupported, err
		}
		if err := r.materialize(branchTip); err != nil {
			return MergeUnsupported, err
		}
		return MergeFastForward, nil
	}
	return MergeUnsupported, ErrMergeNotFastForward
}
