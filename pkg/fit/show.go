// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"github.com/fitvcs/fit/modules/objfmt"
)

// ShowResult is the detail `show` prints: a commit's header/message
// plus its tree's row listing. There are no tags, no blame, and no
// binary detection; the object model has nothing for any of those to
// describe.
type ShowResult struct {
	Hash   objfmt.Hash
	Commit *objfmt.Commit
	Tree   *objfmt.Tree
}

// Show resolves hashStr to a commit and loads its tree for display.
func (r *Repository) Show(hashStr string) (*ShowResult, error) {
	h, commit, err := r.resolveCommit(hashStr)
	if err != nil {
		return nil, err
	}
	tree, err := r.readTree(commit.Tree)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Hash: h, Commit: commit, Tree: tree}, nil
}
