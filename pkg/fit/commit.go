// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"

	"github.com/fitvcs/fit/modules/objfmt"
)

// Commit applies the Staging Delta onto the Index, serializes the
// Index as a tree object, composes a commit object referencing that
// tree and the current HEAD commit, and advances the current branch
// to it. Returns ErrNothingToCommit (without changing anything) if the
// Staging Delta is empty.
func (r *Repository) Commit(message string) (objfmt.Hash, error) {
	st, err := r.loadStaging()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	if st.Empty() {
		return objfmt.ZeroHash, ErrNothingToCommit
	}
	idx, err := r.loadIndex()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	st.Apply(idx)

	tree := idx.Tree()
	treeHash, err := r.Objects.Put(objfmt.KindTree, tree.Encode())
	if err != nil {
		return objfmt.ZeroHash, err
	}

	parentStr, err := r.Refs.CurrentCommit()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	var parent objfmt.Hash
	if parentStr != "" {
		parent, err = objfmt.NewHash(parentStr)
		if err != nil {
			return objfmt.ZeroHash, fmt.Errorf("fit: current branch tip is malformed: %w", err)
		}
	}

	commit := &objfmt.Commit{Tree: treeHash, Parent: parent, Message: message}
	commitHash, err := r.Objects.Put(objfmt.KindCommit, commit.Encode())
	if err != nil {
		return objfmt.ZeroHash, err
	}
	if err := r.Refs.SetCurrentBranch(commitHash.String()); err != nil {
		return objfmt.ZeroHash, err
	}
	if err := idx.Save(r.indexPath()); err != nil {
		return objfmt.ZeroHash, err
	}
	if err := r.clearStaging(); err != nil {
		return objfmt.ZeroHash, err
	}
	r.DbgPrint("create commit: %s", commitHash)
	return commitHash, nil
}
