// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"github.com/fitvcs/fit/modules/objfmt"
)

// LogEntry is one commit in a `log` listing.
type LogEntry struct {
	Hash   objfmt.Hash
	Commit *objfmt.Commit
}

// Log walks first-parent history from the current commit, newest
// first, terminating at the initial commit.
func (r *Repository) Log() ([]LogEntry, error) {
	tipStr, err := r.Refs.CurrentCommit()
	if err != nil {
		return nil, err
	}
	tip, err := objfmt.NewHash(tipStr)
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	cur := tip
	for {
		commit, err := r.readCommit(cur)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{Hash: cur, Commit: commit})
		if commit.Parent.IsZero() {
			break
		}
		cur = commit.Parent
	}
	return entries, nil
}

// CommitPatch computes the per-file line diff a commit introduced
// against its parent (an empty tree for the initial commit), the
// patch `log -p` prints.
func (r *Repository) CommitPatch(entry LogEntry) ([]FileDiff, error) {
	tree, err := r.readTree(entry.Commit.Tree)
	if err != nil {
		return nil, err
	}
	childMap := tree.AsMap()
	parentMap := map[string]objfmt.Hash{}
	if !entry.Commit.Parent.IsZero() {
		parentCommit, err := r.readCommit(entry.Commit.Parent)
		if err != nil {
			return nil, err
		}
		parentTree, err := r.readTree(parentCommit.Tree)
		if err != nil {
			return nil, err
		}
		parentMap = parentTree.AsMap()
	}
	return r.diffTrees(parentMap, childMap)
}
