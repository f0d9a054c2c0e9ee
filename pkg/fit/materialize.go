// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitvcs/fit/modules/index"
	"github.com/fitvcs/fit/modules/objfmt"
)

// materialize rewrites the working directory and the Index to match
// target's tree, and points the current branch at target. It backs
// reset, checkout, fast-forward merge, and stash pop: they are all
// "make the working state equal to this commit", which is exactly
// what this function does.
func (r *Repository) materialize(target objfmt.Hash) error {
	commit, err := r.readCommit(target)
	if err != nil {
		return err
	}
	if err := r.Refs.SetCurrentBranch(target.String()); err != nil {
		return err
	}
	tree, err := r.readTree(commit.Tree)
	if err != nil {
		return err
	}
	if err := r.clearStaging(); err != nil {
		return err
	}
	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	currentFiles := make(map[string]bool, len(idx.Paths()))
	for _, p := range idx.Paths() {
		currentFiles[p] = true
	}

	newIndex := index.New()
	targetFiles := make(map[string]bool, len(tree.Rows))
	for _, row := range tree.Rows {
		targetFiles[row.Path] = true
		payload, err := r.Objects.GetKind(row.Hash, objfmt.KindBlob)
		if err != nil {
			return fmt.Errorf("fit: materialize %s: %w", row.Path, err)
		}
		abs := filepath.Join(r.Worktree, filepath.FromSlash(row.Path))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return fmt.Errorf("fit: create directory for %s: %w", row.Path, err)
		}
		if err := os.WriteFile(abs, payload, 0o644); err != nil {
			return fmt.Errorf("fit: write %s: %w", row.Path, err)
		}
		newIndex.Set(row.Path, row.Hash)
	}

	for path := range currentFiles {
		if targetFiles[path] {
			continue
		}
		abs := filepath.Join(r.Worktree, filepath.FromSlash(path))
		if _, err := os.Stat(abs); err == nil {
			if err := os.Remove(abs); err != nil {
				return fmt.Errorf("fit: remove %s: %w", path, err)
			}
		}
	}

	return newIndex.Save(r.indexPath())
}

// Reset materializes commitHash onto the current branch and working
// directory.
func (r *Repository) Reset(commitHash string) error {
	h, _, err := r.resolveCommit(commitHash)
	if err != nil {
		return err
	}
	return r.materialize(h)
}
