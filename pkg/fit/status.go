// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fitvcs/fit/modules/index"
	"github.com/fitvcs/fit/modules/objfmt"
)

// WorktreeState classifies an Index path's relationship to the working
// directory copy, used by the "not staged" section.
type WorktreeState int

const (
	Unmodified WorktreeState = iota
	WorktreeModified
	WorktreeDeleted
)

// Status is the three-section report: changes staged for commit,
// tracked changes not yet staged, and untracked files.
type Status struct {
	Added      []string
	Modified   []string
	Deleted    []string
	NotStaged  map[string]WorktreeState
	Untracked  []string
}

func (s *Status) IsClean() bool {
	return len(s.Added) == 0 && len(s.Modified) == 0 && len(s.Deleted) == 0 &&
		len(s.NotStaged) == 0 && len(s.Untracked) == 0
}

// Status computes the three sections of the report.
func (r *Repository) Status() (*Status, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	st, err := r.loadStaging()
	if err != nil {
		return nil, err
	}
	out := &Status{NotStaged: make(map[string]WorktreeState)}
	for p := range st.Added {
		out.Added = append(out.Added, p)
	}
	for p := range st.Modified {
		out.Modified = append(out.Modified, p)
	}
	for p := range st.Deleted {
		out.Deleted = append(out.Deleted, p)
	}

	for _, p := range idx.Paths() {
		if st.IsStaged(p) {
			continue
		}
		abs := filepath.Join(r.Worktree, filepath.FromSlash(p))
		content, err := os.ReadFile(abs)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				out.NotStaged[p] = WorktreeDeleted
				continue
			}
			return nil, err
		}
		// Rehashing via the Object Store also writes the object;
		// benign, since writes are content-addressed and therefore
		// idempotent.
		h, err := r.Objects.Put(objfmt.KindBlob, content)
		if err != nil {
			return nil, err
		}
		indexHash, _ := idx.Get(p)
		if h != indexHash {
			out.NotStaged[p] = WorktreeModified
		}
	}

	out.Untracked, err = r.untrackedFiles(idx)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// untrackedFiles lists direct children of the working root that are
// files, not the repository directory, and not already in the Index.
// Subdirectories are not recursed.
func (r *Repository) untrackedFiles(idx *index.Index) ([]string, error) {
	entries, err := os.ReadDir(r.Worktree)
	if err != nil {
		return nil, err
	}
	tracked := make(map[string]bool)
	for _, p := range idx.Paths() {
		tracked[p] = true
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == DirName {
			continue
		}
		if tracked[e.Name()] {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}
