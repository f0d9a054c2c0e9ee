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

// Add stages path (a file or directory, recursed depth-first): the
// blob is hashed and written immediately, the Index is eagerly
// updated to that hash, and the Staging Delta classifies the change
// as Added or Modified. A path that already matches its Index hash
// leaves the Staging Delta untouched (the Index is still rewritten,
// which is a no-op in that case).
func (r *Repository) Add(path string) error {
	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	st, err := r.loadStaging()
	if err != nil {
		return err
	}
	abs := filepath.Join(r.Worktree, path)
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	if info.IsDir() {
		if err := r.addDir(abs, idx, st); err != nil {
			return err
		}
	} else {
		rel, err := filepath.Rel(r.Worktree, abs)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
		}
		if err := r.addFile(filepath.ToSlash(rel), abs, idx, st); err != nil {
			return err
		}
	}
	if err := idx.Save(r.indexPath()); err != nil {
		return err
	}
	return st.Save(r.stagingPath())
}

func (r *Repository) addDir(abs string, idx *index.Index, st *index.Staging) error {
	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, abs, err)
	}
	for _, e := range entries {
		if e.Name() == DirName {
			continue
		}
		child := filepath.Join(abs, e.Name())
		if e.IsDir() {
			if err := r.addDir(child, idx, st); err != nil {
				return err
			}
			continue
		}
		rel, err := filepath.Rel(r.Worktree, child)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPath, child, err)
		}
		if err := r.addFile(filepath.ToSlash(rel), child, idx, st); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) addFile(relPath, abs string, idx *index.Index, st *index.Staging) error {
	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, relPath, err)
	}
	h, err := r.Objects.Put(objfmt.KindBlob, content)
	if err != nil {
		return err
	}
	if existing, tracked := idx.Get(relPath); !tracked {
		st.MarkAdded(relPath, h)
	} else if existing != h {
		st.MarkModified(relPath, h)
	}
	idx.Set(relPath, h)
	return nil
}
