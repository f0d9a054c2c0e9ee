// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Remove stages the removal of path: it must exist on disk and be
// present in the Index. It is dropped from the Index and recorded
// Deleted in the Staging Delta.
func (r *Repository) Remove(path string) error {
	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	st, err := r.loadStaging()
	if err != nil {
		return err
	}
	rel := filepath.ToSlash(path)
	if _, tracked := idx.Get(rel); !tracked {
		return fmt.Errorf("%w: %s", ErrNotTracked, path)
	}
	abs := filepath.Join(r.Worktree, path)
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	idx.Delete(rel)
	st.MarkDeleted(rel)
	if err := idx.Save(r.indexPath()); err != nil {
		return err
	}
	if err := st.Save(r.stagingPath()); err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("fit: remove %s: %w", path, err)
	}
	return nil
}
