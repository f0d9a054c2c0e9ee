// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fitvcs/fit/modules/objfmt"
)

// loadStashStack reads the newline-separated list of stash commit
// hashes, top of stack first. A missing file means an empty stack.
func (r *Repository) loadStashStack() ([]string, error) {
	raw, err := os.ReadFile(r.stashPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fit: read stash stack: %w", err)
	}
	var stack []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			stack = append(stack, line)
		}
	}
	return stack, sc.Err()
}

func (r *Repository) saveStashStack(stack []string) error {
	if len(stack) == 0 {
		if err := os.Remove(r.stashPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("fit: clear stash stack: %w", err)
		}
		return nil
	}
	content := strings.Join(stack, "\n") + "\n"
	if err := os.WriteFile(r.stashPath(), []byte(content), 0o644); err != nil {
		return fmt.Errorf("fit: write stash stack: %w", err)
	}
	return nil
}

// Stash snapshots the current Index as a tree, composes a stash commit
// (parent = current commit, message = "stash"), pushes its hash onto
// the stash stack, and materializes back to the parent commit, so the
// working directory reverts to the last committed state. A stash is
// structurally indistinguishable from a commit, which is why
// materialize (the same Materializer used by reset and checkout) can
// restore one.
func (r *Repository) Stash() (objfmt.Hash, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	tree := idx.Tree()
	treeHash, err := r.Objects.Put(objfmt.KindTree, tree.Encode())
	if err != nil {
		return objfmt.ZeroHash, err
	}
	parentStr, err := r.Refs.CurrentCommit()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	parent, err := objfmt.NewHash(parentStr)
	if err != nil {
		return objfmt.ZeroHash, fmt.Errorf("fit: current branch tip is malformed: %w", err)
	}
	stashCommit := &objfmt.Commit{Tree: treeHash, Parent: parent, Message: objfmt.StashMessage}
	stashHash, err := r.Objects.Put(objfmt.KindCommit, stashCommit.Encode())
	if err != nil {
		return objfmt.ZeroHash, err
	}
	stack, err := r.loadStashStack()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	stack = append([]string{stashHash.String()}, stack...)
	if err := r.saveStashStack(stack); err != nil {
		return objfmt.ZeroHash, err
	}
	if err := r.materialize(parent); err != nil {
		return objfmt.ZeroHash, err
	}
	return stashHash, nil
}

// StashPop pops the top of the stash stack and materializes it,
// restoring the working directory and Index to the state Stash
// captured. Fails with ErrStashEmpty if the stack is empty or absent.
func (r *Repository) StashPop() (objfmt.Hash, error) {
	stack, err := r.loadStashStack()
	if err != nil {
		return objfmt.ZeroHash, err
	}
	if len(stack) == 0 {
		return objfmt.ZeroHash, ErrStashEmpty
	}
	top := stack[0]
	hash, err := objfmt.NewHash(top)
	if err != nil {
		return objfmt.ZeroHash, fmt.Errorf("fit: stash stack entry is malformed: %w", err)
	}
	if err := r.saveStashStack(stack[1:]); err != nil {
		return objfmt.ZeroHash, err
	}
	if err := r.materialize(hash); err != nil {
		return objfmt.ZeroHash, err
	}
	return hash, nil
}
