// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import (
	"fmt"
	"sort"

	"github.com/fitvcs/fit/modules/linediff"
	"github.com/fitvcs/fit/modules/objfmt"
)

// FileDiff is the line diff for one path between two states, one side
// of which may be empty (added/deleted file).
type FileDiff struct {
	Path  string
	Lines []linediff.Line
}

// DiffStagedVsHEAD diffs the Index against the current commit's tree:
// for each path in the Index, diff the tree's content for that path
// (empty if the path isn't there) against the Index content; for each
// path only in the tree, diff its content against empty.
func (r *Repository) DiffStagedVsHEAD() ([]FileDiff, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	headStr, err := r.Refs.CurrentCommit()
	if err != nil {
		return nil, err
	}
	headHash, err := objfmt.NewHash(headStr)
	if err != nil {
		return nil, fmt.Errorf("fit: current branch tip is malformed: %w", err)
	}
	commit, err := r.readCommit(headHash)
	if err != nil {
		return nil, err
	}
	tree, err := r.readTree(commit.Tree)
	if err != nil {
		return nil, err
	}
	treeMap := tree.AsMap()

	var diffs []FileDiff
	for _, path := range idx.SortedPaths() {
		indexHash, _ := idx.Get(path)
		leftHash, inTree := treeMap[path]
		left, right := "", ""
		if inTree {
			left, err = r.blobText(leftHash)
			if err != nil {
				return nil, err
			}
		}
		right, err = r.blobText(indexHash)
		if err != nil {
			return nil, err
		}
		if left == right {
			continue
		}
		diffs = append(diffs, FileDiff{Path: path, Lines: linediff.Lines(left, right)})
	}
	indexPaths := make(map[string]bool, len(idx.Paths()))
	for _, p := range idx.Paths() {
		indexPaths[p] = true
	}
	for _, path := range sortedTreePaths(treeMap) {
		if indexPaths[path] {
			continue
		}
		left, err := r.blobText(treeMap[path])
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, FileDiff{Path: path, Lines: linediff.Lines(left, "")})
	}
	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })
	return diffs, nil
}

// DiffCommits diffs the trees of two commits, path by path.
func (r *Repository) DiffCommits(c1, c2 string) ([]FileDiff, error) {
	_, commit1, err := r.resolveCommit(c1)
	if err != nil {
		return nil, err
	}
	_, commit2, err := r.resolveCommit(c2)
	if err != nil {
		return nil, err
	}
	tree1, err := r.readTree(commit1.Tree)
	if err != nil {
		return nil, err
	}
	tree2, err := r.readTree(commit2.Tree)
	if err != nil {
		return nil, err
	}
	return r.diffTrees(tree1.AsMap(), tree2.AsMap())
}

func (r *Repository) diffTrees(m1, m2 map[string]objfmt.Hash) ([]FileDiff, error) {
	paths := make(map[string]bool, len(m1)+len(m2))
	for p := range m1 {
		paths[p] = true
	}
	for p := range m2 {
		paths[p] = true
	}
	var diffs []FileDiff
	for _, path := range sortedTreePaths(paths) {
		h1, in1 := m1[path]
		h2, in2 := m2[path]
		if in1 && in2 && h1 == h2 {
			continue
		}
		left, right := "", ""
		var err error
		if in1 {
			left, err = r.blobText(h1)
			if err != nil {
				return nil, err
			}
		}
		if in2 {
			right, err = r.blobText(h2)
			if err != nil {
				return nil, err
			}
		}
		diffs = append(diffs, FileDiff{Path: path, Lines: linediff.Lines(left, right)})
	}
	return diffs, nil
}

func (r *Repository) blobText(h objfmt.Hash) (string, error) {
	payload, err := r.Objects.GetKind(h, objfmt.KindBlob)
	if err != nil {
		return "", fmt.Errorf("fit: read blob %s: %w", h, err)
	}
	return string(payload), nil
}

// sortedTreePaths accepts any map keyed by path (Hash-valued or
// bool-valued) and returns its keys sorted, the shared helper behind
// the differ's deterministic path ordering.
func sortedTreePaths[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
