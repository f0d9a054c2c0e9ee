// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package index implements the Index (the last-known committed view of
// tracked paths) and the Staging Delta layered over it (pending
// add/modify/delete operations waiting for the next commit).
package index

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fitvcs/fit/modules/objfmt"
)

// Index is the flat path -> blob hash mapping persisted to .fit/index.
// It is always loaded and rewritten whole.
type Index struct {
	entries map[string]objfmt.Hash
}

func New() *Index {
	return &Index{entries: make(map[string]objfmt.Hash)}
}

// Load reads an Index from "<hash> <path>" lines. A missing file is
// treated as an empty index (the state right after init).
func Load(path string) (*Index, error) {
	idx := New()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return idx, nil
		}
		return nil, fmt.Errorf("index: read %s: %w", path, err)
	}
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		hashStr, p, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("index: malformed line %q", line)
		}
		h, err := objfmt.NewHash(hashStr)
		if err != nil {
			return nil, fmt.Errorf("index: malformed line %q: %w", line, err)
		}
		idx.entries[p] = h
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("index: read %s: %w", path, err)
	}
	return idx, nil
}

// Save persists the Index whole, as "<hash> <path>" lines sorted by
// path for deterministic output.
func (idx *Index) Save(path string) error {
	var buf bytes.Buffer
	for _, p := range idx.SortedPaths() {
		fmt.Fprintf(&buf, "%s %s\n", idx.entries[p], p)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("index: write %s: %w", path, err)
	}
	return nil
}

// Get returns the blob hash recorded for path and whether it is tracked.
func (idx *Index) Get(path string) (objfmt.Hash, bool) {
	h, ok := idx.entries[path]
	return h, ok
}

// Set records path -> hash, overwriting any previous entry.
func (idx *Index) Set(path string, h objfmt.Hash) {
	idx.entries[path] = h
}

// Delete removes path from the Index.
func (idx *Index) Delete(path string) {
	delete(idx.entries, path)
}

// Paths returns the tracked paths in unspecified order.
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.entries))
	for p := range idx.entries {
		paths = append(paths, p)
	}
	return paths
}

// SortedPaths returns the tracked paths sorted lexically.
func (idx *Index) SortedPaths() []string {
	paths := idx.Paths()
	sort.Strings(paths)
	return paths
}

// AsMap returns the Index's path -> hash entries. Callers must not
// mutate the returned map.
func (idx *Index) AsMap() map[string]objfmt.Hash {
	return idx.entries
}

// Clone returns a deep copy of the Index.
func (idx *Index) Clone() *Index {
	out := New()
	for p, h := range idx.entries {
		out.entries[p] = h
	}
	return out
}

// Tree builds the Tree object this Index represents.
func (idx *Index) Tree() *objfmt.Tree {
	return objfmt.TreeFromMap(idx.entries)
}
