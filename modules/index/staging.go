// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

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

// Staging is the pending delta layered over the Index between add/rm
// and the next commit: three mutually-exclusive partitions over path.
// A path is in at most one partition at a time; MarkAdded/MarkModified/
// MarkDeleted below each evict path from the other two before
// recording it.
type Staging struct {
	Added    map[string]objfmt.Hash
	Modified map[string]objfmt.Hash
	Deleted  map[string]bool
}

func NewStaging() *Staging {
	return &Staging{
		Added:    make(map[string]objfmt.Hash),
		Modified: make(map[string]objfmt.Hash),
		Deleted:  make(map[string]bool),
	}
}

// LoadStaging reads a Staging Delta from its "A <hash> <path>" / "M
// <hash> <path>" / "D <path>" lines. A missing file means no pending
// changes.
func LoadStaging(path string) (*Staging, error) {
	st := NewStaging()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("staging: read %s: %w", path, err)
	}
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		switch fields[0] {
		case "A", "M":
			if len(fields) != 3 {
				return nil, fmt.Errorf("staging: malformed line %q", line)
			}
			h, err := objfmt.NewHash(fields[1])
			if err != nil {
				return nil, fmt.Errorf("staging: malformed line %q: %w", line, err)
			}
			if fields[0] == "A" {
				st.Added[fields[2]] = h
			} else {
				st.Modified[fields[2]] = h
			}
		case "D":
			if len(fields) != 2 {
				return nil, fmt.Errorf("staging: malformed line %q", line)
			}
			st.Deleted[fields[1]] = true
		default:
			return nil, fmt.Errorf("staging: malformed line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("staging: read %s: %w", path, err)
	}
	return st, nil
}

// Save persists the Staging Delta whole, sorted within each partition
// for deterministic output.
func (st *Staging) Save(path string) error {
	var buf bytes.Buffer
	for _, p := range sortedKeys(st.Added) {
		fmt.Fprintf(&buf, "A %s %s\n", st.Added[p], p)
	}
	for _, p := range sortedKeys(st.Modified) {
		fmt.Fprintf(&buf, "M %s %s\n", st.Modified[p], p)
	}
	for _, p := range sortedBoolKeys(st.Deleted) {
		fmt.Fprintf(&buf, "D %s\n", p)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("staging: write %s: %w", path, err)
	}
	return nil
}

func sortedKeys(m map[string]objfmt.Hash) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedBoolKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Remove evicts path from all three partitions, preserving the
// at-most-one-partition invariant before re-classifying it.
func (st *Staging) Remove(path string) {
	delete(st.Added, path)
	delete(st.Modified, path)
	delete(st.Deleted, path)
}

// MarkAdded records path as newly added.
func (st *Staging) MarkAdded(path string, h objfmt.Hash) {
	st.Remove(path)
	st.Added[path] = h
}

// MarkModified records path as changed from its Index hash.
func (st *Staging) MarkModified(path string, h objfmt.Hash) {
	st.Remove(path)
	st.Modified[path] = h
}

// MarkDeleted records path as removed.
func (st *Staging) MarkDeleted(path string) {
	st.Remove(path)
	st.Deleted[path] = true
}

// IsStaged reports whether path appears in any of the three partitions.
func (st *Staging) IsStaged(path string) bool {
	if _, ok := st.Added[path]; ok {
		return true
	}
	if _, ok := st.Modified[path]; ok {
		return true
	}
	return st.Deleted[path]
}

// Empty reports whether there is nothing pending in any partition.
func (st *Staging) Empty() bool {
	return len(st.Added) == 0 && len(st.Modified) == 0 && len(st.Deleted) == 0
}

// Apply folds the Staging Delta onto idx: insert/overwrite Added and
// Modified entries, remove Deleted entries.
func (st *Staging) Apply(idx *Index) {
	for p, h := range st.Added {
		idx.Set(p, h)
	}
	for p, h := range st.Modified {
		idx.Set(p, h)
	}
	for p := range st.Deleted {
		idx.Delete(p)
	}
}
