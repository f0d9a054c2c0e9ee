package objfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// TreeMode is the only file mode the engine records: no executable
// bit, no symlinks, no submodules.
const TreeMode = "100644"

// TreeRow is one line of a Tree: a tracked path and the blob hash of its
// content.
type TreeRow struct {
	Hash Hash
	Path string
}

// Tree is a flat listing of tracked paths, the snapshot a commit points
// at. There are no sub-tree objects: directories are encoded as '/' in
// Path.
type Tree struct {
	Rows []TreeRow
}

// Encode renders the tree in canonical form: one "100644 blob <hash>
// <path>\n" row per entry, sorted by path. Sorting (rather than
// following whatever order the caller built Rows in) makes the tree
// hash stable across runs with the same content.
func (t *Tree) Encode() []byte {
	rows := make([]TreeRow, len(t.Rows))
	copy(rows, t.Rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Path < rows[j].Path })
	var buf bytes.Buffer
	for _, r := range rows {
		fmt.Fprintf(&buf, "%s %s %s %s\n", TreeMode, KindBlob, r.Hash, r.Path)
	}
	return buf.Bytes()
}

// DecodeTree parses a tree object payload back into rows.
func DecodeTree(payload []byte) (*Tree, error) {
	t := &Tree{}
	sc := bufio.NewScanner(bytes.NewReader(payload))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("objfmt: malformed tree row %q", line)
		}
		h, err := NewHash(fields[2])
		if err != nil {
			return nil, fmt.Errorf("objfmt: malformed tree row %q: %w", line, err)
		}
		t.Rows = append(t.Rows, TreeRow{Hash: h, Path: fields[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfmt: read tree: %w", err)
	}
	return t, nil
}

// AsMap returns the tree's rows as a path -> hash map, the shape every
// consumer (differ, materializer, status) actually wants.
func (t *Tree) AsMap() map[string]Hash {
	m := make(map[string]Hash, len(t.Rows))
	for _, r := range t.Rows {
		m[r.Path] = r.Hash
	}
	return m
}

// TreeFromMap builds a Tree from a path -> hash map, the inverse of
// AsMap, used by the snapshotter to serialize the Index.
func TreeFromMap(m map[string]Hash) *Tree {
	t := &Tree{Rows: make([]TreeRow, 0, len(m))}
	for p, h := range m {
		t.Rows = append(t.Rows, TreeRow{Hash: h, Path: p})
	}
	return t
}
