package objfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Commit is the payload of a commit object: a tree, an optional single
// parent, and a verbatim message. There are no merge commits (at most
// one parent) and no author/committer fields; the schema is
// deliberately minimal.
type Commit struct {
	Tree    Hash
	Parent  Hash // ZeroHash means "no parent" (the initial commit)
	Message string
}

// StashMessage is the fixed message every stash commit carries, making
// a stash indistinguishable in storage from an ordinary commit.
const StashMessage = "stash"

// Encode renders the commit in its byte-exact form:
//
//	tree <hash>\n
//	[parent <hash>\n]
//	\n
//	<message>
func (c *Commit) Encode() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", c.Tree)
	if !c.Parent.IsZero() {
		fmt.Fprintf(&buf, "parent %s\n", c.Parent)
	}
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// DecodeCommit parses a commit object payload back into its fields.
func DecodeCommit(payload []byte) (*Commit, error) {
	c := &Commit{}
	sc := bufio.NewScanner(bytes.NewReader(payload))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var haveTree bool
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break // blank line separates headers from the message
		}
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("objfmt: malformed commit header %q", line)
		}
		switch key {
		case "tree":
			h, err := NewHash(value)
			if err != nil {
				return nil, fmt.Errorf("objfmt: malformed commit tree: %w", err)
			}
			c.Tree = h
			haveTree = true
		case "parent":
			h, err := NewHash(value)
			if err != nil {
				return nil, fmt.Errorf("objfmt: malformed commit parent: %w", err)
			}
			c.Parent = h
		default:
			return nil, fmt.Errorf("objfmt: unknown commit header %q", key)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("objfmt: read commit: %w", err)
	}
	if !haveTree {
		return nil, fmt.Errorf("objfmt: commit missing tree header")
	}
	// The message is whatever followed the blank line, verbatim
	// (including any embedded newlines); the header loop above stops
	// at that blank line, so take the message from the raw bytes,
	// keeping its original line terminators.
	if i := bytes.Index(payload, []byte("\n\n")); i >= 0 {
		c.Message = string(payload[i+2:])
	}
	return c, nil
}

// IsStash reports whether the commit is stash-shaped (message == "stash").
func (c *Commit) IsStash() bool {
	return c.Message == StashMessage
}
