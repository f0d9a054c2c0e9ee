package objfmt

import (
	"bytes"
	"fmt"
)

// Kind is an object's type tag, as stored in its frame header.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
)

func (k Kind) Valid() bool {
	switch k {
	case KindBlob, KindTree, KindCommit:
		return true
	default:
		return false
	}
}

// frameHeader renders the "type size\x00" header that precedes every
// object's payload, both when hashing and when writing to disk.
func frameHeader(kind Kind, size int) []byte {
	return fmt.Appendf(nil, "%s %d\x00", kind, size)
}

// frame concatenates the header and the payload, the exact bytes that
// get SHA-1 hashed and, separately, zlib-compressed to disk.
func frame(kind Kind, payload []byte) []byte {
	header := frameHeader(kind, len(payload))
	buf := make([]byte, 0, len(header)+len(payload))
	buf = append(buf, header...)
	buf = append(buf, payload...)
	return buf
}

// splitFrame parses "type size\x00payload" back into its parts. It does
// not require size to match len(payload): the spec permits but does not
// mandate that check (see objfmt.Store.Get).
func splitFrame(raw []byte) (kind Kind, payload []byte, err error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", nil, fmt.Errorf("objfmt: malformed object: missing header terminator")
	}
	header := raw[:nul]
	payload = raw[nul+1:]
	sp := bytes.IndexByte(header, ' ')
	if sp < 0 {
		return "", nil, fmt.Errorf("objfmt: malformed object header %q", header)
	}
	kind = Kind(header[:sp])
	if !kind.Valid() {
		return "", nil, fmt.Errorf("objfmt: unknown object type %q", kind)
	}
	return kind, payload, nil
}
