// Package objfmt implements the content-addressed object format: a
// SHA-1 Hash type and a zlib-backed Store for the blob/tree/commit
// objects described by the on-disk layout under .fit/objects.
package objfmt

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// HashSize is the length in bytes of a SHA-1 digest.
const HashSize = sha1.Size

// HexSize is the length of a Hash's lowercase hex representation.
const HexSize = HashSize * 2

// Hash identifies an object by the SHA-1 digest of its framed payload.
type Hash [HashSize]byte

// ZeroHash is the Hash zero value, used to mean "no object".
var ZeroHash Hash

func (h Hash) IsZero() bool {
	return h == ZeroHash
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// NewHash decodes a lowercase hex string into a Hash. The string must be
// exactly HexSize characters; anything else is an error.
func NewHash(s string) (Hash, error) {
	var h Hash
	if len(s) != HexSize {
		return ZeroHash, fmt.Errorf("objfmt: %q is not a valid object hash", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroHash, fmt.Errorf("objfmt: %q is not a valid object hash: %w", s, err)
	}
	copy(h[:], b)
	return h, nil
}

// MustHash is NewHash for call sites that already validated s (tests,
// literals); it panics on malformed input.
func MustHash(s string) Hash {
	h, err := NewHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Sum computes the Hash of an object with the given type and payload:
// SHA-1 over "type size\x00payload".
func Sum(kind Kind, payload []byte) Hash {
	h := sha1.New()
	h.Write(frameHeader(kind, len(payload)))
	h.Write(payload)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
