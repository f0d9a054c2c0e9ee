package objfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeEncodeIsSortedByPath(t *testing.T) {
	tree := &Tree{Rows: []TreeRow{
		{Hash: MustHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), Path: "z.txt"},
		{Hash: MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), Path: "a.txt"},
	}}
	encoded := string(tree.Encode())
	assert.Equal(t,
		"100644 blob aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa a.txt\n"+
			"100644 blob bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb z.txt\n",
		encoded)
}

func TestTreeEncodeDecodeRoundTrip(t *testing.T) {
	tree := &Tree{Rows: []TreeRow{
		{Hash: MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), Path: "dir/a.txt"},
		{Hash: MustHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"), Path: "b.txt"},
	}}
	decoded, err := DecodeTree(tree.Encode())
	require.NoError(t, err)
	assert.Equal(t, tree.AsMap(), decoded.AsMap())
}

func TestTreeFromMapRoundTripsThroughAsMap(t *testing.T) {
	m := map[string]Hash{
		"a.txt": MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		"b.txt": MustHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
	}
	tree := TreeFromMap(m)
	assert.Equal(t, m, tree.AsMap())
}

func TestEmptyTreeEncodesEmpty(t *testing.T) {
	tree := &Tree{}
	assert.Empty(t, tree.Encode())
}
