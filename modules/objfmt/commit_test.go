package objfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitEncodeNoParent(t *testing.T) {
	c := &Commit{Tree: MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), Message: "Initial commit"}
	assert.Equal(t, "tree aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n\nInitial commit", string(c.Encode()))
}

func TestCommitEncodeWithParent(t *testing.T) {
	c := &Commit{
		Tree:    MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Parent:  MustHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
		Message: "second",
	}
	assert.Equal(t,
		"tree aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n"+
			"parent bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n\nsecond",
		string(c.Encode()))
}

func TestCommitDecodeRoundTrip(t *testing.T) {
	c := &Commit{
		Tree:    MustHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Parent:  MustHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
		Message: "multi\nline\nmessage",
	}
	decoded, err := DecodeCommit(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c.Tree, decoded.Tree)
	assert.Equal(t, c.Parent, decoded.Parent)
	assert.Equal(t, c.Message, decoded.Message)
}

func TestCommitDecodeMissingTreeErrors(t *testing.T) {
	_, err := DecodeCommit([]byte("parent aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n\nmsg"))
	assert.Error(t, err)
}

func TestIsStash(t *testing.T) {
	stash := &Commit{Message: StashMessage}
	assert.True(t, stash.IsStash())

	normal := &Commit{Message: "normal commit"}
	assert.False(t, normal.IsStash())
}
