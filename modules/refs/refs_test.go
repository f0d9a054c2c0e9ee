package refs

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetHEAD("master"))
	require.NoError(t, s.WriteBranch("master", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	return s
}

func TestCurrentBranchFallsBackToMasterWhenHEADMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	name, err := s.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", name)
}

func TestCurrentBranchFallsBackWithoutPrefix(t *testing.T) {
	s := NewStore(t.TempDir())
	// Corrupt HEAD to simulate a detached/invalid ref: spec.md says
	// HEAD missing the "ref: " prefix falls back to master.
	require.NoError(t, os.WriteFile(s.headPath(), []byte("feature\n"), 0o644))
	name, err := s.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", name)
}

func TestSetHEADAndCurrentBranch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetHEAD("feat"))
	name, err := s.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feat", name)
}

func TestReadBranchNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ReadBranch("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCurrentCommit(t *testing.T) {
	s := newTestStore(t)
	commit, err := s.CurrentCommit()
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", commit)
}

func TestSetCurrentBranch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SetCurrentBranch("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"))
	commit, err := s.CurrentCommit()
	require.NoError(t, err)
	assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", commit)
}

func TestCreateBranchRejectsMaster(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateBranch("master")
	assert.ErrorIs(t, err, ErrProtected)
}

func TestCreateBranchRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateBranch("feat"))
	err := s.CreateBranch("feat")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateBranchPointsAtCurrentCommit(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateBranch("feat"))
	tip, err := s.ReadBranch("feat")
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", tip)
}

func TestDeleteBranchRejectsMasterAndCurrentAndMissing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateBranch("feat"))

	assert.ErrorIs(t, s.DeleteBranch("master"), ErrProtected)
	assert.ErrorIs(t, s.DeleteBranch("current-does-not-exist"), ErrNotFound)

	require.NoError(t, s.SetHEAD("feat"))
	assert.ErrorIs(t, s.DeleteBranch("feat"), ErrProtected)

	require.NoError(t, s.SetHEAD("master"))
	require.NoError(t, s.DeleteBranch("feat"))
	assert.False(t, s.BranchExists("feat"))
}

func TestListBranches(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateBranch("feat"))
	names, err := s.ListBranches()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"master", "feat"}, names)
}

func TestListBranchesEmptyDirIsNotAnError(t *testing.T) {
	s := NewStore(t.TempDir())
	names, err := s.ListBranches()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.False(t, errors.Is(err, ErrNotFound))
}
