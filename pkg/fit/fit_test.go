package fit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitvcs/fit/modules/linediff"
	"github.com/fitvcs/fit/modules/objfmt"
)

func writeFile(t *testing.T, r *Repository, rel, content string) {
	t.Helper()
	abs := filepath.Join(r.Worktree, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func readFile(t *testing.T, r *Repository, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(r.Worktree, rel))
	require.NoError(t, err)
	return string(b)
}

func initRepo(t *testing.T) *Repository {
	t.Helper()
	r, err := Init(t.TempDir(), "")
	require.NoError(t, err)
	return r
}

// S1: init, add, commit, log.
func TestScenarioInitCommitLog(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))

	hash, err := r.Commit("first")
	require.NoError(t, err)

	entries, err := r.Log()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, hash, entries[0].Hash)
	assert.Equal(t, "first", entries[0].Commit.Message)
	assert.Equal(t, "Initial commit", entries[1].Commit.Message)
	assert.True(t, entries[1].Commit.Parent.IsZero())

	commit, err := r.readCommit(hash)
	require.NoError(t, err)
	tree, err := r.readTree(commit.Tree)
	require.NoError(t, err)
	require.Len(t, tree.Rows, 1)
	assert.Equal(t, "a.txt", tree.Rows[0].Path)
	assert.Equal(t, objfmt.Sum(objfmt.KindBlob, []byte("hello\n")), tree.Rows[0].Hash)
}

// S2: modifying a tracked file without staging shows up as "not staged".
func TestScenarioModifyStatus(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	writeFile(t, r, "a.txt", "hello2\n")
	status, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, WorktreeModified, status.NotStaged["a.txt"])
}

// S3: reset restores file content and clears the staging delta.
func TestScenarioReset(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	first, err := r.Commit("first")
	require.NoError(t, err)

	writeFile(t, r, "a.txt", "hello2\n")
	require.NoError(t, r.Add("a.txt"))

	require.NoError(t, r.Reset(first.String()))
	assert.Equal(t, "hello\n", readFile(t, r, "a.txt"))

	st, err := r.loadStaging()
	require.NoError(t, err)
	assert.True(t, st.Empty())
}

// S4: branch create, checkout, and switching restores the other branch's content.
func TestScenarioBranchCheckout(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	require.NoError(t, r.CreateBranch("feat"))
	require.NoError(t, r.Checkout("feat"))

	writeFile(t, r, "a.txt", "x\n")
	require.NoError(t, r.Add("a.txt"))
	_, err = r.Commit("on-feat")
	require.NoError(t, err)
	assert.Equal(t, "x\n", readFile(t, r, "a.txt"))

	require.NoError(t, r.Checkout("master"))
	assert.Equal(t, "hello\n", readFile(t, r, "a.txt"))
}

// S5: fast-forward merge moves master to the feature tip.
func TestScenarioFastForwardMerge(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	require.NoError(t, r.CreateBranch("feat"))
	require.NoError(t, r.Checkout("feat"))
	writeFile(t, r, "a.txt", "x\n")
	require.NoError(t, r.Add("a.txt"))
	featTip, err := r.Commit("on-feat")
	require.NoError(t, err)

	require.NoError(t, r.Checkout("master"))
	result, err := r.Merge("feat")
	require.NoError(t, err)
	assert.Equal(t, MergeFastForward, result)

	current, err := r.Refs.CurrentCommit()
	require.NoError(t, err)
	assert.Equal(t, featTip.String(), current)
	assert.Equal(t, "x\n", readFile(t, r, "a.txt"))
}

// S6: stash round-trips a pending add.
func TestScenarioStashRoundTrip(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "b.txt", "b\n")
	require.NoError(t, r.Add("b.txt"))

	_, err := r.Stash()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(r.Worktree, "b.txt"))
	assert.True(t, os.IsNotExist(err))

	_, err = r.StashPop()
	require.NoError(t, err)
	assert.Equal(t, "b\n", readFile(t, r, "b.txt"))
}

func TestStashPopOnEmptyStackFails(t *testing.T) {
	r := initRepo(t)
	_, err := r.StashPop()
	assert.ErrorIs(t, err, ErrStashEmpty)
}

func TestCommitWithNothingStagedFails(t *testing.T) {
	r := initRepo(t)
	_, err := r.Commit("nothing")
	assert.ErrorIs(t, err, ErrNothingToCommit)
}

func TestMergeRejectsSelfMerge(t *testing.T) {
	r := initRepo(t)
	_, err := r.Merge("master")
	assert.ErrorIs(t, err, ErrMergeSelf)
}

func TestMergePolicyRejectsNonMasterCurrent(t *testing.T) {
	r := initRepo(t)
	require.NoError(t, r.CreateBranch("feat"))
	require.NoError(t, r.CreateBranch("other"))
	require.NoError(t, r.Checkout("feat"))
	_, err := r.Merge("other")
	assert.ErrorIs(t, err, ErrMergePolicy)
}

func TestBranchCreateRejectsMaster(t *testing.T) {
	r := initRepo(t)
	err := r.CreateBranch("master")
	assert.ErrorIs(t, err, ErrProtectedBranch)
}

func TestBranchDeleteRejectsCurrent(t *testing.T) {
	r := initRepo(t)
	require.NoError(t, r.CreateBranch("feat"))
	require.NoError(t, r.Checkout("feat"))
	err := r.DeleteBranch("feat")
	assert.ErrorIs(t, err, ErrProtectedBranch)
}

func TestAddDirectoryRecurses(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "dir/a.txt", "a\n")
	writeFile(t, r, "dir/sub/b.txt", "b\n")
	require.NoError(t, r.Add("dir"))

	idx, err := r.loadIndex()
	require.NoError(t, err)
	_, ok := idx.Get("dir/a.txt")
	assert.True(t, ok)
	_, ok = idx.Get("dir/sub/b.txt")
	assert.True(t, ok)
}

func TestRemoveUntrackedPathFails(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	err := r.Remove("a.txt")
	assert.ErrorIs(t, err, ErrNotTracked)
}

func TestDiffStagedVsHEAD(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	writeFile(t, r, "a.txt", "hello\nworld\n")
	require.NoError(t, r.Add("a.txt"))

	diffs, err := r.DiffStagedVsHEAD()
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "a.txt", diffs[0].Path)
}

func TestDiffCommitsIsSymmetricWithSwappedTags(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))
	c1, err := r.Commit("first")
	require.NoError(t, err)

	writeFile(t, r, "a.txt", "world\n")
	require.NoError(t, r.Add("a.txt"))
	c2, err := r.Commit("second")
	require.NoError(t, err)

	forward, err := r.DiffCommits(c1.String(), c2.String())
	require.NoError(t, err)
	backward, err := r.DiffCommits(c2.String(), c1.String())
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, forward[0].Path, backward[0].Path)
	assert.Equal(t, len(forward[0].Lines), len(backward[0].Lines))

	swap := map[linediff.Tag]linediff.Tag{
		linediff.Both:  linediff.Both,
		linediff.Left:  linediff.Right,
		linediff.Right: linediff.Left,
	}
	var swapped []linediff.Line
	for _, l := range forward[0].Lines {
		swapped = append(swapped, linediff.Line{Tag: swap[l.Tag], Text: l.Text})
	}
	assert.ElementsMatch(t, swapped, backward[0].Lines)
}

func TestStatusReportsUntrackedTopLevelOnly(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "top.txt", "x\n")
	writeFile(t, r, "dir/nested.txt", "y\n")

	status, err := r.Status()
	require.NoError(t, err)
	assert.Contains(t, status.Untracked, "top.txt")
	assert.NotContains(t, status.Untracked, "dir/nested.txt")
}

func TestCatFileRoundTrip(t *testing.T) {
	r := initRepo(t)
	writeFile(t, r, "a.txt", "hello\n")
	require.NoError(t, r.Add("a.txt"))

	idx, err := r.loadIndex()
	require.NoError(t, err)
	h, ok := idx.Get("a.txt")
	require.True(t, ok)

	result, err := r.CatFile(h.String())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(result.Payload))
}
