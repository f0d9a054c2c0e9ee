// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fit implements the object-and-reference storage engine and
// the commands that manipulate it: the content-addressed object store,
// the reference namespace, the three-level working-state model
// (working directory / index / staging delta), the commit pipeline,
// the checkout/reset materializer, the merge-base finder and
// fast-forward merger, the tree/line differ, and the LIFO stash stack.
package fit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitvcs/fit/modules/config"
	"github.com/fitvcs/fit/modules/index"
	"github.com/fitvcs/fit/modules/objfmt"
	"github.com/fitvcs/fit/modules/refs"
)

// DirName is the name of the repository metadata directory inside a
// worktree, the root every other path in this package is relative to.
const DirName = ".fit"

// Repository is the explicit handle every operation takes, rather
// than assuming "the current directory is the repository"; it bundles
// the worktree root with the opened object store, reference store,
// and configuration.
type Repository struct {
	Worktree string // the directory the repository tracks
	fitDir   string // Worktree/.fit

	Objects *objfmt.Store
	Refs    *refs.Store
	Config  *config.Config

	Verbose bool
}

func (r *Repository) indexPath() string   { return filepath.Join(r.fitDir, "index") }
func (r *Repository) stagingPath() string { return filepath.Join(r.fitDir, "STAGING") }
func (r *Repository) stashPath() string   { return filepath.Join(r.fitDir, "STASH") }
func (r *Repository) configPath() string  { return filepath.Join(r.fitDir, "config") }

// FindFitDir walks up from start looking for a .fit directory, the way
// every subcommand locates the repository root regardless of the
// working directory it was invoked from.
func FindFitDir(start string) (worktree, fitDir string, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", "", fmt.Errorf("fit: resolve %s: %w", start, err)
	}
	dir := abs
	for {
		candidate := filepath.Join(dir, DirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return dir, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("fit: not a fit repository (or any parent up to /): %s", start)
		}
		dir = parent
	}
}

// Open locates the repository rooted at or above worktree and loads
// its object store, reference store, and configuration.
func Open(worktree string) (*Repository, error) {
	if worktree == "" {
		worktree = "."
	}
	root, fitDir, err := FindFitDir(worktree)
	if err != nil {
		return nil, err
	}
	return open(root, fitDir)
}

func open(root, fitDir string) (*Repository, error) {
	r := &Repository{
		Worktree: root,
		fitDir:   fitDir,
		Objects:  objfmt.NewStore(filepath.Join(fitDir, "objects")),
		Refs:     refs.NewStore(fitDir),
	}
	cfg, err := config.Load(r.configPath())
	if err != nil {
		return nil, err
	}
	r.Config = cfg
	return r, nil
}

// Init creates the repository skeleton under directory: objects/,
// refs/heads/, HEAD pointing at refs/heads/<branch>, an empty Index,
// an empty-tree object, and an initial commit with no parent whose
// tree is that empty tree.
func Init(directory, branch string) (*Repository, error) {
	if branch == "" {
		branch = refs.MasterName()
	}
	worktree, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("fit: resolve %s: %w", directory, err)
	}
	if _, _, err := FindFitDir(worktree); err == nil {
		return nil, ErrAlreadyARepo
	}
	fitDir := filepath.Join(worktree, DirName)
	if err := os.MkdirAll(filepath.Join(fitDir, "objects"), 0o755); err != nil {
		return nil, fmt.Errorf("fit: create objects dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(fitDir, "refs", "heads"), 0o755); err != nil {
		return nil, fmt.Errorf("fit: create refs dir: %w", err)
	}
	r, err := open(worktree, fitDir)
	if err != nil {
		return nil, err
	}
	if err := r.Refs.SetHEAD(branch); err != nil {
		return nil, err
	}
	if err := index.New().Save(r.indexPath()); err != nil {
		return nil, err
	}
	emptyTree := &objfmt.Tree{}
	treeHash, err := r.Objects.Put(objfmt.KindTree, emptyTree.Encode())
	if err != nil {
		return nil, err
	}
	initial := &objfmt.Commit{Tree: treeHash, Message: "Initial commit"}
	commitHash, err := r.Objects.Put(objfmt.KindCommit, initial.Encode())
	if err != nil {
		return nil, err
	}
	if err := r.Refs.WriteBranch(branch, commitHash.String()); err != nil {
		return nil, err
	}
	return r, nil
}

// loadIndex and loadStaging are the two pieces of mutable working
// state every command-level operation reads before acting.
func (r *Repository) loadIndex() (*index.Index, error) {
	return index.Load(r.indexPath())
}

func (r *Repository) loadStaging() (*index.Staging, error) {
	return index.LoadStaging(r.stagingPath())
}

func (r *Repository) clearStaging() error {
	if err := os.Remove(r.stagingPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("fit: clear staging: %w", err)
	}
	return nil
}

// readCommit resolves hash to a *objfmt.Commit, failing with
// ErrCommitNotFound (wrapping the object store's own not-found) when
// the hash doesn't resolve to a commit object at all.
func (r *Repository) readCommit(hash objfmt.Hash) (*objfmt.Commit, error) {
	payload, err := r.Objects.GetKind(hash, objfmt.KindCommit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCommitNotFound, hash, err)
	}
	return objfmt.DecodeCommit(payload)
}

// readTree resolves a commit's tree hash to its rows.
func (r *Repository) readTree(hash objfmt.Hash) (*objfmt.Tree, error) {
	payload, err := r.Objects.GetKind(hash, objfmt.KindTree)
	if err != nil {
		return nil, fmt.Errorf("fit: read tree %s: %w", hash, err)
	}
	return objfmt.DecodeTree(payload)
}

// resolveCommit parses a hex hash string and loads the commit it names.
func (r *Repository) resolveCommit(hashStr string) (objfmt.Hash, *objfmt.Commit, error) {
	h, err := objfmt.NewHash(hashStr)
	if err != nil {
		return objfmt.ZeroHash, nil, fmt.Errorf("%w: %v", ErrCommitNotFound, err)
	}
	c, err := r.readCommit(h)
	if err != nil {
		return objfmt.ZeroHash, nil, err
	}
	return h, c, nil
}

func (r *Repository) DbgPrint(format string, args ...any) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "\x1b[33m* %s\x1b[0m\n", fmt.Sprintf(format, args...))
}
