// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fit

import "errors"

// Sentinel errors, grouped by kind. Callers compare with errors.Is;
// wrapping with fmt.Errorf("...: %w", err) at call boundaries keeps
// the sentinel visible while adding context.
var (
	// Not found: object, ref, branch, commit, HEAD, or stash entry missing.
	ErrCommitNotFound    = errors.New("fit: commit not found")
	ErrBranchNotFound    = errors.New("fit: branch not found")
	ErrStashEmpty        = errors.New("fit: cannot pop, stash something first")
	ErrMergeBaseNotFound = errors.New("fit: merge base not found")

	// Already exists: branch create when the ref already has a tip.
	ErrBranchExists = errors.New("fit: branch already exists")

	// Permission denied: master protections, merge policy.
	ErrProtectedBranch = errors.New("fit: operation not permitted on this branch")
	ErrMergePolicy     = errors.New("fit: merge only allowed from a feature branch into master")

	// Invalid data: HEAD missing the "ref: " prefix where required.
	ErrInvalidHead = errors.New("fit: HEAD is not a valid symbolic reference")

	// Invalid input: merge of a branch into itself.
	ErrMergeSelf = errors.New("fit: cannot merge a branch into itself")

	// Domain-specific conditions a command may need to report.
	ErrNothingToCommit     = errors.New("fit: nothing to commit")
	ErrNotTracked          = errors.New("fit: path is not tracked")
	ErrInvalidPath         = errors.New("fit: invalid path")
	ErrAlreadyARepo        = errors.New("fit: directory is already a fit repository")
	ErrMergeNotFastForward = errors.New("fit: merge requires a three-way merge, which is not supported")
)

// ErrExitCode pairs an error with the process exit code cmd/fit should
// use for it, letting a command return a specific code instead of the
// generic failure exit status.
type ErrExitCode struct {
	ExitCode int
	Message  string
}

func (e *ErrExitCode) Error() string { return e.Message }
