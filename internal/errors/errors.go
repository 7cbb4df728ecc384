// Package errors provides sentinel errors and custom error types for gq.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not in a git repository")

	// ErrCommandFailed indicates a git subcommand exited unsuccessfully
	ErrCommandFailed = errors.New("command failed")

	// ErrNoTrackedParent indicates the branch has no local upstream to stack on
	ErrNoTrackedParent = errors.New("branch has no tracked parent")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrMergeabilityUndetermined indicates the review service never reported mergeability
	ErrMergeabilityUndetermined = errors.New("could not determine mergeability")

	// ErrAmbiguousSelection indicates the user cancelled an interactive selection
	ErrAmbiguousSelection = errors.New("selection cancelled")

	// ErrReviewServiceUnavailable indicates no review service is configured or reachable
	ErrReviewServiceUnavailable = errors.New("review service unavailable")

	// ErrNotOnBranch indicates HEAD is detached
	ErrNotOnBranch = errors.New("not on a branch")
)

// CommandError represents an error from a git command execution
type CommandError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	line := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("> %s\n%s", line, e.Stderr)
	}
	return fmt.Sprintf("> %s: %v", line, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stderr:  stderr,
		Err:     err,
	}
}

// RebaseConflictError represents a rebase of Branch onto Parent that stopped on conflicts.
// The rebase has already been aborted when this error is returned.
type RebaseConflictError struct {
	Branch string
	Parent string
}

func (e *RebaseConflictError) Error() string {
	return fmt.Sprintf("rebase conflict: %s could not be rebased onto %s", e.Branch, e.Parent)
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branch, parent string) *RebaseConflictError {
	return &RebaseConflictError{Branch: branch, Parent: parent}
}

// MergeabilityUndeterminedError is returned once the mergeability poll runs out of attempts
type MergeabilityUndeterminedError struct {
	ReviewID string
}

func (e *MergeabilityUndeterminedError) Error() string {
	return fmt.Sprintf("could not determine mergeability for review %s", e.ReviewID)
}

// Is returns true if the target error is ErrMergeabilityUndetermined
func (e *MergeabilityUndeterminedError) Is(target error) bool {
	return target == ErrMergeabilityUndetermined
}

// NewMergeabilityUndeterminedError creates a new MergeabilityUndeterminedError
func NewMergeabilityUndeterminedError(reviewID string) *MergeabilityUndeterminedError {
	return &MergeabilityUndeterminedError{ReviewID: reviewID}
}
