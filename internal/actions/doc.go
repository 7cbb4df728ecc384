// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a gq command (log, move, create, init, ...)
// and orchestrates operations across the engine, git, review and tui
// packages. The larger workflows live in subpackages: sync, split, submit
// and merge.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Repo, Splog and other dependencies
//   - Actions are stateless; the stack is rebuilt from the repository on every call
//   - Actions handle user interaction through ctx.Prompter
package actions
