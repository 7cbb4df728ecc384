// Package git provides low-level Git operations.
//
// Every git subcommand gq runs goes through a Port, which makes the
// repository the single source of truth for branch lineage. The package
// provides:
//   - Port and its exec implementation, CommandRunner
//   - Repo, the repository handle the engine is handed on every call
//   - Branch operations (switch, create tracking, set upstream, delete)
//   - History operations (log ranges, cherry-pick, pull, rebase, push)
//   - Read-only metadata lookups backed by go-git (git dir, remote URLs)
//
// This package should be the only place where direct git commands are executed.
package git
