// Package engine derives and manipulates stacks of branches.
//
// It is the core of gq, responsible for:
//   - Reading branch lineage from git's upstream tracking metadata (Graph)
//   - Building the in-memory forest with depths and stack ids (Stack)
//   - Recursively syncing a lineage onto updated parents (Sync)
//   - Splitting a branch's commits into a chain of new branches (Split)
//
// Lineage is never persisted by gq: a branch's parent is its tracked
// upstream, and the forest is rebuilt from the repository on every command.
// All reads and writes go through a git.Repo handle.
package engine
