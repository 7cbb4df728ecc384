// Package config manages the repository-local gq configuration.
//
// The configuration lives next to the repository metadata, so every clone
// and worktree carries its own remote and review tool settings. Environment
// variables prefixed with GQ_ override the stored values.
package config
