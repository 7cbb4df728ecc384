// Package runtime provides the execution context for gq commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// repository handle, the engine, the logger, the repo config and the
// review gateway, which is only connected when a command first asks for it.
package runtime
