package engine

import (
	"context"

	"gq.dev/gq/internal/git"
)

// Engine runs the stack operations that mutate the repository
type Engine struct {
	repo  *git.Repo
	graph *Graph
	log   Logger
}

// New creates an Engine over repo. log may be nil.
func New(repo *git.Repo, log Logger) *Engine {
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{
		repo:  repo,
		graph: NewGraph(repo, log),
		log:   log,
	}
}

// Graph returns the engine's branch graph
func (e *Engine) Graph() *Graph {
	return e.graph
}

// Repo returns the engine's repository handle
func (e *Engine) Repo() *git.Repo {
	return e.repo
}

// Load builds the current forest
func (e *Engine) Load(ctx context.Context) (*Stack, error) {
	return e.graph.Load(ctx)
}
