package runtime

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gq.dev/gq/internal/config"
	"gq.dev/gq/internal/engine"
	"gq.dev/gq/internal/git"
	"gq.dev/gq/internal/review"
	"gq.dev/gq/internal/tui"
)

// GatewayFactory connects the review gateway for a context
type GatewayFactory func(ctx *Context) (review.Gateway, error)

// Context provides access to the repository, engine and output for commands.
// It embeds the command's context.Context so it can be passed to any
// blocking call directly.
type Context struct {
	context.Context

	Engine     *engine.Engine
	Repo       *git.Repo
	Repository *git.Repository
	Splog      *tui.Splog
	Config     *config.RepoConfig
	Prompter   tui.Prompter
	RepoRoot   string
	GitDir     string

	gatewayFactory GatewayFactory
	gatewayOnce    sync.Once
	gateway        review.Gateway
	gatewayErr     error
}

// NewContext creates a context over repo with default config and the
// terminal prompter
func NewContext(ctx context.Context, repo *git.Repo, splog *tui.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = tui.NewConsoleSplog(os.Stdout)
	}
	return &Context{
		Context:        ctx,
		Engine:         engine.New(repo, splog),
		Repo:           repo,
		Splog:          splog,
		Config:         config.Default(),
		Prompter:       tui.NewSurveyPrompter(),
		gatewayFactory: connectGateway,
	}
}

// WithPrompter replaces the prompter
func (c *Context) WithPrompter(p tui.Prompter) *Context {
	c.Prompter = p
	return c
}

// WithGateway fixes the review gateway instead of connecting one from config
func (c *Context) WithGateway(gw review.Gateway) *Context {
	c.gatewayFactory = func(*Context) (review.Gateway, error) { return gw, nil }
	return c
}

// Gateway returns the review gateway selected by the repo config. It is
// connected on first use and reused for the rest of the command.
func (c *Context) Gateway() (review.Gateway, error) {
	c.gatewayOnce.Do(func() {
		c.gateway, c.gatewayErr = c.gatewayFactory(c)
	})
	return c.gateway, c.gatewayErr
}

func connectGateway(c *Context) (review.Gateway, error) {
	if c.Config.ReviewTool == config.ReviewToolNone || c.Config.ReviewTool == "" {
		return review.None{}, nil
	}
	if c.Repository == nil {
		return nil, fmt.Errorf("review tool %q needs a repository with remotes", c.Config.ReviewTool)
	}
	return review.New(c, c.Config, c.Repository, c.Repo.Port())
}

// GetContext opens the repository containing the working directory, loads
// its config and returns a context for one command.
func GetContext(ctx context.Context, splog *tui.Splog) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return GetContextAt(ctx, wd, splog)
}

// GetContextAt is GetContext for the repository containing dir
func GetContextAt(ctx context.Context, dir string, splog *tui.Splog) (*Context, error) {
	repository, err := git.OpenRepository(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(repository.GitDir())
	if err != nil {
		return nil, err
	}

	repo := git.NewRepo(git.NewCommandRunner(repository.Root()))
	c := NewContext(ctx, repo, splog)
	c.Repository = repository
	c.Config = cfg
	c.RepoRoot = repository.Root()
	c.GitDir = repository.GitDir()
	return c, nil
}
