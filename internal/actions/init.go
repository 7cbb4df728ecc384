package actions

import (
	"gq.dev/gq/internal/config"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// InitOptions contains options for the init command. Empty fields are
// asked for.
type InitOptions struct {
	Remote     string
	ReviewTool string
	// Force reinitializes without asking
	Force bool
}

// InitAction writes the repository config
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	splog := ctx.Splog

	if config.Exists(ctx.GitDir) && !opts.Force {
		again, err := ctx.Prompter.Confirm("gq is already initialized - reinitialize?", false)
		if err != nil {
			return err
		}
		if !again {
			splog.Info(tui.ColorRed("Aborted initialization"))
			return nil
		}
	}

	splog.Info(tui.ColorGreen("Initializing gq..."))

	remote, err := selectRemote(ctx, opts.Remote)
	if err != nil {
		return err
	}
	tool := opts.ReviewTool
	if tool == "" {
		tools := config.ReviewTools()
		i, err := ctx.Prompter.Select("Select your review tool:", tools, 0)
		if err != nil {
			return err
		}
		tool = tools[i]
	}

	cfg := &config.RepoConfig{Remote: remote, ReviewTool: tool, Version: config.CurrentVersion}
	if err := config.Save(ctx.GitDir, cfg); err != nil {
		return err
	}
	ctx.Config = cfg

	splog.Info("  %s %s", tui.ColorGreen("Remote:"), tui.ColorBranch(remote))
	splog.Info("  %s %s", tui.ColorGreen("Review tool:"), tool)
	splog.Info("Initialized gq config")
	return nil
}

func selectRemote(ctx *runtime.Context, remote string) (string, error) {
	if remote != "" {
		return remote, nil
	}
	remotes, err := ctx.Repo.Remotes(ctx)
	if err != nil {
		return "", err
	}
	switch len(remotes) {
	case 0:
		ctx.Splog.Warn("No git remote found - using %s", config.DefaultRemote)
		return config.DefaultRemote, nil
	case 1:
		return remotes[0], nil
	}
	i, err := ctx.Prompter.Select("Select your remote:", remotes, 0)
	if err != nil {
		return "", err
	}
	return remotes[i], nil
}
