package review

import (
	"context"
	"fmt"

	"gq.dev/gq/internal/config"
	"gq.dev/gq/internal/git"
)

// RemoteURLResolver looks up the URL of a named git remote
type RemoteURLResolver interface {
	RemoteURL(remote string) (string, error)
}

// New returns the gateway selected by cfg. remotes resolves the configured
// remote's URL and port runs the gh CLI when no token is set in the environment.
func New(ctx context.Context, cfg *config.RepoConfig, remotes RemoteURLResolver, port git.Port) (Gateway, error) {
	switch cfg.ReviewTool {
	case "", config.ReviewToolNone:
		return None{}, nil
	case config.ReviewToolGitHub:
		remoteURL, err := remotes.RemoteURL(cfg.Remote)
		if err != nil {
			return nil, fmt.Errorf("failed to get remote URL: %w", err)
		}
		info, err := ParseRemoteURL(remoteURL)
		if err != nil {
			return nil, err
		}
		creds, err := LoadCredentials(ctx, port)
		if err != nil {
			return nil, err
		}
		client, err := NewGitHubClient(ctx, info, creds)
		if err != nil {
			return nil, err
		}
		return NewGitHub(client, info.Owner, info.Repo), nil
	default:
		return nil, fmt.Errorf("unknown review tool %q", cfg.ReviewTool)
	}
}
