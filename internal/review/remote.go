package review

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	gqerrors "gq.dev/gq/internal/errors"
	"gq.dev/gq/internal/git"
)

// RemoteInfo is the hosting location parsed from a git remote URL
type RemoteInfo struct {
	Host  string
	Owner string
	Repo  string
}

// ParseRemoteURL extracts host, owner and repo from a remote URL. Both
// github.com and GitHub Enterprise hosts are accepted:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.example.com:2222/owner/repo.git
func ParseRemoteURL(remoteURL string) (*RemoteInfo, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	raw = strings.TrimSuffix(raw, ".git")

	var host, path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid remote URL %q: %w", remoteURL, err)
		}
		host, path = u.Hostname(), u.Path
	case strings.Contains(raw, "@"):
		// scp-like syntax: user@host:owner/repo
		hostPath := raw[strings.Index(raw, "@")+1:]
		sep := strings.IndexAny(hostPath, ":/")
		if sep < 0 {
			return nil, fmt.Errorf("invalid SSH remote URL %q: missing path", remoteURL)
		}
		host, path = hostPath[:sep], hostPath[sep+1:]
	default:
		return nil, fmt.Errorf("unsupported remote URL %q", remoteURL)
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if host == "" || len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return nil, fmt.Errorf("remote URL %q does not name an owner/repo", remoteURL)
	}
	return &RemoteInfo{
		Host:  host,
		Owner: parts[len(parts)-2],
		Repo:  parts[len(parts)-1],
	}, nil
}

// Credentials authenticate against the GitHub API. Either Token or
// User and Password are set.
type Credentials struct {
	Token    string
	User     string
	Password string
}

// LoadCredentials finds GitHub credentials in GITHUB_TOKEN, then in
// GITHUB_USER and GITHUB_PASS, then from the gh CLI run through port
func LoadCredentials(ctx context.Context, port git.Port) (*Credentials, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &Credentials{Token: token}, nil
	}

	user, pass := os.Getenv("GITHUB_USER"), os.Getenv("GITHUB_PASS")
	if user != "" && pass != "" {
		return &Credentials{User: user, Password: pass}, nil
	}

	if port != nil {
		out, err := port.Execute(ctx, "gh", "auth", "token")
		if token := strings.TrimSpace(out); err == nil && token != "" {
			return &Credentials{Token: token}, nil
		}
	}

	return nil, fmt.Errorf("%w: no GitHub credentials (set GITHUB_TOKEN or run `gh auth login`)", gqerrors.ErrReviewServiceUnavailable)
}

// HTTPClient returns an HTTP client that authenticates every request
func (c *Credentials) HTTPClient(ctx context.Context) *http.Client {
	if c.Token != "" {
		return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token}))
	}
	transport := &github.BasicAuthTransport{Username: c.User, Password: c.Password}
	return transport.Client()
}

// NewGitHubClient creates a go-github client for the remote's host.
// Hosts other than github.com are treated as GitHub Enterprise.
func NewGitHubClient(ctx context.Context, info *RemoteInfo, creds *Credentials) (*github.Client, error) {
	client := github.NewClient(creds.HTTPClient(ctx))
	if info.Host == "github.com" {
		return client, nil
	}

	base := fmt.Sprintf("https://%s/", info.Host)
	client, err := client.WithEnterpriseURLs(base, base)
	if err != nil {
		return nil, fmt.Errorf("failed to configure GitHub Enterprise host %s: %w", info.Host, err)
	}
	return client, nil
}
