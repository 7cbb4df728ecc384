package review

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v62/github"

	gqerrors "gq.dev/gq/internal/errors"
)

const (
	prStateOpen   = "open"
	prStateClosed = "closed"

	mergeableStateClean = "clean"

	reviewChangesRequested = "CHANGES_REQUESTED"
	reviewApproved         = "APPROVED"
	reviewDismissed        = "DISMISSED"
)

// GitHub is a Gateway backed by GitHub pull requests
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	sleep  SleepFunc
}

var _ Gateway = (*GitHub)(nil)

// GitHubOption configures a GitHub gateway
type GitHubOption func(*GitHub)

// WithSleep replaces the wait used between mergeability polls
func WithSleep(sleep SleepFunc) GitHubOption {
	return func(g *GitHub) {
		g.sleep = sleep
	}
}

// NewGitHub creates a gateway for owner/repo
func NewGitHub(client *github.Client, owner, repo string, opts ...GitHubOption) *GitHub {
	g := &GitHub{client: client, owner: owner, repo: repo, sleep: Sleep}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OwnerRepo returns the repository the gateway operates on
func (g *GitHub) OwnerRepo() (string, string) {
	return g.owner, g.repo
}

// CreateReview opens a pull request for branch against parent
func (g *GitHub) CreateReview(ctx context.Context, branch, parent, title, body string) (*Review, error) {
	pr, _, err := g.client.PullRequests.Create(ctx, g.owner, g.repo, &github.NewPullRequest{
		Title: github.String(title),
		Head:  github.String(branch),
		Base:  github.String(parent),
		Body:  github.String(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request for %s: %w", branch, err)
	}
	return g.toReview(ctx, pr)
}

// ReviewsFor returns the open pull requests whose head is branch
func (g *GitHub) ReviewsFor(ctx context.Context, branch string) ([]Review, error) {
	return g.list(ctx, &github.PullRequestListOptions{
		Head:        fmt.Sprintf("%s:%s", g.owner, branch),
		State:       prStateOpen,
		ListOptions: github.ListOptions{PerPage: 100},
	})
}

// Reviews returns the open pull requests of the repository
func (g *GitHub) Reviews(ctx context.Context) ([]Review, error) {
	return g.list(ctx, &github.PullRequestListOptions{
		State:       prStateOpen,
		ListOptions: github.ListOptions{PerPage: 100},
	})
}

// Review fetches a pull request by number
func (g *GitHub) Review(ctx context.Context, id string) (*Review, error) {
	number, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pr, _, err := g.client.PullRequests.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get PR #%d: %w", number, err)
	}
	return g.toReview(ctx, pr)
}

// Merge squash-merges the pull request behind r. A review that can no
// longer merge is returned as a failed request without calling the API.
func (g *GitHub) Merge(ctx context.Context, r Review) (*MergeRequest, error) {
	current, err := g.Review(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("review %s not found", r.ID)
	}
	if MergeStateFor(current.State) != MergePending {
		return NewMergeRequest(*current), nil
	}

	number, _ := parseID(current.ID)
	message := current.Title + "\n\n" + current.Body
	_, _, err = g.client.PullRequests.Merge(ctx, g.owner, g.repo, number, message, &github.PullRequestOptions{
		MergeMethod: "squash",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to merge PR #%d for branch %s: %w", number, current.Branch, err)
	}

	merged, err := g.Review(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if merged == nil {
		return nil, fmt.Errorf("review %s disappeared after merging", current.ID)
	}
	return NewMergeRequest(*merged), nil
}

func (g *GitHub) list(ctx context.Context, opts *github.PullRequestListOptions) ([]Review, error) {
	prs, _, err := g.client.PullRequests.List(ctx, g.owner, g.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	reviews := make([]Review, 0, len(prs))
	for _, pr := range prs {
		r, err := g.toReview(ctx, pr)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}
	return reviews, nil
}

func (g *GitHub) toReview(ctx context.Context, pr *github.PullRequest) (*Review, error) {
	pr, err := g.awaitMergeability(ctx, pr)
	if err != nil {
		return nil, err
	}
	state, err := g.stateOf(ctx, pr)
	if err != nil {
		return nil, err
	}
	return &Review{
		ID:     strconv.Itoa(pr.GetNumber()),
		Branch: pr.GetHead().GetRef(),
		Base:   pr.GetBase().GetRef(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		State:  state,
		URL:    pr.GetHTMLURL(),
	}, nil
}

// awaitMergeability re-fetches pr until GitHub has computed whether it can
// merge. GitHub computes this in the background, which can take minutes.
func (g *GitHub) awaitMergeability(ctx context.Context, pr *github.PullRequest) (*github.PullRequest, error) {
	for attempt := 0; ; attempt++ {
		settleMergeable(pr)
		if pr.Mergeable != nil {
			return pr, nil
		}
		if attempt >= MaxPollAttempts {
			return nil, gqerrors.NewMergeabilityUndeterminedError(strconv.Itoa(pr.GetNumber()))
		}
		if err := g.sleep(ctx, Backoff(attempt)); err != nil {
			return nil, err
		}

		fresh, _, err := g.client.PullRequests.Get(ctx, g.owner, g.repo, pr.GetNumber())
		if err != nil {
			return nil, fmt.Errorf("failed to refresh PR #%d: %w", pr.GetNumber(), err)
		}
		pr = fresh
	}
}

// settleMergeable fills in mergeability for pull requests that are done:
// merged ones clearly could merge, closed ones clearly cannot
func settleMergeable(pr *github.PullRequest) {
	switch {
	case pr.MergedAt != nil || pr.GetMerged():
		pr.Mergeable = github.Bool(true)
	case pr.ClosedAt != nil || pr.GetState() == prStateClosed:
		pr.Mergeable = github.Bool(false)
	}
}

func (g *GitHub) stateOf(ctx context.Context, pr *github.PullRequest) (State, error) {
	switch {
	case pr.GetDraft():
		return Pending, nil
	case pr.MergedAt != nil || pr.GetMerged():
		return Merged, nil
	case pr.GetState() == prStateClosed:
		return Closed, nil
	case !pr.GetMergeable():
		return Conflicted, nil
	case pr.GetMergeableState() == mergeableStateClean:
		return Approved, nil
	}

	reviews, _, err := g.client.PullRequests.ListReviews(ctx, g.owner, g.repo, pr.GetNumber(), &github.ListOptions{PerPage: 100})
	if err != nil {
		return Pending, fmt.Errorf("failed to list reviews for PR #%d: %w", pr.GetNumber(), err)
	}
	// the most recent decisive review wins; comments do not change the verdict
	for i := len(reviews) - 1; i >= 0; i-- {
		switch reviews[i].GetState() {
		case reviewChangesRequested:
			return Rejected, nil
		case reviewApproved, reviewDismissed:
			return Pending, nil
		}
	}
	return Pending, nil
}

func parseID(id string) (int, error) {
	number, err := strconv.Atoi(id)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("invalid review id %q", id)
	}
	return number, nil
}
