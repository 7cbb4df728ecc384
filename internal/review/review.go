package review

import (
	"context"
	"fmt"
)

// State is the lifecycle state of a review as gq sees it
type State int

const (
	// Pending is the zero value: mergeability or approval is not known yet
	Pending State = iota
	Approved
	Rejected
	Conflicted
	Merged
	Closed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	case Conflicted:
		return "Conflicted"
	case Merged:
		return "Merged"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Review is one code review for a branch
type Review struct {
	ID     string
	Branch string
	Base   string
	Title  string
	Body   string
	State  State
	URL    string
}

// Gateway is the interface to a code review service
type Gateway interface {
	// CreateReview opens a review proposing branch onto parent
	CreateReview(ctx context.Context, branch, parent, title, body string) (*Review, error)

	// ReviewsFor returns the open reviews whose head is branch
	ReviewsFor(ctx context.Context, branch string) ([]Review, error)

	// Review looks up a review by id. It returns nil, nil when there is none.
	Review(ctx context.Context, id string) (*Review, error)

	// Merge asks the service to merge r
	Merge(ctx context.Context, r Review) (*MergeRequest, error)

	// Reviews lists the open reviews of the repository
	Reviews(ctx context.Context) ([]Review, error)
}
