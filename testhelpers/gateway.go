package testhelpers

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"gq.dev/gq/internal/review"
)

// FakeCreate records one CreateReview call
type FakeCreate struct {
	Branch, Parent, Title, Body string
}

// FakeGateway is an in-memory review.Gateway
type FakeGateway struct {
	// MergeOutcome is the state a review takes when merged, keyed by id.
	// Unlisted reviews merge cleanly.
	MergeOutcome map[string]review.State
	// Err, when set, fails every call
	Err error

	mu      sync.Mutex
	reviews []review.Review
	creates []FakeCreate
	merges  []string
	next    int
}

var _ review.Gateway = (*FakeGateway)(nil)

// NewFakeGateway creates an empty gateway
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{MergeOutcome: make(map[string]review.State), next: 1}
}

// Add stores r, assigning an id when it has none, and returns the stored copy
func (g *FakeGateway) Add(r review.Review) review.Review {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r.ID == "" {
		r.ID = strconv.Itoa(g.next)
		g.next++
	}
	if r.URL == "" {
		r.URL = "https://reviews.example/" + r.ID
	}
	g.reviews = append(g.reviews, r)
	return r
}

// Creates returns the recorded CreateReview calls
func (g *FakeGateway) Creates() []FakeCreate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]FakeCreate(nil), g.creates...)
}

// Merges returns the ids passed to Merge, in call order
func (g *FakeGateway) Merges() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.merges...)
}

func (g *FakeGateway) CreateReview(_ context.Context, branch, parent, title, body string) (*review.Review, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.mu.Lock()
	g.creates = append(g.creates, FakeCreate{Branch: branch, Parent: parent, Title: title, Body: body})
	g.mu.Unlock()
	r := g.Add(review.Review{Branch: branch, Base: parent, Title: title, Body: body})
	return &r, nil
}

func (g *FakeGateway) ReviewsFor(_ context.Context, branch string) ([]review.Review, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []review.Review
	for _, r := range g.reviews {
		if r.Branch == branch && r.State != review.Merged && r.State != review.Closed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (g *FakeGateway) Review(_ context.Context, id string) (*review.Review, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.reviews {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (g *FakeGateway) Merge(_ context.Context, r review.Review) (*review.MergeRequest, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.reviews {
		stored := &g.reviews[i]
		if stored.ID != r.ID {
			continue
		}
		if review.MergeStateFor(stored.State) != review.MergePending {
			return review.NewMergeRequest(*stored), nil
		}
		g.merges = append(g.merges, r.ID)
		stored.State = review.Merged
		if outcome, ok := g.MergeOutcome[r.ID]; ok {
			stored.State = outcome
		}
		return review.NewMergeRequest(*stored), nil
	}
	return nil, fmt.Errorf("review %s not found", r.ID)
}

func (g *FakeGateway) Reviews(_ context.Context) ([]review.Review, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []review.Review
	for _, r := range g.reviews {
		if r.State != review.Merged && r.State != review.Closed {
			out = append(out, r)
		}
	}
	return out, nil
}
