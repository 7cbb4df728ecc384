package review

import (
	"context"

	gqerrors "gq.dev/gq/internal/errors"
)

// None is the gateway used when no review service is configured
type None struct{}

var _ Gateway = None{}

func (None) CreateReview(context.Context, string, string, string, string) (*Review, error) {
	return nil, gqerrors.ErrReviewServiceUnavailable
}

func (None) ReviewsFor(context.Context, string) ([]Review, error) {
	return nil, nil
}

func (None) Review(context.Context, string) (*Review, error) {
	return nil, nil
}

func (None) Merge(context.Context, Review) (*MergeRequest, error) {
	return nil, gqerrors.ErrReviewServiceUnavailable
}

func (None) Reviews(context.Context) ([]Review, error) {
	return nil, nil
}
