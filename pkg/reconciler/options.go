package reconciler

import (
	"fmt"

	"github.com/talentops/rolecheck/pkg/errors"
	"github.com/talentops/rolecheck/pkg/similarity"
)

// Threshold bounds and default. A fuzzy or partial match must score at
// least the threshold to be accepted.
const (
	MinThreshold     = 0
	MaxThreshold     = 100
	DefaultThreshold = 80
)

// options configures a reconciler.
type options struct {
	threshold     int
	partial       bool
	scorer        similarity.Scorer
	partialScorer similarity.Scorer
}

func defaultOptions() *options {
	return &options{
		threshold:     DefaultThreshold,
		partial:       true,
		scorer:        similarity.NewLevenshtein(),
		partialScorer: similarity.NewTokenCoverage(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithThreshold sets the minimum similarity score for fuzzy and
// partial matches. Values outside [0, 100] are rejected.
func WithThreshold(threshold int) Option {
	return func(o *options) error {
		if threshold < MinThreshold || threshold > MaxThreshold {
			return errors.NewConfigError("fuzzy_threshold",
				fmt.Sprintf("must be between %d and %d, got %d", MinThreshold, MaxThreshold, threshold), nil)
		}
		o.threshold = threshold
		return nil
	}
}

// WithPartialMatching toggles the token-coverage tier for
// abbreviation-style candidates.
func WithPartialMatching(enabled bool) Option {
	return func(o *options) error {
		o.partial = enabled
		return nil
	}
}

// WithScorer sets the similarity strategy for the fuzzy tier.
func WithScorer(scorer similarity.Scorer) Option {
	return func(o *options) error {
		if scorer == nil {
			return &errors.ValidationError{
				Field:   "scorer",
				Message: "cannot be nil",
			}
		}
		o.scorer = scorer
		return nil
	}
}

// WithPartialScorer sets the coverage strategy for the partial tier.
func WithPartialScorer(scorer similarity.Scorer) Option {
	return func(o *options) error {
		if scorer == nil {
			return &errors.ValidationError{
				Field:   "partial_scorer",
				Message: "cannot be nil",
			}
		}
		o.partialScorer = scorer
		return nil
	}
}
