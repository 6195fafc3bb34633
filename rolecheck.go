// Package rolecheck reconciles a canonical set of role names against a
// noisy, externally extracted candidate set. Every candidate is
// classified as an exact match, a fuzzy match, or incorrect, and
// canonical roles nothing matched are reported missing.
//
// The package is a thin facade over pkg/normalize, pkg/roles, and
// pkg/reconciler for the common one-call case:
//
//	result, err := rolecheck.Compare(ctx, xmlRoles, extractedRoles,
//	    rolecheck.WithThreshold(85),
//	    rolecheck.WithSynonyms(normalize.DefaultSynonyms()),
//	)
package rolecheck

import (
	"context"

	"github.com/talentops/rolecheck/pkg/normalize"
	"github.com/talentops/rolecheck/pkg/reconciler"
	"github.com/talentops/rolecheck/pkg/roles"
	"github.com/talentops/rolecheck/pkg/similarity"
)

// config collects normalization and reconciliation settings for a run.
type config struct {
	synonyms      normalize.Synonyms
	caseSensitive bool
	recOpts       []reconciler.Option
}

// Option configures a Compare call.
type Option func(*config)

// WithSynonyms sets the abbreviation expansion table used during
// normalization.
func WithSynonyms(s normalize.Synonyms) Option {
	return func(c *config) {
		c.synonyms = s
	}
}

// WithCaseSensitive disables case folding during normalization.
func WithCaseSensitive(enabled bool) Option {
	return func(c *config) {
		c.caseSensitive = enabled
	}
}

// WithThreshold sets the minimum similarity score for fuzzy and
// partial matches (0-100).
func WithThreshold(threshold int) Option {
	return func(c *config) {
		c.recOpts = append(c.recOpts, reconciler.WithThreshold(threshold))
	}
}

// WithPartialMatching toggles the token-coverage matching tier.
func WithPartialMatching(enabled bool) Option {
	return func(c *config) {
		c.recOpts = append(c.recOpts, reconciler.WithPartialMatching(enabled))
	}
}

// WithScorer swaps the similarity strategy for the fuzzy tier.
func WithScorer(scorer similarity.Scorer) Option {
	return func(c *config) {
		c.recOpts = append(c.recOpts, reconciler.WithScorer(scorer))
	}
}

// Compare normalizes both label collections and reconciles them. It is
// a pure function of its arguments: no global state, no I/O, and safe
// to call concurrently for independent runs.
func Compare(ctx context.Context, canonical, candidates []string, opts ...Option) (*reconciler.Result, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	rec, err := reconciler.New(c.recOpts...)
	if err != nil {
		return nil, err
	}

	normOpts := []normalize.Option{}
	if c.synonyms != nil {
		normOpts = append(normOpts, normalize.WithSynonyms(c.synonyms))
	}
	if c.caseSensitive {
		normOpts = append(normOpts, normalize.WithCaseSensitive(true))
	}
	n := normalize.New(normOpts...)

	return rec.Reconcile(ctx,
		roles.NewCanonicalSet(canonical, n),
		roles.NewCandidateSet(candidates, n),
	)
}
