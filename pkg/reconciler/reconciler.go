// Package reconciler classifies candidate role labels against a
// canonical set. Each candidate lands in exactly one of three
// categories: matched (exact on normalized forms), fuzzy (similarity
// or token coverage meeting the threshold), or incorrect. Canonical
// entries left unconsumed are reported as missing.
//
// Assignment is greedy in candidate order: once a candidate consumes a
// canonical entry the entry leaves the pool, even if a later candidate
// would have scored higher against it. This is deliberately
// order-dependent rather than a maximum-weight matching; the run is
// O(candidates x canonical) and byte-for-byte deterministic for a
// fixed input.
package reconciler

import (
	"context"
	"time"

	"github.com/talentops/rolecheck/pkg/errors"
	"github.com/talentops/rolecheck/pkg/logging"
	"github.com/talentops/rolecheck/pkg/roles"
	"github.com/talentops/rolecheck/pkg/similarity"
)

// Reconciler classifies a candidate set against a canonical set.
type Reconciler interface {
	// Reconcile runs one classification pass. It either fully
	// succeeds or fails without a partial result.
	Reconcile(ctx context.Context, canonical *roles.CanonicalSet, candidates *roles.CandidateSet) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	threshold     int
	partial       bool
	scorer        similarity.Scorer
	partialScorer similarity.Scorer
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &reconciler{
		threshold:     options.threshold,
		partial:       options.partial,
		scorer:        options.scorer,
		partialScorer: options.partialScorer,
	}, nil
}

// Reconcile classifies every candidate in input order through three
// tiers: exact, fuzzy, then partial (when enabled). Matched and fuzzy
// candidates consume their canonical entry; whatever remains in the
// pool afterwards is missing, in original canonical order.
func (r *reconciler) Reconcile(ctx context.Context, canonical *roles.CanonicalSet, candidates *roles.CandidateSet) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	if canonical == nil {
		return nil, &errors.ValidationError{Field: "canonical", Message: "cannot be nil"}
	}
	if candidates == nil {
		return nil, &errors.ValidationError{Field: "candidates", Message: "cannot be nil"}
	}

	result := NewResult()
	result.Metadata.Threshold = r.threshold
	result.Metadata.PartialMatching = r.partial
	result.Metadata.DroppedCanonical = canonical.Dropped()
	result.Metadata.DroppedCandidates = candidates.Dropped()

	pool := newPool(canonical.Labels())

	for _, cand := range candidates.Labels() {
		record, consumedIdx := r.classify(cand, pool)
		if consumedIdx >= 0 {
			pool.consume(consumedIdx)
		}

		switch record.Category {
		case CategoryMatched:
			logger.Debug().
				Str("candidate", cand.Raw).
				Str("canonical", record.Canonical.Raw).
				Msg("Exact match")
			result.Matched = append(result.Matched, record)
		case CategoryFuzzy:
			logger.Debug().
				Str("candidate", cand.Raw).
				Str("canonical", record.Canonical.Raw).
				Int("score", record.Score).
				Msg("Fuzzy match")
			result.Fuzzy = append(result.Fuzzy, record)
		case CategoryIncorrect:
			logger.Debug().
				Str("candidate", cand.Raw).
				Msg("No match")
			result.Incorrect = append(result.Incorrect, record)
		}
	}

	result.Missing = pool.remaining()
	result.finalize(canonical.Len(), candidates.Len(), start)

	logger.Info().
		Int("canonical", canonical.Len()).
		Int("candidates", candidates.Len()).
		Int("matched", len(result.Matched)).
		Int("fuzzy", len(result.Fuzzy)).
		Int("incorrect", len(result.Incorrect)).
		Int("missing", len(result.Missing)).
		Msg("Reconciliation complete")

	return result, nil
}

// classify runs the matching tiers for one candidate. It returns the
// record and the pool index consumed, or -1 when no entry was consumed.
func (r *reconciler) classify(cand roles.Label, pool *canonicalPool) (MatchRecord, int) {
	// Tier 1: exact match on normalized forms, regardless of threshold.
	if idx, ok := pool.exact(cand.Normalized); ok {
		label := pool.label(idx)
		return MatchRecord{
			Candidate: cand,
			Canonical: &label,
			Category:  CategoryMatched,
			Score:     similarity.Exact,
		}, idx
	}

	// Tier 2: best edit-distance similarity among unconsumed entries,
	// ties broken by earliest canonical index.
	if idx, score := pool.best(cand.Normalized, r.scorer); idx >= 0 && score >= r.threshold {
		label := pool.label(idx)
		return MatchRecord{
			Candidate: cand,
			Canonical: &label,
			Category:  CategoryFuzzy,
			Score:     score,
		}, idx
	}

	// Tier 3: token coverage for abbreviation-style candidates.
	if r.partial {
		if idx, score := pool.best(cand.Normalized, r.partialScorer); idx >= 0 && score >= r.threshold {
			label := pool.label(idx)
			return MatchRecord{
				Candidate: cand,
				Canonical: &label,
				Category:  CategoryFuzzy,
				Score:     score,
			}, idx
		}
	}

	return MatchRecord{
		Candidate: cand,
		Category:  CategoryIncorrect,
	}, -1
}

// canonicalPool tracks which canonical entries are still available.
// The pool is call-local: concurrent Reconcile calls never share one.
type canonicalPool struct {
	labels   []roles.Label
	consumed []bool
	index    map[string]int // normalized form -> position
}

func newPool(labels []roles.Label) *canonicalPool {
	p := &canonicalPool{
		labels:   labels,
		consumed: make([]bool, len(labels)),
		index:    make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		p.index[l.Normalized] = i
	}
	return p
}

func (p *canonicalPool) label(i int) roles.Label {
	return p.labels[i]
}

func (p *canonicalPool) consume(i int) {
	p.consumed[i] = true
}

// exact returns the position of an unconsumed entry with the given
// normalized form.
func (p *canonicalPool) exact(normalized string) (int, bool) {
	idx, ok := p.index[normalized]
	if !ok || p.consumed[idx] {
		return -1, false
	}
	return idx, true
}

// best scores the candidate against every unconsumed entry and returns
// the position and score of the highest. Strictly-greater comparison
// makes ties resolve to the earliest canonical index. Returns -1 when
// the pool is exhausted.
func (p *canonicalPool) best(normalized string, scorer similarity.Scorer) (int, int) {
	bestIdx, bestScore := -1, -1
	for i, l := range p.labels {
		if p.consumed[i] {
			continue
		}
		if score := scorer.Score(normalized, l.Normalized); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}

// remaining returns unconsumed entries in original canonical order.
func (p *canonicalPool) remaining() []roles.Label {
	out := []roles.Label{}
	for i, l := range p.labels {
		if !p.consumed[i] {
			out = append(out, l)
		}
	}
	return out
}
