package reconciler_test

import (
	"context"
	"testing"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/talentops/rolecheck/pkg/errors"
	"github.com/talentops/rolecheck/pkg/normalize"
	"github.com/talentops/rolecheck/pkg/reconciler"
	"github.com/talentops/rolecheck/pkg/roles"
)

// run reconciles raw label slices with a fresh reconciler, failing the
// test on any construction error.
func run(t *testing.T, canonical, candidates []string, opts ...reconciler.Option) *reconciler.Result {
	t.Helper()
	return runWith(t, normalize.New(), canonical, candidates, opts...)
}

func runWith(t *testing.T, n *normalize.Normalizer, canonical, candidates []string, opts ...reconciler.Option) *reconciler.Result {
	t.Helper()

	rec, err := reconciler.New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := rec.Reconcile(context.Background(),
		roles.NewCanonicalSet(canonical, n),
		roles.NewCandidateSet(candidates, n),
	)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	return result
}

func missingRaws(result *reconciler.Result) []string {
	out := []string{}
	for _, l := range result.Missing {
		out = append(out, l.Raw)
	}
	return out
}

func TestExactMatch(t *testing.T) {
	result := run(t,
		[]string{"Software Engineer", "Project Manager"},
		[]string{"Software Engineer"},
	)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 matched, got %d", len(result.Matched))
	}
	rec := result.Matched[0]
	if rec.Candidate.Raw != "Software Engineer" || rec.Canonical.Raw != "Software Engineer" {
		t.Errorf("unexpected match pair: %q -> %q", rec.Candidate.Raw, rec.Canonical.Raw)
	}
	if rec.Score != 100 {
		t.Errorf("exact match score = %d, want 100", rec.Score)
	}
	assert.Equal(t, []string{"Project Manager"}, missingRaws(result))
	assert.Empty(t, result.Fuzzy)
	assert.Empty(t, result.Incorrect)
}

func TestFuzzyMatch(t *testing.T) {
	result := run(t,
		[]string{"Manager"},
		[]string{"Managar"},
		reconciler.WithThreshold(80),
	)

	require.Len(t, result.Fuzzy, 1)
	rec := result.Fuzzy[0]
	assert.Equal(t, "Managar", rec.Candidate.Raw)
	assert.Equal(t, "Manager", rec.Canonical.Raw)
	assert.GreaterOrEqual(t, rec.Score, 80)
	assert.Empty(t, result.Missing)
}

func TestIncorrectCandidate(t *testing.T) {
	result := run(t,
		[]string{"Software Engineer"},
		[]string{"Marketing Lead"},
		reconciler.WithThreshold(80),
	)

	require.Len(t, result.Incorrect, 1)
	assert.Equal(t, "Marketing Lead", result.Incorrect[0].Candidate.Raw)
	assert.Nil(t, result.Incorrect[0].Canonical)
	assert.Equal(t, []string{"Software Engineer"}, missingRaws(result))
	assert.False(t, result.IsValid())
}

func TestGreedyConsumption(t *testing.T) {
	// The earlier fuzzy candidate consumes the only canonical entry;
	// the later exact duplicate finds an empty pool.
	result := run(t,
		[]string{"Manager"},
		[]string{"Managar", "Manager"},
	)

	require.Len(t, result.Fuzzy, 1)
	assert.Equal(t, "Managar", result.Fuzzy[0].Candidate.Raw)
	require.Len(t, result.Incorrect, 1)
	assert.Equal(t, "Manager", result.Incorrect[0].Candidate.Raw)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestSynonymExpansionMatchesExactly(t *testing.T) {
	n := normalize.New(normalize.WithSynonyms(normalize.Synonyms{
		"sw":  "software",
		"eng": "engineer",
	}))

	result := runWith(t, n, []string{"Software Engineer"}, []string{"SW Eng"})

	require.Len(t, result.Matched, 1)
	assert.Equal(t, 100, result.Matched[0].Score)
	assert.Equal(t, "Software Engineer", result.Matched[0].Canonical.Raw)
}

func TestPartialTier(t *testing.T) {
	t.Run("abbreviation covered without synonyms", func(t *testing.T) {
		result := run(t, []string{"Software Engineer"}, []string{"SW Eng"})

		require.Len(t, result.Fuzzy, 1)
		assert.Equal(t, "Software Engineer", result.Fuzzy[0].Canonical.Raw)
		assert.GreaterOrEqual(t, result.Fuzzy[0].Score, 80)
	})

	t.Run("disabled partial matching drops the tier", func(t *testing.T) {
		result := run(t, []string{"Software Engineer"}, []string{"SW Eng"},
			reconciler.WithPartialMatching(false))

		assert.Empty(t, result.Fuzzy)
		require.Len(t, result.Incorrect, 1)
	})

	t.Run("coverage below threshold is incorrect", func(t *testing.T) {
		result := run(t, []string{"Software Engineer"}, []string{"sw marketing brand lead"})

		require.Len(t, result.Incorrect, 1)
	})
}

func TestExactPrecedenceOverThreshold(t *testing.T) {
	// An exact normalized match is Matched with score 100 even when the
	// fuzzy threshold is maximal.
	result := run(t, []string{"Manager"}, []string{"MANAGER!"},
		reconciler.WithThreshold(100))

	require.Len(t, result.Matched, 1)
	assert.Equal(t, 100, result.Matched[0].Score)
}

func TestFuzzyTieBreaksToEarliestCanonical(t *testing.T) {
	// Both canonical entries are one edit away; the earlier one wins.
	result := run(t, []string{"Managir", "Managur"}, []string{"Managar"})

	require.Len(t, result.Fuzzy, 1)
	assert.Equal(t, "Managir", result.Fuzzy[0].Canonical.Raw)
	assert.Equal(t, []string{"Managur"}, missingRaws(result))
}

func TestDeterminism(t *testing.T) {
	canonical := []string{"Software Engineer", "Project Manager", "QA Lead", "Designer"}
	candidates := []string{"Sofware Engineer", "QA Lead", "Project Managr", "Marketing", "Designer", "Designer"}

	// Timing metadata necessarily differs between runs; everything
	// else must be identical.
	strip := func(r *reconciler.Result) *reconciler.Result {
		r.Metadata.GeneratedAt = utc.Time{}
		r.Metadata.Duration = 0
		return r
	}

	first := strip(run(t, canonical, candidates))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, strip(run(t, canonical, candidates)))
	}
}

func TestPartitionCompleteness(t *testing.T) {
	canonical := []string{"Software Engineer", "Project Manager", "QA Lead", "Designer", "Architect"}
	candidates := []string{"Sofware Engineer", "QA Lead", "qa lead", "Marketing", "Desiner", "SW Eng"}

	result := run(t, canonical, candidates)

	total := len(result.Matched) + len(result.Fuzzy) + len(result.Incorrect)
	assert.Equal(t, len(candidates), total)

	// Every canonical entry is consumed at most once or missing exactly once.
	consumed := map[string]int{}
	for _, rec := range result.Matched {
		consumed[rec.Canonical.Normalized]++
	}
	for _, rec := range result.Fuzzy {
		consumed[rec.Canonical.Normalized]++
	}
	for _, l := range result.Missing {
		consumed[l.Normalized]++
	}
	assert.Len(t, consumed, len(canonical))
	for norm, n := range consumed {
		assert.Equal(t, 1, n, "canonical %q consumed %d times", norm, n)
	}
}

func TestThresholdMonotonicity(t *testing.T) {
	canonical := []string{"Software Engineer", "Project Manager", "QA Lead"}
	candidates := []string{"Sofware Engineer", "Project Managr", "QA Led", "Marketing Lead"}

	prevFuzzy := -1
	prevIncorrect := -1
	for i, threshold := range []int{0, 40, 60, 80, 95, 100} {
		result := run(t, canonical, candidates, reconciler.WithThreshold(threshold))

		fuzzy := len(result.Fuzzy)
		incorrect := len(result.Incorrect)
		if i > 0 {
			assert.LessOrEqual(t, fuzzy, prevFuzzy, "fuzzy count grew when threshold rose to %d", threshold)
			assert.GreaterOrEqual(t, incorrect, prevIncorrect, "incorrect count shrank when threshold rose to %d", threshold)
		}
		prevFuzzy, prevIncorrect = fuzzy, incorrect
	}
}

func TestOrderSensitivity(t *testing.T) {
	canonical := []string{"Manager"}
	forward := run(t, canonical, []string{"Managar", "Manager"})
	reversed := run(t, canonical, []string{"Manager", "Managar"})

	// Assignment differs but the classified total does not.
	forwardTotal := len(forward.Matched) + len(forward.Fuzzy) + len(forward.Incorrect)
	reversedTotal := len(reversed.Matched) + len(reversed.Fuzzy) + len(reversed.Incorrect)
	assert.Equal(t, forwardTotal, reversedTotal)

	// Reversed order lets the exact candidate win.
	require.Len(t, reversed.Matched, 1)
	assert.Equal(t, "Manager", reversed.Matched[0].Candidate.Raw)
	require.Len(t, reversed.Incorrect, 1)
	assert.Equal(t, "Managar", reversed.Incorrect[0].Candidate.Raw)
}

func TestEmptySets(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		result := run(t, []string{"Engineer"}, nil)
		assert.Equal(t, []string{"Engineer"}, missingRaws(result))
		assert.True(t, result.IsValid())
	})

	t.Run("no canonical entries", func(t *testing.T) {
		result := run(t, nil, []string{"Engineer"})
		require.Len(t, result.Incorrect, 1)
		assert.Empty(t, result.Missing)
	})

	t.Run("both empty", func(t *testing.T) {
		result := run(t, nil, nil)
		assert.True(t, result.IsValid())
		assert.Equal(t, 0, result.Metadata.Stats.CandidateCount)
	})
}

func TestDroppedEmptyLabelsSurfacedInMetadata(t *testing.T) {
	result := run(t,
		[]string{"Engineer", "  ", "!!"},
		[]string{"", "Engineer", "???"},
	)

	assert.Equal(t, 2, result.Metadata.DroppedCanonical)
	assert.Equal(t, 2, result.Metadata.DroppedCandidates)
	// Dropped labels never appear as outcomes.
	assert.Empty(t, result.Incorrect)
	assert.Empty(t, result.Missing)
}

func TestStatistics(t *testing.T) {
	result := run(t,
		[]string{"Software Engineer", "Project Manager", "QA Lead", "Designer"},
		[]string{"Software Engineer", "Project Managr", "Marketing", "Sales"},
	)

	s := result.Metadata.Stats
	assert.Equal(t, 4, s.CanonicalCount)
	assert.Equal(t, 4, s.CandidateCount)
	assert.Equal(t, 1, s.MatchedCount)
	assert.Equal(t, 1, s.FuzzyCount)
	assert.Equal(t, 2, s.IncorrectCount)
	assert.Equal(t, 2, s.MissingCount)
	assert.InDelta(t, 25.0, s.MatchedPercent, 0.001)
	assert.InDelta(t, 50.0, s.MatchRate, 0.001)
	assert.InDelta(t, 50.0, s.MissingPercent, 0.001)
}

func TestInvalidThreshold(t *testing.T) {
	for _, threshold := range []int{-1, 101, 1000} {
		_, err := reconciler.New(reconciler.WithThreshold(threshold))
		if err == nil {
			t.Fatalf("expected error for threshold %d", threshold)
		}
		assert.True(t, pkgerrors.IsConfigError(err))
	}
}

func TestNilScorerRejected(t *testing.T) {
	_, err := reconciler.New(reconciler.WithScorer(nil))
	assert.True(t, pkgerrors.IsValidationError(err))

	_, err = reconciler.New(reconciler.WithPartialScorer(nil))
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestNilSetsRejected(t *testing.T) {
	rec, err := reconciler.New()
	require.NoError(t, err)

	n := normalize.New()

	_, err = rec.Reconcile(context.Background(), nil, roles.NewCandidateSet(nil, n))
	assert.True(t, pkgerrors.IsValidationError(err))

	_, err = rec.Reconcile(context.Background(), roles.NewCanonicalSet(nil, n), nil)
	assert.True(t, pkgerrors.IsValidationError(err))
}
