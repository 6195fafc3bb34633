package rolecheck_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/rolecheck"
	"github.com/talentops/rolecheck/pkg/normalize"
	"github.com/talentops/rolecheck/pkg/similarity"
)

func TestCompare(t *testing.T) {
	result, err := rolecheck.Compare(context.Background(),
		[]string{"Software Engineer", "Project Manager", "QA Lead"},
		[]string{"Software Engineer", "Project Managr", "Sales Rep"},
	)
	require.NoError(t, err)

	assert.Len(t, result.Matched, 1)
	assert.Len(t, result.Fuzzy, 1)
	assert.Len(t, result.Incorrect, 1)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "QA Lead", result.Missing[0].Raw)
	assert.False(t, result.IsValid())
}

func TestCompareWithSynonyms(t *testing.T) {
	result, err := rolecheck.Compare(context.Background(),
		[]string{"Software Engineer"},
		[]string{"SW Eng"},
		rolecheck.WithSynonyms(normalize.Synonyms{"sw": "software", "eng": "engineer"}),
	)
	require.NoError(t, err)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, 100, result.Matched[0].Score)
}

func TestCompareInvalidThreshold(t *testing.T) {
	_, err := rolecheck.Compare(context.Background(), nil, nil, rolecheck.WithThreshold(150))
	assert.Error(t, err)
}

func TestCompareCustomScorer(t *testing.T) {
	// A scorer that never matches pushes everything non-exact to incorrect.
	never := similarity.ScorerFunc(func(a, b string) int { return 0 })

	result, err := rolecheck.Compare(context.Background(),
		[]string{"Manager"},
		[]string{"Managar"},
		rolecheck.WithScorer(never),
		rolecheck.WithPartialMatching(false),
	)
	require.NoError(t, err)
	assert.Len(t, result.Incorrect, 1)
}

func TestCompareCaseSensitive(t *testing.T) {
	result, err := rolecheck.Compare(context.Background(),
		[]string{"manager"},
		[]string{"MANAGER"},
		rolecheck.WithCaseSensitive(true),
		rolecheck.WithPartialMatching(false),
		rolecheck.WithThreshold(100),
	)
	require.NoError(t, err)
	assert.Empty(t, result.Matched)
	assert.Len(t, result.Incorrect, 1)
}
