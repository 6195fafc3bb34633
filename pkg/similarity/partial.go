package similarity

import "strings"

// TokenCoverage scores how much of the candidate is covered by the
// canonical entry, for abbreviation-style matches where edit distance
// falls short ("sw eng" against "software engineer"). A candidate
// token is covered when it equals a canonical token or either is a
// prefix of the other; each canonical token covers at most one
// candidate token. The score is the covered fraction scaled to 0-100.
type TokenCoverage struct{}

// NewTokenCoverage creates the partial-match scorer.
func NewTokenCoverage() *TokenCoverage {
	return &TokenCoverage{}
}

// Score returns the coverage of a's tokens by b's tokens in [0, 100].
func (*TokenCoverage) Score(a, b string) int {
	if a == b {
		return Exact
	}

	want := strings.Fields(a)
	have := strings.Fields(b)
	if len(want) == 0 || len(have) == 0 {
		return 0
	}

	used := make([]bool, len(have))
	covered := 0
	for _, w := range want {
		for i, h := range have {
			if used[i] || !tokensAlign(w, h) {
				continue
			}
			used[i] = true
			covered++
			break
		}
	}

	return (100*covered*2 + len(want)) / (2 * len(want))
}

// tokensAlign reports whether one token abbreviates the other.
func tokensAlign(a, b string) bool {
	return strings.HasPrefix(b, a) || strings.HasPrefix(a, b)
}
