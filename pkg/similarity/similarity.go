// Package similarity scores how alike two normalized labels are on a
// 0-100 scale, where 100 means identical and 0 means nothing in
// common. The Scorer interface keeps the algorithm swappable without
// touching assignment logic.
package similarity

// Exact is the score of an identical pair.
const Exact = 100

// Scorer computes a similarity score between two strings.
type Scorer interface {
	// Score returns a similarity in [0, 100].
	Score(a, b string) int
}

// ScorerFunc allows plain functions to implement Scorer.
type ScorerFunc func(a, b string) int

// Score implements the Scorer interface.
func (f ScorerFunc) Score(a, b string) int {
	return f(a, b)
}
