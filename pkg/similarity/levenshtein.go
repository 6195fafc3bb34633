package similarity

// Levenshtein scores strings by normalized edit distance:
// 100 * (1 - distance/maxLen), rounded to the nearest integer.
type Levenshtein struct{}

// NewLevenshtein creates the default edit-distance scorer.
func NewLevenshtein() *Levenshtein {
	return &Levenshtein{}
}

// Score returns the normalized Levenshtein similarity in [0, 100].
func (*Levenshtein) Score(a, b string) int {
	if a == b {
		return Exact
	}
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	dist := distance(ra, rb)

	// Round half up; dist <= maxLen so the result stays in range.
	return (100*(maxLen-dist)*2 + maxLen) / (2 * maxLen)
}

// distance computes the Levenshtein edit distance with a single-row DP
// table, O(len(a)*len(b)) time and O(len(b)) space.
func distance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
