// Package normalize maps raw role labels to a canonical comparison form.
// Normalization is pure and deterministic: the same input and synonym
// table always produce the same output, and applying the normalizer to
// its own output is a no-op.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalizer converts raw labels into their canonical comparison form.
type Normalizer struct {
	synonyms      Synonyms
	caseSensitive bool
	folder        cases.Caser
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSynonyms sets the token expansion table. The table is compiled
// against the normalizer's own pipeline so lookups stay deterministic
// regardless of how the caller wrote the keys.
func WithSynonyms(s Synonyms) Option {
	return func(n *Normalizer) {
		n.synonyms = s
	}
}

// WithCaseSensitive disables the case-folding step. All other
// normalization still applies.
func WithCaseSensitive(enabled bool) Option {
	return func(n *Normalizer) {
		n.caseSensitive = enabled
	}
}

// New creates a Normalizer with options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		folder: cases.Fold(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.synonyms = n.synonyms.compile(n)
	return n
}

// Apply normalizes a raw label. Steps, in order: trim, case-fold,
// strip punctuation other than hyphen and slash, tokenize on
// whitespace/hyphen/slash, expand synonym tokens, rejoin with single
// spaces. Empty and whitespace-only input normalizes to "".
func (n *Normalizer) Apply(raw string) string {
	return strings.Join(n.Tokens(raw), " ")
}

// Tokens returns the normalized token sequence of a raw label.
// The joined tokens are exactly the Apply output.
func (n *Normalizer) Tokens(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if !n.caseSensitive {
		s = n.folder.String(s)
	}

	s = stripPunctuation(s)

	tokens := splitTokens(s)
	if n.synonyms == nil {
		return tokens
	}

	expanded := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if exp, ok := n.synonyms[tok]; ok {
			expanded = append(expanded, strings.Fields(exp)...)
			continue
		}
		expanded = append(expanded, tok)
	}
	return expanded
}

// stripPunctuation removes everything that is not a letter, digit,
// whitespace, hyphen, or slash. Hyphen and slash often carry meaning
// ("UI/UX", "co-founder") and survive until tokenization.
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' || r == '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitTokens splits on whitespace runs, hyphens, and slashes,
// dropping empties so "UI/UX" and "senior--dev" tokenize cleanly.
func splitTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
