package normalize

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/talentops/rolecheck/pkg/errors"
)

// Synonyms maps a single token to its expansion, e.g. "sw" -> "software".
// Expansions may contain several words ("qa" -> "quality assurance").
type Synonyms map[string]string

// DefaultSynonyms returns the built-in abbreviation table covering the
// most common job-title shorthand.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		"mgr":  "manager",
		"sr":   "senior",
		"jr":   "junior",
		"sw":   "software",
		"hw":   "hardware",
		"eng":  "engineer",
		"dev":  "developer",
		"qa":   "quality assurance",
		"hr":   "human resources",
		"vp":   "vice president",
		"asst": "assistant",
		"dir":  "director",
	}
}

// LoadSynonyms reads a synonym table from a YAML file mapping token to
// expansion.
func LoadSynonyms(path string) (Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var s Synonyms
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return s, nil
}

// compile normalizes keys and expansions through the owning
// normalizer's pipeline (sans synonym expansion) and resolves chained
// entries ("swe" -> "sw engineer" -> "software engineer") to a fixed
// point, so a single expansion pass in Tokens is idempotent. Cycles
// are broken at the first revisited token.
func (s Synonyms) compile(n *Normalizer) Synonyms {
	if len(s) == 0 {
		return nil
	}

	bare := &Normalizer{caseSensitive: n.caseSensitive, folder: n.folder}

	base := make(Synonyms, len(s))
	for key, expansion := range s {
		k := strings.Join(bare.Tokens(key), " ")
		v := strings.Join(bare.Tokens(expansion), " ")
		if k == "" || v == "" {
			continue
		}
		base[k] = v
	}

	compiled := make(Synonyms, len(base))
	for key := range base {
		seen := map[string]bool{key: true}
		compiled[key] = strings.Join(resolveTokens(strings.Fields(base[key]), base, seen), " ")
	}

	// Idempotence guard. An entry whose expansion contains its own key
	// would grow on every pass ("engineer" -> "software engineer" ->
	// "software software engineer"); cycle members resolve to no-op
	// self-maps. Both are dropped.
	for key, expansion := range compiled {
		if key == expansion {
			delete(compiled, key)
			continue
		}
		for _, tok := range strings.Fields(expansion) {
			if tok == key {
				delete(compiled, key)
				break
			}
		}
	}
	if len(compiled) == 0 {
		return nil
	}
	return compiled
}

// resolveTokens expands each token transitively until no token is a
// synonym key, skipping tokens already seen on the current chain.
func resolveTokens(tokens []string, table Synonyms, seen map[string]bool) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		expansion, ok := table[tok]
		if !ok || seen[tok] {
			out = append(out, tok)
			continue
		}
		seen[tok] = true
		out = append(out, resolveTokens(strings.Fields(expansion), table, seen)...)
		delete(seen, tok)
	}
	return out
}
