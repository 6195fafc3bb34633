package normalize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/rolecheck/pkg/normalize"
)

func TestApply(t *testing.T) {
	n := normalize.New()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases and trims", "  Software Engineer  ", "software engineer"},
		{"collapses whitespace", "Software    \t Engineer", "software engineer"},
		{"strips punctuation", "Software Engineer!", "software engineer"},
		{"hyphen splits tokens", "Senior-Developer", "senior developer"},
		{"slash splits tokens", "UI/UX Designer", "ui ux designer"},
		{"keeps digits", "Level 3 Support", "level 3 support"},
		{"empty input", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"punctuation only", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Apply(tt.raw))
		})
	}
}

func TestApplySynonyms(t *testing.T) {
	n := normalize.New(normalize.WithSynonyms(normalize.Synonyms{
		"sw":  "software",
		"eng": "engineer",
		"qa":  "quality assurance",
		"sr.": "senior",
	}))

	assert.Equal(t, "software engineer", n.Apply("SW Eng"))
	assert.Equal(t, "quality assurance lead", n.Apply("QA Lead"))
	// Key punctuation is normalized away before lookup.
	assert.Equal(t, "senior developer", n.Apply("Sr. Developer"))
	// Non-synonym tokens pass through untouched.
	assert.Equal(t, "software architect", n.Apply("SW Architect"))
}

func TestApplyIdempotent(t *testing.T) {
	tables := []normalize.Synonyms{
		nil,
		normalize.DefaultSynonyms(),
		{"eng": "engineer", "swe": "sw engineer", "sw": "software"},
		// Degenerate tables must not break idempotence.
		{"engineer": "software engineer"},
		{"a": "b", "b": "a"},
	}

	inputs := []string{
		"",
		"  Software   Engineer ",
		"SW Eng",
		"Sr. SWE / Team-Lead",
		"Engineer",
		"a b c",
		"Président-Directeur Général",
	}

	for _, table := range tables {
		n := normalize.New(normalize.WithSynonyms(table))
		for _, in := range inputs {
			once := n.Apply(in)
			assert.Equal(t, once, n.Apply(once), "normalize not idempotent for %q", in)
		}
	}
}

func TestChainedSynonymsResolve(t *testing.T) {
	n := normalize.New(normalize.WithSynonyms(normalize.Synonyms{
		"swe": "sw engineer",
		"sw":  "software",
	}))

	assert.Equal(t, "software engineer", n.Apply("SWE"))
}

func TestCaseSensitive(t *testing.T) {
	n := normalize.New(normalize.WithCaseSensitive(true))

	assert.Equal(t, "Software Engineer", n.Apply("  Software   Engineer! "))
	assert.NotEqual(t, n.Apply("manager"), n.Apply("Manager"))
}

func TestTokens(t *testing.T) {
	n := normalize.New(normalize.WithSynonyms(normalize.Synonyms{"qa": "quality assurance"}))

	assert.Equal(t, []string{"quality", "assurance", "engineer"}, n.Tokens("QA Engineer"))
	assert.Nil(t, n.Tokens("  "))
}

func TestLoadSynonyms(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "synonyms.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sw: software\nqa: quality assurance\n"), 0o644))

		s, err := normalize.LoadSynonyms(path)
		require.NoError(t, err)
		assert.Equal(t, "software", s["sw"])
		assert.Equal(t, "quality assurance", s["qa"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := normalize.LoadSynonyms(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0o644))

		_, err := normalize.LoadSynonyms(path)
		assert.Error(t, err)
	})
}
