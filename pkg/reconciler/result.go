package reconciler

import (
	"fmt"
	"math"
	"time"

	"github.com/agentstation/utc"

	"github.com/talentops/rolecheck/pkg/roles"
)

// Category classifies a candidate label's reconciliation outcome.
type Category string

const (
	// CategoryMatched is an exact match on normalized forms.
	CategoryMatched Category = "matched"
	// CategoryFuzzy is a similarity or partial match that met the threshold.
	CategoryFuzzy Category = "fuzzy"
	// CategoryIncorrect is a candidate with no acceptable canonical entry.
	CategoryIncorrect Category = "incorrect"
)

// MatchRecord is the atomic output unit: one classified candidate.
// Canonical is nil for incorrect candidates, and Score is meaningful
// only for matched (always 100) and fuzzy records.
type MatchRecord struct {
	Candidate roles.Label  `json:"candidate" yaml:"candidate"`
	Canonical *roles.Label `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Category  Category     `json:"category" yaml:"category"`
	Score     int          `json:"score,omitempty" yaml:"score,omitempty"`
}

// Result is the terminal artifact of a reconciliation run. Every
// candidate appears in exactly one of Matched, Fuzzy, or Incorrect;
// every canonical entry is either consumed by some record or listed
// in Missing, each exactly once.
type Result struct {
	Matched   []MatchRecord `json:"matched" yaml:"matched"`
	Fuzzy     []MatchRecord `json:"fuzzy" yaml:"fuzzy"`
	Incorrect []MatchRecord `json:"incorrect" yaml:"incorrect"`
	Missing   []roles.Label `json:"missing" yaml:"missing"`

	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// ResultMetadata describes how and when the run was performed.
type ResultMetadata struct {
	GeneratedAt utc.Time      `json:"generated_at" yaml:"generated_at"`
	Duration    time.Duration `json:"duration" yaml:"duration"`

	Threshold       int  `json:"threshold" yaml:"threshold"`
	PartialMatching bool `json:"partial_matching" yaml:"partial_matching"`

	// Labels excluded because they normalized to empty.
	DroppedCanonical  int `json:"dropped_canonical" yaml:"dropped_canonical"`
	DroppedCandidates int `json:"dropped_candidates" yaml:"dropped_candidates"`

	Stats ResultStatistics `json:"stats" yaml:"stats"`
}

// ResultStatistics holds derived counts and display percentages.
// Counts are exact and authoritative; percentages are rounded to two
// decimals for presentation.
type ResultStatistics struct {
	CanonicalCount int `json:"canonical_count" yaml:"canonical_count"`
	CandidateCount int `json:"candidate_count" yaml:"candidate_count"`

	MatchedCount   int `json:"matched_count" yaml:"matched_count"`
	FuzzyCount     int `json:"fuzzy_count" yaml:"fuzzy_count"`
	IncorrectCount int `json:"incorrect_count" yaml:"incorrect_count"`
	MissingCount   int `json:"missing_count" yaml:"missing_count"`

	MatchedPercent   float64 `json:"matched_percent" yaml:"matched_percent"`
	FuzzyPercent     float64 `json:"fuzzy_percent" yaml:"fuzzy_percent"`
	IncorrectPercent float64 `json:"incorrect_percent" yaml:"incorrect_percent"`
	MissingPercent   float64 `json:"missing_percent" yaml:"missing_percent"`

	// MatchRate is the share of candidates that found a canonical
	// entry, exact or fuzzy.
	MatchRate float64 `json:"match_rate" yaml:"match_rate"`
}

// NewResult creates an empty result stamped with the run start.
func NewResult() *Result {
	return &Result{
		Matched:   []MatchRecord{},
		Fuzzy:     []MatchRecord{},
		Incorrect: []MatchRecord{},
		Missing:   []roles.Label{},
		Metadata: ResultMetadata{
			GeneratedAt: utc.Now(),
		},
	}
}

// IsValid returns true when every candidate matched a canonical entry.
func (r *Result) IsValid() bool {
	return len(r.Incorrect) == 0
}

// Summary returns a one-line human-readable outcome.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	if r.IsValid() {
		return fmt.Sprintf("All %d candidate roles matched (%d exact, %d fuzzy); %d canonical roles missing",
			s.CandidateCount, s.MatchedCount, s.FuzzyCount, s.MissingCount)
	}
	return fmt.Sprintf("%d of %d candidate roles did not match (%d exact, %d fuzzy); %d canonical roles missing",
		s.IncorrectCount, s.CandidateCount, s.MatchedCount, s.FuzzyCount, s.MissingCount)
}

// finalize computes duration and derived statistics. Percentages for
// matched/fuzzy/incorrect are ratios over the candidate count, missing
// over the canonical count.
func (r *Result) finalize(canonicalLen, candidateLen int, start time.Time) {
	r.Metadata.Duration = time.Since(start)

	s := &r.Metadata.Stats
	s.CanonicalCount = canonicalLen
	s.CandidateCount = candidateLen
	s.MatchedCount = len(r.Matched)
	s.FuzzyCount = len(r.Fuzzy)
	s.IncorrectCount = len(r.Incorrect)
	s.MissingCount = len(r.Missing)

	s.MatchedPercent = percent(s.MatchedCount, candidateLen)
	s.FuzzyPercent = percent(s.FuzzyCount, candidateLen)
	s.IncorrectPercent = percent(s.IncorrectCount, candidateLen)
	s.MissingPercent = percent(s.MissingCount, canonicalLen)
	s.MatchRate = percent(s.MatchedCount+s.FuzzyCount, candidateLen)
}

// percent returns 100*n/total rounded to two decimals, 0 when total is 0.
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*100*100) / 100
}
