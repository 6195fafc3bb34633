package roles

import (
	"github.com/talentops/rolecheck/pkg/normalize"
)

// CanonicalSet is an ordered collection of unique ground-truth labels.
// Uniqueness is enforced post-normalization: raw labels that normalize
// identically collapse to one entry, keeping the first raw form seen.
type CanonicalSet struct {
	labels  []Label
	dropped int
}

// NewCanonicalSet builds a canonical set from raw strings. Labels that
// normalize to the empty string are dropped and counted; they carry no
// information and must never surface as a missing entry.
func NewCanonicalSet(raws []string, n *normalize.Normalizer) *CanonicalSet {
	s := &CanonicalSet{}
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		norm := n.Apply(raw)
		if norm == "" {
			s.dropped++
			continue
		}
		if seen[norm] {
			continue
		}
		seen[norm] = true
		s.labels = append(s.labels, Label{Raw: raw, Normalized: norm})
	}
	return s
}

// Labels returns the entries in input order. The slice is shared;
// callers must not mutate it.
func (s *CanonicalSet) Labels() []Label {
	return s.labels
}

// Len returns the number of entries.
func (s *CanonicalSet) Len() int {
	return len(s.labels)
}

// Dropped returns how many raw labels normalized to empty.
func (s *CanonicalSet) Dropped() int {
	return s.dropped
}

// CandidateSet is an ordered collection of labels extracted from an
// external source. Duplicates and near-duplicates are kept: the
// reconciler classifies every occurrence.
type CandidateSet struct {
	labels  []Label
	dropped int
}

// NewCandidateSet builds a candidate set from raw strings, dropping
// and counting labels that normalize to empty.
func NewCandidateSet(raws []string, n *normalize.Normalizer) *CandidateSet {
	s := &CandidateSet{}
	for _, raw := range raws {
		norm := n.Apply(raw)
		if norm == "" {
			s.dropped++
			continue
		}
		s.labels = append(s.labels, Label{Raw: raw, Normalized: norm})
	}
	return s
}

// Labels returns the entries in input order. The slice is shared;
// callers must not mutate it.
func (s *CandidateSet) Labels() []Label {
	return s.labels
}

// Len returns the number of entries.
func (s *CandidateSet) Len() int {
	return len(s.labels)
}

// Dropped returns how many raw labels normalized to empty.
func (s *CandidateSet) Dropped() int {
	return s.dropped
}
