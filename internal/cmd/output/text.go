package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/talentops/rolecheck/internal/cmd/emoji"
	"github.com/talentops/rolecheck/pkg/reconciler"
)

const rule = "============================================================"

// TextFormatter renders the sectioned human-readable validation report.
type TextFormatter struct{}

// Format writes the report: statistics, matched, incorrect, and
// missing sections, then a conclusion.
func (f *TextFormatter) Format(w io.Writer, result *reconciler.Result) error {
	var b strings.Builder
	s := result.Metadata.Stats

	b.WriteString(rule + "\n")
	b.WriteString("ROLE VALIDATION REPORT\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("STATISTICS\n")
	fmt.Fprintf(&b, "  Canonical roles:  %d\n", s.CanonicalCount)
	fmt.Fprintf(&b, "  Candidate roles:  %d\n", s.CandidateCount)
	fmt.Fprintf(&b, "  Matched:          %d\n", s.MatchedCount)
	fmt.Fprintf(&b, "  Fuzzy matched:    %d\n", s.FuzzyCount)
	fmt.Fprintf(&b, "  Incorrect:        %d\n", s.IncorrectCount)
	fmt.Fprintf(&b, "  Missing:          %d\n", s.MissingCount)
	fmt.Fprintf(&b, "  Match rate:       %.2f%%\n", s.MatchRate)
	if dropped := result.Metadata.DroppedCanonical + result.Metadata.DroppedCandidates; dropped > 0 {
		fmt.Fprintf(&b, "  %s Dropped empty labels: %d\n", emoji.Warning, dropped)
	}

	b.WriteString("\nMATCHED ROLES\n")
	if len(result.Matched)+len(result.Fuzzy) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, rec := range result.Matched {
		fmt.Fprintf(&b, "  %s %s\n", emoji.Match, rec.Canonical.Raw)
	}
	for _, rec := range result.Fuzzy {
		fmt.Fprintf(&b, "  %s %s (fuzzy matched %q, score %d)\n",
			emoji.Fuzzy, rec.Canonical.Raw, rec.Candidate.Raw, rec.Score)
	}

	b.WriteString("\nINCORRECT CANDIDATES (no canonical counterpart)\n")
	if len(result.Incorrect) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, rec := range result.Incorrect {
		fmt.Fprintf(&b, "  %s %s\n", emoji.Incorrect, rec.Candidate.Raw)
	}

	if len(result.Missing) > 0 {
		b.WriteString("\nMISSING CANONICAL ROLES (defined but never matched)\n")
		for _, label := range result.Missing {
			fmt.Fprintf(&b, "  %s %s\n", emoji.Missing, label.Raw)
		}
	}

	b.WriteString("\n" + rule + "\n")
	if result.IsValid() {
		b.WriteString("CONCLUSION: all candidate roles are valid\n")
	} else {
		fmt.Fprintf(&b, "CONCLUSION: %d candidate role(s) did not match the canonical set\n",
			len(result.Incorrect))
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
