package roles

import (
	"regexp"
	"strings"
)

// listMarker strips leading bullets, numbering, and dashes from a line.
var listMarker = regexp.MustCompile(`^[\s\-•*\d.]+`)

// CleanExtracted parses a noisy role list as produced by a
// document-understanding pipeline. It handles comma-, semicolon-, and
// newline-separated values as well as bulleted lists, drops "None"
// placeholders and empties, and dedupes case-insensitively while
// preserving first-seen order.
func CleanExtracted(s string) []string {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil
	}

	var parts []string
	for _, line := range strings.Split(s, "\n") {
		line = listMarker.ReplaceAllString(line, "")
		parts = append(parts, strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';'
		})...)
	}

	seen := make(map[string]bool, len(parts))
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, "none") {
			continue
		}
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
