// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

const (
	// Match marks an exact match between a candidate and a canonical role.
	Match = "✓"

	// Fuzzy marks a similarity or partial match.
	Fuzzy = "≈"

	// Incorrect marks a candidate with no canonical counterpart.
	Incorrect = "✗"

	// Missing marks a canonical role no candidate matched.
	Missing = "⊘"

	// Warning represents warnings or non-critical issues.
	// Used for: dropped empty labels, skipped inputs.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"
)
