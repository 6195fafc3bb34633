// Package output provides formatters for reconciliation reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talentops/rolecheck/pkg/reconciler"
)

// Format types for report output.
type Format string

const (
	// FormatText is the sectioned human-readable report.
	FormatText Format = "text"
	// FormatTable renders match records as a table.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter renders a reconciliation result.
type Formatter interface {
	Format(w io.Writer, result *reconciler.Result) error
}

// NewFormatter creates the appropriate formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatText
	}

	// Pipes and redirects get machine-readable output.
	return FormatJSON
}

// ParseFormat converts a string to a Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatText, FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, table, json, yaml)", s)
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, result *reconciler.Result) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(result)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs the result in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, result *reconciler.Result) error {
	data, err := yaml.MarshalWithOptions(result,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// TableFormatter renders every classified candidate as one table row.
type TableFormatter struct{}

// Format outputs the result as a table of match records followed by
// missing canonical roles.
func (f *TableFormatter) Format(w io.Writer, result *reconciler.Result) error {
	table := tablewriter.NewTable(w)
	table.Header("Candidate", "Canonical", "Category", "Score")

	title := cases.Title(language.English)
	appendRecord := func(rec reconciler.MatchRecord) error {
		canonical := ""
		if rec.Canonical != nil {
			canonical = rec.Canonical.Raw
		}
		score := ""
		if rec.Category != reconciler.CategoryIncorrect {
			score = fmt.Sprintf("%d", rec.Score)
		}
		return table.Append(rec.Candidate.Raw, canonical, title.String(string(rec.Category)), score)
	}

	for _, rec := range result.Matched {
		if err := appendRecord(rec); err != nil {
			return err
		}
	}
	for _, rec := range result.Fuzzy {
		if err := appendRecord(rec); err != nil {
			return err
		}
	}
	for _, rec := range result.Incorrect {
		if err := appendRecord(rec); err != nil {
			return err
		}
	}
	for _, label := range result.Missing {
		if err := table.Append("", label.Raw, title.String("missing"), ""); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", result.Summary())
	return err
}
