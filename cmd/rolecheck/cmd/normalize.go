package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talentops/rolecheck/pkg/normalize"
)

var (
	normalizeSynonymsFile string
	normalizeNoSynonyms   bool
	normalizeCaseSense    bool
	normalizeShowTokens   bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <label>...",
	Short: "Show the normalized form of one or more labels",
	Long: `Normalize runs labels through the same pipeline compare uses before
matching: trimming, case folding, punctuation stripping, token
splitting, and synonym expansion. Useful for debugging why two labels
do or do not match.`,
	Example: `  rolecheck normalize "Sr. SW Eng."
  rolecheck normalize --tokens "Project-Manager / Lead"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&normalizeSynonymsFile, "synonyms", "",
		"YAML file mapping abbreviations to expansions (default: built-in table)")
	normalizeCmd.Flags().BoolVar(&normalizeNoSynonyms, "no-synonyms", false,
		"disable synonym expansion entirely")
	normalizeCmd.Flags().BoolVar(&normalizeCaseSense, "case-sensitive", false,
		"preserve case during normalization")
	normalizeCmd.Flags().BoolVar(&normalizeShowTokens, "tokens", false,
		"print the token list instead of the joined form")
}

func runNormalize(_ *cobra.Command, args []string) error {
	synonyms, err := resolveSynonyms(normalizeSynonymsFile, normalizeNoSynonyms)
	if err != nil {
		return err
	}

	var opts []normalize.Option
	if synonyms != nil {
		opts = append(opts, normalize.WithSynonyms(synonyms))
	}
	if normalizeCaseSense {
		opts = append(opts, normalize.WithCaseSensitive(true))
	}
	n := normalize.New(opts...)

	for _, label := range args {
		if normalizeShowTokens {
			fmt.Fprintf(os.Stdout, "%q -> %q\n", label, n.Tokens(label))
			continue
		}
		fmt.Fprintf(os.Stdout, "%q -> %q\n", label, n.Apply(label))
	}
	return nil
}
