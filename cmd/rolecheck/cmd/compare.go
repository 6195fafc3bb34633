package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talentops/rolecheck"
	"github.com/talentops/rolecheck/internal/cmd/output"
	"github.com/talentops/rolecheck/pkg/logging"
	"github.com/talentops/rolecheck/pkg/normalize"
	"github.com/talentops/rolecheck/pkg/reconciler"
	"github.com/talentops/rolecheck/pkg/roles"
)

var (
	compareThreshold    int
	compareSynonymsFile string
	compareNoSynonyms   bool
	comparePartial      bool
	compareCaseSense    bool
	compareNoClean      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <canonical-file> <candidates-file>",
	Short: "Reconcile candidate roles against a canonical role set",
	Long: `Compare loads canonical roles and candidate roles from files and
reconciles them. Each file may be XML (text of <role> elements), YAML
(a list of strings or a mapping with a "roles" key), or plain text with
one role per line.

Candidate input is cleaned before matching: list markers are stripped,
comma- and semicolon-separated values are split, and "None" placeholders
are dropped. Use --no-clean to take candidate lines verbatim.

The process exits 1 when any candidate fails to match.`,
	Example: `  rolecheck compare roles.xml extracted.txt
  rolecheck compare roles.yaml extracted.txt --threshold 90 -o json
  rolecheck compare roles.xml extracted.txt --synonyms synonyms.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVarP(&compareThreshold, "threshold", "t", reconciler.DefaultThreshold,
		"minimum similarity score for fuzzy matches (0-100)")
	compareCmd.Flags().StringVar(&compareSynonymsFile, "synonyms", "",
		"YAML file mapping abbreviations to expansions (default: built-in table)")
	compareCmd.Flags().BoolVar(&compareNoSynonyms, "no-synonyms", false,
		"disable synonym expansion entirely")
	compareCmd.Flags().BoolVar(&comparePartial, "partial", true,
		"enable the token-coverage matching tier")
	compareCmd.Flags().BoolVar(&compareCaseSense, "case-sensitive", false,
		"match labels case-sensitively")
	compareCmd.Flags().BoolVar(&compareNoClean, "no-clean", false,
		"skip candidate list cleanup")

	cobra.CheckErr(viper.BindPFlag("threshold", compareCmd.Flags().Lookup("threshold")))
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.Default()

	canonical, err := roles.LoadFile(args[0])
	if err != nil {
		return err
	}
	candidates, err := roles.LoadFile(args[1])
	if err != nil {
		return err
	}
	if !compareNoClean {
		candidates = roles.CleanExtracted(strings.Join(candidates, "\n"))
	}

	threshold := compareThreshold
	if !cmd.Flags().Changed("threshold") && viper.IsSet("threshold") {
		threshold = viper.GetInt("threshold")
	}

	opts := []rolecheck.Option{
		rolecheck.WithThreshold(threshold),
		rolecheck.WithPartialMatching(comparePartial),
		rolecheck.WithCaseSensitive(compareCaseSense),
	}
	synonymsFile := compareSynonymsFile
	if synonymsFile == "" {
		synonymsFile = viper.GetString("synonyms")
	}
	synonyms, err := resolveSynonyms(synonymsFile, compareNoSynonyms)
	if err != nil {
		return err
	}
	if synonyms != nil {
		opts = append(opts, rolecheck.WithSynonyms(synonyms))
	}

	log.Debug().
		Str("canonical", args[0]).
		Str("candidates", args[1]).
		Int("threshold", threshold).
		Msg("Reconciling role sets")

	result, err := rolecheck.Compare(ctx, canonical, candidates, opts...)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(output.DetectFormat(string(format)))
	if err := formatter.Format(os.Stdout, result); err != nil {
		return err
	}

	if !result.IsValid() {
		exitCode = 1
	}
	return nil
}

// resolveSynonyms picks the synonym table: an explicit file, the
// built-in defaults, or nil when expansion is disabled.
func resolveSynonyms(file string, disabled bool) (normalize.Synonyms, error) {
	if disabled {
		return nil, nil
	}
	if file != "" {
		return normalize.LoadSynonyms(file)
	}
	return normalize.DefaultSynonyms(), nil
}
