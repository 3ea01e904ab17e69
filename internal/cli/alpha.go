package cli

import (
	"github.com/spf13/cobra"
)

var (
	alphaFlags   inputFlags
	alphaVerbose bool
)

var alphaCmd = &cobra.Command{
	Use:   "alpha <file>",
	Short: "Compute Cronbach's alpha for a score table",
	Long: `Compute Cronbach's alpha from the mean inter-item Pearson correlation:

  alpha = (N * mean_r) / (1 + (N - 1) * mean_r)

The input file holds one row per respondent and one column per item.
Supported formats: .csv, .txt, .tsv, .xlsx, .xlsm, .db, .sqlite, .sqlite3.

A table with fewer than two items or respondents, or with a non-numeric
cell, is rejected. A constant item yields NaN and a collapsing denominator
yields an infinity; these are reported as computed, not as errors. Items are
assumed to be positively scaled; reverse-scored items are not corrected.`,
	Example: `  # Alpha for a CSV export
  cronalpha alpha scores.csv

  # Selected items from an Excel sheet, with intermediate values
  cronalpha alpha survey.xlsx --sheet Wave2 --items q1,q2,q5 --verbose

  # Machine-readable output from a SQLite database
  cronalpha alpha results.db --query "SELECT q1, q2, q3 FROM answers" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runAlpha,
}

func init() {
	alphaFlags.register(alphaCmd)
	alphaCmd.Flags().BoolVarP(&alphaVerbose, "verbose", "v", false, "also print item, respondent and pair counts and the mean inter-item correlation")
	rootCmd.AddCommand(alphaCmd)
}

func runAlpha(cmd *cobra.Command, args []string) error {
	cfg, svc, err := resolve(cmd, &alphaFlags)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	table, err := loadTable(cmd.Context(), svc, args[0])
	if err != nil {
		return err
	}

	res, err := svc.Calculator.Analyze(table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return renderAlpha(out, res, cfg.Output.Format, colorEnabled(cfg.Output.Color, out), alphaVerbose)
}
