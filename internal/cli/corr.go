package cli

import (
	"github.com/spf13/cobra"
)

var corrFlags inputFlags

var corrCmd = &cobra.Command{
	Use:   "corr <file>",
	Short: "Print the inter-item correlation matrix",
	Long: `Print the Pearson correlation matrix that Cronbach's alpha is computed
from. Correlations involving a constant item are NaN.`,
	Example: `  cronalpha corr scores.csv
  cronalpha corr survey.xlsx --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCorr,
}

func init() {
	corrFlags.register(corrCmd)
	rootCmd.AddCommand(corrCmd)
}

func runCorr(cmd *cobra.Command, args []string) error {
	cfg, svc, err := resolve(cmd, &corrFlags)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	table, err := loadTable(cmd.Context(), svc, args[0])
	if err != nil {
		return err
	}

	m, err := svc.Calculator.Correlate(table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return renderMatrix(out, m, cfg.Output.Format, colorEnabled(cfg.Output.Color, out))
}
