package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	configFile string
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "cronalpha",
	Short: "Cronbach's alpha for multi-item scales",
	Long: `cronalpha estimates the internal-consistency reliability of a multi-item
scale. It reads a table of item scores (rows are respondents, columns are
items) from a CSV, TSV, Excel or SQLite file and reports Cronbach's alpha
computed from the mean inter-item Pearson correlation.

Settings are read from .cronalpha.yaml in the current directory (or
$CRONALPHA_HOME), from --config, and from CRONALPHA_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cronalpha %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./.cronalpha.yaml)")
	rootCmd.SuggestionsMinimumDistance = 2
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
