package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// inputExtensions are offered when completing the <file> argument.
var inputExtensions = []string{"csv", "txt", "tsv", "xlsx", "xlsm", "db", "sqlite", "sqlite3"}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completions for cronalpha",
	Long: `Print a completion script for cronalpha to stdout.

Supported shells: bash, zsh, fish, powershell

  eval "$(cronalpha completion bash)"
  cronalpha completion fish | source`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MaximumNArgs(1),
	RunE:      runCompletion,
}

func init() {
	// Remove Cobra's default completion command and add ours.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)

	for _, cmd := range []*cobra.Command{alphaCmd, corrCmd} {
		cmd.ValidArgsFunction = completeInputFile
	}
}

func completeInputFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return inputExtensions, cobra.ShellCompDirectiveFilterFileExt
}

func runCompletion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	generators := map[string]func(io.Writer) error{
		"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
		"zsh":        rootCmd.GenZshCompletion,
		"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
		"powershell": rootCmd.GenPowerShellCompletionWithDesc,
	}

	gen, ok := generators[args[0]]
	if !ok {
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish, powershell)", args[0])
	}
	return gen(cmd.OutOrStdout())
}
