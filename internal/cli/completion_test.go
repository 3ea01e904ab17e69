package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionCommand_DisablesDefault(t *testing.T) {
	if !rootCmd.CompletionOptions.DisableDefaultCmd {
		t.Error("expected Cobra default completion command to be disabled")
	}
}

func TestCompletionCommand_NoArgsShowsHelp(t *testing.T) {
	out, err := runCLI(t, "completion")
	if err != nil {
		t.Fatalf("completion with no args should show help, not error: %v", err)
	}
	if !strings.Contains(out, "Supported shells") {
		t.Errorf("no-args output should show help, got:\n%s", out)
	}
}

func TestCompletionCommand_Shells(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_cronalpha"},
		{"zsh", "compdef"},
		{"fish", "complete -c cronalpha"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := runCLI(t, "completion", tt.shell)
			if err != nil {
				t.Fatalf("completion %s failed: %v", tt.shell, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s completion output should contain %q", tt.shell, tt.want)
			}
		})
	}
}

func TestCompletionCommand_UnsupportedShell(t *testing.T) {
	_, err := runCLI(t, "completion", "tcsh")
	if err == nil {
		t.Fatal("expected error for unsupported shell")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCompleteInputFile(t *testing.T) {
	exts, directive := completeInputFile(alphaCmd, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("directive = %v, want FilterFileExt", directive)
	}
	for _, want := range []string{"csv", "xlsx", "sqlite"} {
		if !slices.Contains(exts, want) {
			t.Errorf("extensions %v missing %q", exts, want)
		}
	}

	if _, directive := completeInputFile(alphaCmd, []string{"scores.csv"}, ""); directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second argument directive = %v, want NoFileComp", directive)
	}
}
