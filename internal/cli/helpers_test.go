package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/valter-silva-au/cronalpha/internal/core"
	"github.com/valter-silva-au/cronalpha/internal/observability"
	"github.com/valter-silva-au/cronalpha/internal/storage"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// pairCSV has two items correlating at 0.9, so alpha is 1.8/1.9.
const pairCSV = "a,b\n1,1\n2,3\n3,2\n4,4\n5,5\n"

// setupCLI installs real services rooted at a fresh base directory and
// returns that directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	origMgr, origWire := ConfigMgr, Wire
	t.Cleanup(func() {
		ConfigMgr, Wire = origMgr, origWire
	})

	ConfigMgr = core.NewConfigurationManager(dir)
	Wire = func(cfg *models.Config) (*Services, error) {
		log, err := observability.Open(cfg.EventLog.Path)
		if err != nil {
			return nil, err
		}
		return &Services{
			Calculator: core.NewCalculator(nil),
			Loader:     storage.NewTableLoader(storage.LoadOptionsFromConfig(cfg.Input)),
			EventLog:   log,
		}, nil
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// runCLI executes the root command with args and returns what it wrote to
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := Execute()
	return stdout.String(), err
}

// resetFlags restores every flag in the command tree to its default so
// executions do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
