package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigShow_Defaults(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"format: text", "color: auto", "header: true", "query: SELECT * FROM scores"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_FromFile(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, dir, ".cronalpha.yaml", "output:\n  format: YAML\ninput:\n  delimiter: \";\"\n  items: [q1, q2]\n")

	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"format: yaml", "delimiter:", ";", "- q1", "- q2"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_InvalidFile(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, dir, ".cronalpha.yaml", "output:\n  color: sometimes\n")

	_, err := runCLI(t, "config", "show")
	if err == nil || !strings.Contains(err.Error(), "output.color") {
		t.Fatalf("expected output.color validation error, got %v", err)
	}
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "config", "show", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing --config file")
	}
}
