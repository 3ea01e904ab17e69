package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/cronalpha/internal/cli"
	"github.com/valter-silva-au/cronalpha/internal/core"
	"github.com/valter-silva-au/cronalpha/internal/observability"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

func TestResolveBasePath_HomeSet(t *testing.T) {
	// Test that CRONALPHA_HOME env var takes precedence.
	tmpDir := t.TempDir()
	t.Setenv("CRONALPHA_HOME", tmpDir)

	got := ResolveBasePath()
	if got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q", got, tmpDir)
	}
}

func TestResolveBasePath_FindsConfigFile(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	subDir := filepath.Join(tmpDir, "sub", "nested")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatal(err)
	}

	// Create .cronalpha.yaml in the parent directory.
	if err := os.WriteFile(filepath.Join(tmpDir, ".cronalpha.yaml"), []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(subDir)
	t.Setenv("CRONALPHA_HOME", "")

	got := ResolveBasePath()
	if got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q (should find .cronalpha.yaml in parent)", got, tmpDir)
	}
}

func TestResolveBasePath_FallbackToCwd(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Chdir(tmpDir)
	t.Setenv("CRONALPHA_HOME", "")

	got := ResolveBasePath()
	if got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q (should fall back to cwd)", got, tmpDir)
	}
}

func TestNewApp_Success(t *testing.T) {
	tmpDir := t.TempDir()
	app, err := NewApp(tmpDir)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if app.BasePath != tmpDir {
		t.Errorf("app.BasePath = %q, want %q", app.BasePath, tmpDir)
	}
	if app.ConfigMgr == nil {
		t.Error("app.ConfigMgr is nil")
	}
	if cli.ConfigMgr == nil || cli.Wire == nil {
		t.Error("CLI services were not installed")
	}
}

func TestNewApp_EmptyBasePath(t *testing.T) {
	if _, err := NewApp(""); err == nil {
		t.Fatal("expected error for empty base path")
	}
}

func TestWire_DisabledEventLog(t *testing.T) {
	app, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	svc, err := app.Wire(core.DefaultConfig())
	if err != nil {
		t.Fatalf("Wire() error = %v", err)
	}
	defer func() { _ = svc.Close() }()

	if svc.Calculator == nil || svc.Loader == nil || svc.EventLog == nil {
		t.Fatalf("Wire() returned incomplete services: %+v", svc)
	}
	entries, err := os.ReadDir(app.BasePath)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("disabled event log created files: %v", entries)
	}
}

func TestWire_RelativeEventLogPath(t *testing.T) {
	tmpDir := t.TempDir()
	app, err := NewApp(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	cfg := core.DefaultConfig()
	cfg.EventLog.Path = "events.jsonl"
	svc, err := app.Wire(cfg)
	if err != nil {
		t.Fatalf("Wire() error = %v", err)
	}

	table, err := models.NewScoreTable(nil, [][]float64{{1, 2}, {2, 1}, {3, 4}, {4, 3}, {5, 5}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Calculator.Analyze(table); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	events, err := svc.EventLog.Read(observability.EventFilter{Type: observability.EventAlphaComputed})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Close(); err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d alpha.computed events, want 1", len(events))
	}
	if events[0].Level != observability.LevelInfo {
		t.Errorf("level = %q, want %q", events[0].Level, observability.LevelInfo)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "events.jsonl")); err != nil {
		t.Errorf("event log not created under base path: %v", err)
	}
}

func TestEventLogAdapter_FailureLevel(t *testing.T) {
	log, err := observability.NewJSONLEventLog(filepath.Join(t.TempDir(), "events.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = log.Close() }()

	adapter := &eventLogAdapter{log: log}
	if err := adapter.LogEvent(observability.EventAlphaFailed, map[string]any{"error": "boom"}); err != nil {
		t.Fatalf("LogEvent() error = %v", err)
	}

	events, err := log.Read(observability.EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Level != observability.LevelWarn {
		t.Errorf("level = %q, want %q", events[0].Level, observability.LevelWarn)
	}
	if events[0].Data["error"] != "boom" {
		t.Errorf("data = %v, want error=boom", events[0].Data)
	}
}
