// Package internal provides the App struct that wires the cronalpha
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/cronalpha/internal/cli"
	"github.com/valter-silva-au/cronalpha/internal/core"
	"github.com/valter-silva-au/cronalpha/internal/observability"
	"github.com/valter-silva-au/cronalpha/internal/storage"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// configFileNames are the file names ResolveBasePath looks for.
var configFileNames = []string{core.ConfigFileName + ".yaml", core.ConfigFileName + ".yml"}

// App holds the service dependencies that do not depend on a resolved
// configuration. Per-command services are built by Wire.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
}

// NewApp creates the App and installs it into the CLI layer. basePath is
// where .cronalpha.yaml is looked up and where relative event log paths are
// resolved.
func NewApp(basePath string) (*App, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path is empty")
	}

	app := &App{BasePath: basePath}
	app.ConfigMgr = core.NewConfigurationManager(basePath)

	// --- Wire CLI package-level variables ---
	cli.ConfigMgr = app.ConfigMgr
	cli.Wire = app.Wire

	return app, nil
}

// Wire builds the calculator, loader and event log for cfg. The caller owns
// the returned Services and must Close them.
func (a *App) Wire(cfg *models.Config) (*cli.Services, error) {
	logPath := cfg.EventLog.Path
	if logPath != "" && !filepath.IsAbs(logPath) {
		logPath = filepath.Join(a.BasePath, logPath)
	}

	// --- Observability ---
	eventLog, err := observability.Open(logPath)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	// --- Core services ---
	return &cli.Services{
		Calculator: core.NewCalculator(&eventLogAdapter{log: eventLog}),
		Loader:     storage.NewTableLoader(storage.LoadOptionsFromConfig(cfg.Input)),
		EventLog:   eventLog,
	}, nil
}

// ResolveBasePath determines the directory cronalpha reads its configuration
// from. It checks the CRONALPHA_HOME env var, then walks up from the current
// directory looking for .cronalpha.yaml, then falls back to the current
// directory.
func ResolveBasePath() string {
	if home := os.Getenv("CRONALPHA_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	for dir := cwd; ; {
		for _, name := range configFileNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   observability.LevelFor(eventType),
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
