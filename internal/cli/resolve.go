package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/cronalpha/internal/observability"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// inputFlags are the per-command overrides of the input and output config
// sections. Only flags the user actually set are applied. Format and color
// are case-insensitive, as they are in the config file.
type inputFlags struct {
	format    string
	color     string
	delimiter string
	sheet     string
	query     string
	noHeader  bool
	items     []string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", "", "output format: text, json or yaml")
	fl.StringVar(&f.color, "color", "", "color output: auto, always or never")
	fl.StringVar(&f.delimiter, "delimiter", "", "CSV field delimiter")
	fl.StringVar(&f.sheet, "sheet", "", "workbook sheet to read (default: first sheet)")
	fl.StringVar(&f.query, "query", "", "SQL query selecting the score table from a SQLite file")
	fl.BoolVar(&f.noHeader, "no-header", false, "first row holds scores, not item names")
	fl.StringSliceVar(&f.items, "items", nil, "comma-separated item columns to analyze, in order")
}

func (f *inputFlags) apply(cmd *cobra.Command, cfg *models.Config) {
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Output.Format = strings.ToLower(f.format)
	}
	if fl.Changed("color") {
		cfg.Output.Color = strings.ToLower(f.color)
	}
	if fl.Changed("delimiter") {
		cfg.Input.Delimiter = f.delimiter
	}
	if fl.Changed("sheet") {
		cfg.Input.Sheet = f.sheet
	}
	if fl.Changed("query") {
		cfg.Input.Query = f.query
	}
	if fl.Changed("no-header") {
		cfg.Input.Header = !f.noHeader
	}
	if fl.Changed("items") {
		cfg.Input.Items = f.items
	}
}

// resolveConfig loads configuration, applies flag overrides and validates
// the result.
func resolveConfig(cmd *cobra.Command, flags *inputFlags) (*models.Config, error) {
	if ConfigMgr == nil {
		return nil, errNotInitialized
	}
	cfg, err := ConfigMgr.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if flags != nil {
		flags.apply(cmd, cfg)
	}
	if err := ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve returns the configuration and services for a command. Callers
// must Close the services.
func resolve(cmd *cobra.Command, flags *inputFlags) (*models.Config, *Services, error) {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return nil, nil, err
	}
	if Wire == nil {
		return nil, nil, errNotInitialized
	}
	svc, err := Wire(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing services: %w", err)
	}
	return cfg, svc, nil
}

// loadTable reads path with the configured loader and records the load.
func loadTable(ctx context.Context, svc *Services, path string) (*models.ScoreTable, error) {
	table, err := svc.Loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if svc.EventLog != nil {
		_ = svc.EventLog.Write(observability.Event{
			Type:    observability.EventTableLoaded,
			Message: "score table loaded",
			Data: map[string]any{
				"path":        path,
				"items":       table.NumItems(),
				"respondents": table.NumRespondents(),
			},
		})
	}
	return table, nil
}
