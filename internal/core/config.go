package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// ConfigFileName is the base name of the configuration file, without extension.
const ConfigFileName = ".cronalpha"

// DefaultQuery selects the score table from a SQLite input.
const DefaultQuery = "SELECT * FROM scores"

// ConfigurationManager loads and validates cronalpha configuration.
type ConfigurationManager interface {
	// LoadConfig reads configFile when non-empty, otherwise .cronalpha.yaml
	// in the base path. A missing default file yields defaults.
	LoadConfig(configFile string) (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading YAML configuration files.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .cronalpha.yaml in basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *models.Config {
	return &models.Config{
		Output: models.OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Input: models.InputConfig{
			Delimiter: ",",
			Header:    true,
			Query:     DefaultQuery,
		},
	}
}

func (cm *viperConfigManager) LoadConfig(configFile string) (*models.Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		// An explicit file must exist; only the default location is optional.
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(cm.basePath)
	}

	v.SetEnvPrefix("CRONALPHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("input.delimiter", def.Input.Delimiter)
	v.SetDefault("input.header", def.Input.Header)
	v.SetDefault("input.sheet", def.Input.Sheet)
	v.SetDefault("input.query", def.Input.Query)
	v.SetDefault("input.items", []string{})
	v.SetDefault("event_log.path", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &models.Config{
		Output: models.OutputConfig{
			Format: strings.ToLower(v.GetString("output.format")),
			Color:  strings.ToLower(v.GetString("output.color")),
		},
		Input: models.InputConfig{
			Delimiter: v.GetString("input.delimiter"),
			Header:    v.GetBool("input.header"),
			Sheet:     v.GetString("input.sheet"),
			Query:     v.GetString("input.query"),
			Items:     v.GetStringSlice("input.items"),
		},
		EventLog: models.EventLogConfig{
			Path: v.GetString("event_log.path"),
		},
	}
	if len(cfg.Input.Items) == 0 {
		cfg.Input.Items = nil
	}

	return cfg, nil
}

var (
	validFormats = map[string]bool{"text": true, "json": true, "yaml": true}
	validColors  = map[string]bool{"auto": true, "always": true, "never": true}
)

// ValidateConfig checks cfg for invalid values and reports all of them.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if !validFormats[cfg.Output.Format] {
		errs = append(errs, fmt.Sprintf("output.format %q is invalid, must be one of: text, json, yaml", cfg.Output.Format))
	}
	if !validColors[cfg.Output.Color] {
		errs = append(errs, fmt.Sprintf("output.color %q is invalid, must be one of: auto, always, never", cfg.Output.Color))
	}
	if utf8.RuneCountInString(cfg.Input.Delimiter) != 1 {
		errs = append(errs, fmt.Sprintf("input.delimiter %q must be a single character", cfg.Input.Delimiter))
	}
	if strings.TrimSpace(cfg.Input.Query) == "" {
		errs = append(errs, "input.query must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
