package models

// OutputConfig controls how results are reported.
type OutputConfig struct {
	// Format is one of text, json or yaml.
	Format string `yaml:"format" mapstructure:"format"`
	// Color is one of auto, always or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// InputConfig controls how score tables are read from files.
type InputConfig struct {
	Delimiter string   `yaml:"delimiter" mapstructure:"delimiter"`
	Header    bool     `yaml:"header" mapstructure:"header"`
	Sheet     string   `yaml:"sheet,omitempty" mapstructure:"sheet"`
	Query     string   `yaml:"query" mapstructure:"query"`
	Items     []string `yaml:"items,omitempty" mapstructure:"items"`
}

// EventLogConfig points at the JSONL event log. An empty Path disables it.
type EventLogConfig struct {
	Path string `yaml:"path,omitempty" mapstructure:"path"`
}

// Config holds the settings read from .cronalpha.yaml via Viper.
type Config struct {
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	EventLog EventLogConfig `yaml:"event_log" mapstructure:"event_log"`
}
