package app

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config represents the application settings. Values come from the embedded
// defaults, then an optional YAML file, then command-line flags.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	UI         UIConfig         `yaml:"ui"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// ConfigPath is the YAML file named by -config.
	ConfigPath string `yaml:"-"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig holds cell geometry limits.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	MaxCols  int `yaml:"max_cols"`
	MaxRows  int `yaml:"max_rows"`
}

// SimulationConfig holds timing and seeding parameters.
type SimulationConfig struct {
	PeriodMS         int     `yaml:"period_ms"`
	ResizeDebounceMS int     `yaml:"resize_debounce_ms"`
	Seed             int64   `yaml:"seed"`
	Density          float64 `yaml:"density"`
}

// UIConfig holds the initial overlay toggles.
type UIConfig struct {
	ShowHUD       bool `yaml:"show_hud"`
	ShowNeighbors bool `yaml:"show_neighbors"`
}

// TelemetryConfig controls generation statistics output.
type TelemetryConfig struct {
	LogStats    bool   `yaml:"log_stats"`
	StatsWindow int    `yaml:"stats_window"`
	StatsCSV    string `yaml:"stats_csv"`
	LogLevel    string `yaml:"log_level"`
}

// NewConfig returns a Config populated from the embedded defaults.
func NewConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("parsing embedded defaults: %v", err))
	}
	return cfg
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config file")
	fs.IntVar(&c.Grid.CellSize, "cell-size", c.Grid.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.Simulation.PeriodMS, "period", c.Simulation.PeriodMS, "milliseconds between generations")
	fs.Int64Var(&c.Simulation.Seed, "seed", c.Simulation.Seed, "seed for random fills")
	fs.Float64Var(&c.Simulation.Density, "density", c.Simulation.Density, "live cell probability for random fills")
	fs.BoolVar(&c.Telemetry.LogStats, "log-stats", c.Telemetry.LogStats, "log generation statistics")
	fs.IntVar(&c.Telemetry.StatsWindow, "stats-window", c.Telemetry.StatsWindow, "generations per logged summary")
	fs.StringVar(&c.Telemetry.StatsCSV, "stats-csv", c.Telemetry.StatsCSV, "write per-generation statistics to this CSV file")
	fs.StringVar(&c.Telemetry.LogLevel, "log-level", c.Telemetry.LogLevel, "log level (debug, info, warn, error)")
}

// LoadFile overlays the YAML file at path. Only fields present in the file change.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// LoadConfig parses args, overlays the -config file if given, and re-applies
// explicitly set flags so they take precedence over the file.
func LoadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigPath != "" {
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			return nil, err
		}
		for name, value := range set {
			if err := fs.Set(name, value); err != nil {
				return nil, fmt.Errorf("reapplying -%s: %w", name, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.CellSize < 2 {
		errs = append(errs, fmt.Errorf("cell_size must be at least 2, got %d", c.Grid.CellSize))
	}
	if c.Grid.MaxCols < 0 || c.Grid.MaxRows < 0 {
		errs = append(errs, errors.New("max_cols and max_rows must not be negative"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Simulation.PeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("period_ms must be positive, got %d", c.Simulation.PeriodMS))
	}
	if c.Simulation.ResizeDebounceMS <= 0 {
		errs = append(errs, fmt.Errorf("resize_debounce_ms must be positive, got %d", c.Simulation.ResizeDebounceMS))
	}
	if c.Simulation.Density < 0 || c.Simulation.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be within [0, 1], got %v", c.Simulation.Density))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Period returns the simulation period.
func (c *Config) Period() time.Duration {
	return time.Duration(c.Simulation.PeriodMS) * time.Millisecond
}

// ResizeDelay returns the resize debounce delay.
func (c *Config) ResizeDelay() time.Duration {
	return time.Duration(c.Simulation.ResizeDebounceMS) * time.Millisecond
}

// Level parses the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.Telemetry.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Telemetry.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
