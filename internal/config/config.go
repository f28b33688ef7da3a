// Package config handles loading and saving adjespin configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/adjespin/internal/dictionary"
	"github.com/f3rmion/adjespin/internal/picker"
	"github.com/f3rmion/adjespin/internal/reel"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up inside the config directory.
	FileName = "config.yaml"
	// StateFile holds the persisted slot database.
	StateFile = "state.db"
	// LogFile receives structured logs while the TUI owns the terminal.
	LogFile = "adjespin.log"
)

// Config holds all adjespin settings.
type Config struct {
	Dir       string       `yaml:"-" mapstructure:"config_dir"`
	WordsFile string       `yaml:"words_file,omitempty" mapstructure:"words_file"`
	Lookup    LookupConfig `yaml:"lookup" mapstructure:"lookup"`
	Picker    PickerConfig `yaml:"picker" mapstructure:"picker"`
	Reel      ReelConfig   `yaml:"reel" mapstructure:"reel"`
	Log       LogConfig    `yaml:"log" mapstructure:"log"`
}

// LookupConfig configures the dictionary client.
type LookupConfig struct {
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Concurrency int           `yaml:"concurrency" mapstructure:"concurrency"` // 1 = sequential
}

// PickerConfig configures word selection.
type PickerConfig struct {
	Policy      string `yaml:"policy" mapstructure:"policy"` // definition, no-repeat, both
	MaxAttempts int    `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// ReelConfig configures the spin animation.
type ReelConfig struct {
	Decoys   int           `yaml:"decoys" mapstructure:"decoys"`
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("words_file", "")
	v.SetDefault("lookup.base_url", dictionary.DefaultBaseURL)
	v.SetDefault("lookup.timeout", 10*time.Second)
	v.SetDefault("lookup.concurrency", 1)
	v.SetDefault("picker.policy", string(picker.PolicyDefinition))
	v.SetDefault("picker.max_attempts", picker.DefaultMaxAttempts)
	v.SetDefault("reel.decoys", reel.DefaultDecoys)
	v.SetDefault("reel.duration", reel.DefaultDuration)
	v.SetDefault("log.level", "info")
}

// Default returns the configuration used when no file or overrides exist.
func Default(dir string) *Config {
	return &Config{
		Dir: dir,
		Lookup: LookupConfig{
			BaseURL:     dictionary.DefaultBaseURL,
			Timeout:     10 * time.Second,
			Concurrency: 1,
		},
		Picker: PickerConfig{
			Policy:      string(picker.PolicyDefinition),
			MaxAttempts: picker.DefaultMaxAttempts,
		},
		Reel: ReelConfig{
			Decoys:   reel.DefaultDecoys,
			Duration: reel.DefaultDuration,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads config.yaml from the config directory held by v (if present),
// merges environment and flag overrides already bound to v, and validates
// the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	dir := v.GetString("config_dir")
	if dir != "" {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Lookup.BaseURL == "" {
		errs = append(errs, errors.New("lookup.base_url must be set"))
	}
	if c.Lookup.Timeout < 0 {
		errs = append(errs, errors.New("lookup.timeout must not be negative"))
	}
	if c.Lookup.Concurrency < 1 {
		errs = append(errs, errors.New("lookup.concurrency must be at least 1"))
	}
	if _, err := picker.ParsePolicy(c.Picker.Policy); err != nil {
		errs = append(errs, err)
	}
	if c.Picker.MaxAttempts < 1 {
		errs = append(errs, errors.New("picker.max_attempts must be at least 1"))
	}
	if c.Reel.Decoys < 0 {
		errs = append(errs, errors.New("reel.decoys must not be negative"))
	}
	if c.Reel.Duration <= 0 {
		errs = append(errs, errors.New("reel.duration must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// StatePath returns the slot database location.
func (c *Config) StatePath() string {
	return filepath.Join(c.Dir, StateFile)
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// fileConfig is the on-disk shape; durations are written as "10s" strings.
type fileConfig struct {
	WordsFile string `yaml:"words_file,omitempty"`
	Lookup    struct {
		BaseURL     string `yaml:"base_url"`
		Timeout     string `yaml:"timeout"`
		Concurrency int    `yaml:"concurrency"`
	} `yaml:"lookup"`
	Picker PickerConfig `yaml:"picker"`
	Reel   struct {
		Decoys   int    `yaml:"decoys"`
		Duration string `yaml:"duration"`
	} `yaml:"reel"`
	Log LogConfig `yaml:"log"`
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	var fc fileConfig
	fc.WordsFile = cfg.WordsFile
	fc.Lookup.BaseURL = cfg.Lookup.BaseURL
	fc.Lookup.Timeout = cfg.Lookup.Timeout.String()
	fc.Lookup.Concurrency = cfg.Lookup.Concurrency
	fc.Picker = cfg.Picker
	fc.Reel.Decoys = cfg.Reel.Decoys
	fc.Reel.Duration = cfg.Reel.Duration.String()
	fc.Log = cfg.Log

	out, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "adjespin"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
