/*
Package config manages TOML configuration for swypath services.

InitConfig handles automatic config file creation and loading with fallback
to defaults. LoadConfig and SaveConfig provide direct file access for
runtime changes.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/kaelnor/swypath/internal/utils"
	"github.com/kaelnor/swypath/pkg/predictor"
)

// Config holds the entire configuration structure.
type Config struct {
	Predictor PredictorConfig `toml:"predictor"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// PredictorConfig mirrors predictor.Config with TOML tags so it can be
// round-tripped through a config file; Resolve converts it to the runtime
// type.
type PredictorConfig struct {
	PopularityWeight float64 `toml:"popularity_weight"`
	BandDivisor      int     `toml:"band_divisor"`
	FirstCharStrict  bool    `toml:"first_char_strict"`
	LastCharPenalty  float64 `toml:"last_char_penalty"`
	LengthSkewMax    float64 `toml:"length_skew_max"`
}

// Resolve converts the file-facing struct to predictor.Config.
func (p PredictorConfig) Resolve() predictor.Config {
	return predictor.Config{
		PopularityWeight: p.PopularityWeight,
		BandDivisor:      p.BandDivisor,
		FirstCharStrict:  p.FirstCharStrict,
		LastCharPenalty:  p.LastCharPenalty,
		LengthSkewMax:    p.LengthSkewMax,
	}
}

// ServerConfig has host-IPC related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	DefaultLimit int  `toml:"default_limit"`
	EnableCache  bool `toml:"enable_cache"`
}

// CliConfig holds CLI/REPL interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with the defaults named in the component
// design, plus reasonable ambient server/CLI defaults.
func DefaultConfig() *Config {
	d := predictor.DefaultConfig()
	return &Config{
		Predictor: PredictorConfig{
			PopularityWeight: d.PopularityWeight,
			BandDivisor:      d.BandDivisor,
			FirstCharStrict:  d.FirstCharStrict,
			LastCharPenalty:  d.LastCharPenalty,
			LengthSkewMax:    d.LengthSkewMax,
		},
		Server: ServerConfig{
			MaxLimit:     32,
			DefaultLimit: 5,
			EnableCache:  true,
		},
		CLI: CliConfig{
			DefaultLimit: 5,
		},
	}
}

// InitConfig loads config from file or creates the default one if missing.
// If configPath's directory can't be created or isn't writable, it falls
// back to a config file next to the running executable before giving up.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	status := utils.CheckDirStatus(configDir)
	if status.Error != nil || !status.Writable {
		execDir, err := utils.GetExecutableDir()
		if err != nil {
			if status.Error != nil {
				return nil, status.Error
			}
			return nil, fmt.Errorf("config: %s is not writable and no executable fallback: %w", utils.GetAbsolutePath(configDir), err)
		}
		fallback := filepath.Join(execDir, filepath.Base(configPath))
		log.Warnf("config dir %s unusable, falling back to %s", utils.GetAbsolutePath(configDir), utils.GetAbsolutePath(fallback))
		configPath = fallback
		if status = utils.CheckDirStatus(execDir); status.Error != nil {
			return nil, status.Error
		}
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at %s", utils.GetAbsolutePath(configPath))
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	if err := utils.SaveTOMLFile(cfg, configPath); err != nil {
		log.Errorf("failed to save config file: %v", err)
		return err
	}
	return nil
}

// Update changes server config values and saves to file.
func (c *Config) Update(configPath string, maxLimit *int, enableCache *bool) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if enableCache != nil {
		c.Server.EnableCache = *enableCache
	}
	return SaveConfig(c, configPath)
}
