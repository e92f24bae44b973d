// Package config loads and saves the perfsync configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "perfsync", "config.yml")
}

// Load reads the config from disk (or env). Returns an empty config if no
// file exists yet — the init command will populate it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("dcs.server", "https://git.door43.org")
	v.SetDefault("dcs.token_env", "DCS_TOKEN")
	v.SetDefault("defaults.variant", "literal")
	v.SetDefault("defaults.stage_dir", defaultStageDir())
	v.SetDefault("defaults.workspace", defaultWorkspacePath())

	v.SetEnvPrefix("PERFSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("PERFSYNC_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — the init command creates it.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Resolve token from env (never stored in file).
	tokenEnv := cfg.DCS.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "DCS_TOKEN"
	}
	cfg.DCS.Token = os.Getenv(tokenEnv)
	if cfg.DCS.Token == "" {
		cfg.DCS.Token = os.Getenv("PERFSYNC_DCS_TOKEN")
	}

	// Expand ~ in paths.
	cfg.Defaults.StageDir = ExpandHome(cfg.Defaults.StageDir)
	cfg.Defaults.Workspace = ExpandHome(cfg.Defaults.Workspace)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultStageDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "perfsync", "stage")
}

func defaultWorkspacePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "perfsync", "workspace.yml")
}
