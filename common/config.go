package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
)

type Config struct {
	ListenAddr string `json:"listen_addr"`
	OutputDir  string `json:"output_dir"`

	DefaultThemePreset  string `json:"default_theme_preset"`
	DefaultLayoutPreset string `json:"default_layout_preset"`

	IncludeLlmsTxt   bool `json:"include_llms_txt"`
	IncludeHumansTxt bool `json:"include_humans_txt"`
}

func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	// Load config (JSON + env overrides)
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = DEFAULT_CONFIG_FILE
	}

	if !strings.HasPrefix(configPath, "/") && dir != "" {
		configPath = path.Join(dir, configPath)
	}

	if _, err := os.Stat(configPath); err == nil {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg.applyConfigOverrides(fileCfg)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			dec := json.NewDecoder(f)
			_ = dec.Decode(&cfg) // ignore error, fallback to env/defaults
		}
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr:          DEFAULT_LISTEN_ADDR,
		OutputDir:           DEFAULT_OUTPUT_DIR,
		DefaultThemePreset:  DEFAULT_THEME_PRESET,
		DefaultLayoutPreset: DEFAULT_LAYOUT_PRESET,
		IncludeLlmsTxt:      true,
		IncludeHumansTxt:    true,
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("DEFAULT_THEME_PRESET"); v != "" {
		c.DefaultThemePreset = v
	}
	if v := os.Getenv("DEFAULT_LAYOUT_PRESET"); v != "" {
		c.DefaultLayoutPreset = v
	}
	if v := os.Getenv("INCLUDE_LLMS_TXT"); v != "" {
		c.IncludeLlmsTxt = strings.ToLower(v) == "true" || v == "1"
	}
	if v := os.Getenv("INCLUDE_HUMANS_TXT"); v != "" {
		c.IncludeHumansTxt = strings.ToLower(v) == "true" || v == "1"
	}
}

func (c *Config) applyConfigOverrides(cfg *Config) {
	if cfg.ListenAddr != "" {
		c.ListenAddr = cfg.ListenAddr
	}
	if cfg.OutputDir != "" {
		c.OutputDir = cfg.OutputDir
	}
	if cfg.DefaultThemePreset != "" {
		c.DefaultThemePreset = cfg.DefaultThemePreset
	}
	if cfg.DefaultLayoutPreset != "" {
		c.DefaultLayoutPreset = cfg.DefaultLayoutPreset
	}
	c.IncludeLlmsTxt = cfg.IncludeLlmsTxt
	c.IncludeHumansTxt = cfg.IncludeHumansTxt
}
