package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AnalysisPrompts holds the fmt.Sprintf templates each analyzer feeds to the
// completion service. Keeping them in config lets committees tune wording
// without a rebuild.
type AnalysisPrompts struct {
	Receipt       string `toml:"receipt"`
	Reimbursement string `toml:"reimbursement"`
	BudgetMatch   string `toml:"budget_match"`
	Minutes       string `toml:"minutes"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	LLM      LLMConfig       `toml:"llm"`
	Analysis AnalysisPrompts `toml:"analysis"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config usable without any config file on disk.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Database.Path == "" {
		c.Database.Path = "portal.db"
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = 30
	}
	if c.Analysis.Receipt == "" {
		c.Analysis.Receipt = DefaultReceiptPrompt
	}
	if c.Analysis.Reimbursement == "" {
		c.Analysis.Reimbursement = DefaultReimbursementPrompt
	}
	if c.Analysis.BudgetMatch == "" {
		c.Analysis.BudgetMatch = DefaultBudgetMatchPrompt
	}
	if c.Analysis.Minutes == "" {
		c.Analysis.Minutes = DefaultMinutesPrompt
	}
}
