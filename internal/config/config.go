package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration, loaded once at startup and
// passed into components explicitly. No component reads the environment
// on its own.
type Config struct {
	Profile     string            `yaml:"profile"`
	LLM         LLMConfig         `yaml:"llm"`
	WordPress   WordPressConfig   `yaml:"wordpress"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Market      MarketConfig      `yaml:"market"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// LLMConfig configures the generation capability.
type LLMConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// WordPressConfig configures the content publish endpoint.
type WordPressConfig struct {
	BaseURL     string `yaml:"base_url"`
	User        string `yaml:"user"`
	AppPassword string `yaml:"app_password"`
}

// TelegramConfig configures the best-effort notification channel.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// MarketConfig configures the auxiliary market-index scraper.
type MarketConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// LogConfig configures log level and optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig paces outbound feed fetches.
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LoadConfig reads the yaml config at path and applies environment
// overrides. A missing file is not an error: credentials can be supplied
// entirely through the environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.Profile, "BRIEFING_PROFILE")
	overrideString(&c.LLM.APIKey, "ANTHROPIC_API_KEY")
	overrideString(&c.WordPress.BaseURL, "WP_BASE_URL")
	overrideString(&c.WordPress.User, "WP_USER")
	overrideString(&c.WordPress.AppPassword, "WP_APP_PASSWORD")
	overrideString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	overrideString(&c.Telegram.ChatID, "TELEGRAM_CHAT_ID")
}

func (c *Config) applyDefaults() {
	if c.LLM.Model == "" {
		c.LLM.Model = "claude-sonnet-4-20250514"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS == 0 {
		c.Concurrency.QPS = 4
	}
	if c.Concurrency.RPM == 0 {
		c.Concurrency.RPM = 120
	}
}

// Validate reports the first missing value the pipeline cannot run without.
// Telegram credentials are deliberately not checked: notification is
// best-effort and simply disabled when they are absent.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("missing llm api key (ANTHROPIC_API_KEY)")
	}
	if c.WordPress.BaseURL == "" {
		return fmt.Errorf("missing wordpress base url (WP_BASE_URL)")
	}
	if c.WordPress.User == "" || c.WordPress.AppPassword == "" {
		return fmt.Errorf("missing wordpress credentials (WP_USER / WP_APP_PASSWORD)")
	}
	return nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
