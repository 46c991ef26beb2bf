// Package config provides configuration management for the sentiment bot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

// Config holds all application configuration. It is loaded once at startup
// and treated as immutable afterwards.
type Config struct {
	Server      ServerConfig  `mapstructure:"server"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Stream      StreamConfig  `mapstructure:"stream"`
	OpenAI      OpenAIConfig  `mapstructure:"openai"`
	Email       EmailConfig   `mapstructure:"email"`
	Sheets      SheetsConfig  `mapstructure:"sheets"`
	Journal     JournalConfig `mapstructure:"journal"`
	Sources     []string      `mapstructure:"sources"`
	Watches     []WatchConfig `mapstructure:"watchlist"`
	Credentials Credentials   `mapstructure:"-"` // environment only
}

// ServerConfig holds the liveness endpoint configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// StreamConfig holds submission-stream tunables.
type StreamConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// OpenAIConfig holds classifier configuration.
type OpenAIConfig struct {
	Model string `mapstructure:"model"`
}

// EmailConfig holds alert email configuration. Recipients is a fixed list,
// never derived from events.
type EmailConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	SMTPHost   string   `mapstructure:"smtp_host"`
	SMTPPort   int      `mapstructure:"smtp_port"`
	From       string   `mapstructure:"from"`
	Recipients []string `mapstructure:"recipients"`
}

// SheetsConfig holds result-log spreadsheet configuration.
type SheetsConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	SheetName     string `mapstructure:"sheet_name"`
}

// JournalConfig holds the local SQLite mirror configuration.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// WatchConfig binds one ticker to its match keywords in config order.
type WatchConfig struct {
	Ticker   string   `mapstructure:"ticker"`
	Keywords []string `mapstructure:"keywords"`
}

// Credentials holds secrets, loaded from the environment only.
type Credentials struct {
	RedditClientID     string
	RedditClientSecret string
	RedditUserAgent    string
	RedditUsername     string
	RedditPassword     string
	OpenAIAPIKey       string
	EmailAppPassword   string
	GoogleCredsJSON    string
	GoogleCredsPath    string
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/reddit-stock-sentiment-bot"
	}
	return filepath.Join(home, ".config", "reddit-stock-sentiment-bot")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	loadCredentials(&cfg.Credentials)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateConfig(configDir)
		}
		return err
	}

	return v.Unmarshal(target)
}

// loadCredentials reads secrets from the environment. Names follow the
// deployment convention: REDDIT_*, OPENAI_API_KEY, GOOGLE_APP_PASS and
// GOOGLE_CREDS_JSON / GOOGLE_CREDS_PATH.
func loadCredentials(creds *Credentials) {
	creds.RedditClientID = os.Getenv("REDDIT_CLIENT_ID")
	creds.RedditClientSecret = os.Getenv("REDDIT_CLIENT_SECRET")
	creds.RedditUserAgent = os.Getenv("REDDIT_USER_AGENT")
	creds.RedditUsername = os.Getenv("REDDIT_USERNAME")
	creds.RedditPassword = os.Getenv("REDDIT_PASSWORD")
	creds.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	creds.EmailAppPassword = os.Getenv("GOOGLE_APP_PASS")
	creds.GoogleCredsJSON = os.Getenv("GOOGLE_CREDS_JSON")
	creds.GoogleCredsPath = os.Getenv("GOOGLE_CREDS_PATH")
	if creds.GoogleCredsJSON == "" && creds.GoogleCredsPath == "" {
		creds.GoogleCredsPath = "./GoogleAPI.json"
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":5000"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Stream.PollInterval <= 0 {
		cfg.Stream.PollInterval = 5 * time.Second
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.Email.SMTPHost == "" {
		cfg.Email.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 465
	}
	if cfg.Sheets.SheetName == "" {
		cfg.Sheets.SheetName = "Sheet1"
	}
	if cfg.Journal.Path == "" {
		cfg.Journal.Path = filepath.Join(DefaultConfigDir(), "journal.db")
	}
}

// Validate checks that the configuration is complete enough to start.
// Any failure here is fatal to the whole process; there is no partial
// startup.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: no sources configured", boterrors.ErrConfigInvalid)
	}
	if len(c.Watches) == 0 {
		return fmt.Errorf("%w: empty watchlist", boterrors.ErrConfigInvalid)
	}
	for _, w := range c.Watches {
		if w.Ticker == "" || len(w.Keywords) == 0 {
			return fmt.Errorf("%w: watchlist entries need a ticker and at least one keyword", boterrors.ErrConfigInvalid)
		}
	}
	if c.Credentials.RedditClientID == "" || c.Credentials.RedditClientSecret == "" || c.Credentials.RedditUserAgent == "" {
		return fmt.Errorf("%w: REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET and REDDIT_USER_AGENT are required", boterrors.ErrMissingCredentials)
	}
	if c.Credentials.OpenAIAPIKey == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY is required", boterrors.ErrMissingCredentials)
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("%w: sheets.spreadsheet_id is required", boterrors.ErrConfigInvalid)
	}
	if c.Email.Enabled {
		if c.Email.From == "" || len(c.Email.Recipients) == 0 {
			return fmt.Errorf("%w: email.from and email.recipients are required when email is enabled", boterrors.ErrConfigInvalid)
		}
		if c.Credentials.EmailAppPassword == "" {
			return fmt.Errorf("%w: GOOGLE_APP_PASS is required when email is enabled", boterrors.ErrMissingCredentials)
		}
	}
	return nil
}

// Watchlist converts the configured watches to the runtime watchlist,
// preserving config order so first-match tie-breaking is deterministic.
func (c *Config) Watchlist() models.Watchlist {
	wl := make(models.Watchlist, 0, len(c.Watches))
	for _, w := range c.Watches {
		wl = append(wl, models.Watch{Ticker: w.Ticker, Keywords: w.Keywords})
	}
	return wl
}
