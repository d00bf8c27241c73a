package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	RunModeWebhook  = "webhook"
	RunModeLongPoll = "longpoll"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN" required:"true"`
	WebhookURL  string        `envconfig:"WEBHOOK_URL" required:"true"`
	Port        string        `envconfig:"PORT" required:"true"`
	InviteLink  string        `envconfig:"INVITE_LINK"`
	CatalogPath string        `envconfig:"CATALOG_PATH" default:"catalog.yaml"`
	RunMode     string        `envconfig:"RUN_MODE" default:"webhook"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	ArmDelay    time.Duration `envconfig:"ARM_DELAY" default:"0s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by itself
func (c *Config) Validate() error {
	switch c.RunMode {
	case RunModeWebhook, RunModeLongPoll:
	default:
		return errors.Newf("RUN_MODE must be %q or %q, got %q", RunModeWebhook, RunModeLongPoll, c.RunMode)
	}
	if c.ArmDelay < 0 {
		return errors.Newf("ARM_DELAY must not be negative, got %s", c.ArmDelay)
	}
	return nil
}

// WebhookPath is the route Telegram posts updates to
func (c *Config) WebhookPath() string {
	return "/bot" + c.BotToken
}

// WebhookEndpoint is the public URL registered with Telegram
func (c *Config) WebhookEndpoint() string {
	return strings.TrimRight(c.WebhookURL, "/") + c.WebhookPath()
}

// ListenAddr is the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
