package config

import (
	"time"

	"margin-tracker/pkg/config"
)

// Tracker holds the polling and evaluation settings for the tracker service.
type Tracker struct {
	RefreshInterval     time.Duration `mapstructure:"refresh_interval"`
	EvaluateInterval    time.Duration `mapstructure:"evaluate_interval"`
	SweepSchedule       string        `mapstructure:"sweep_schedule"`
	AlertResendInterval time.Duration `mapstructure:"alert_resend_interval"`
	LastPriceCacheTTL   time.Duration `mapstructure:"last_price_cache_ttl"`
}

// MarketData holds the configuration for the market data provider.
type MarketData struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	QuoteCacheTTL       time.Duration `mapstructure:"quote_cache_ttl"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the tracker service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Tracker    Tracker         `mapstructure:"tracker"`
	MarketData MarketData      `mapstructure:"market_data"`
	Telegram   Telegram        `mapstructure:"telegram"`
}

// Load loads the tracker configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
