// Package config provides configuration loading, validation, and defaults
// for the DeepSeek relay bot. Values come from built-in defaults, an optional
// YAML file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"time"
)

// ErrConfiguration wraps every loading and validation failure returned by Load.
var ErrConfiguration = errors.New("configuration error")

// Config holds the complete application configuration.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	DeepSeek  DeepSeekConfig  `mapstructure:"deepseek"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// TelegramConfig holds the Bot API credentials and polling settings.
// The long-poll timeout sent to getUpdates is PollTimeout minus one second,
// so anything below 2s would poll without waiting.
type TelegramConfig struct {
	Token       string        `mapstructure:"token"        validate:"required"`
	PollTimeout time.Duration `mapstructure:"poll_timeout" validate:"min=2s"`
}

// DeepSeekConfig describes the completion endpoint and the fixed request
// parameters sent with every relayed message. APIKey may be empty: the bot
// still starts but answers every message with Messages.APIKeyMissing.
type DeepSeekConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"      validate:"required,url"`
	Model        string        `mapstructure:"model"         validate:"required"`
	MaxTokens    int           `mapstructure:"max_tokens"    validate:"min=1"`
	Temperature  float32       `mapstructure:"temperature"   validate:"min=0,max=2"`
	Timeout      time.Duration `mapstructure:"timeout"       validate:"min=1s,max=10m"`
	SystemPrompt string        `mapstructure:"system_prompt"`
}

// MessagesConfig holds the user-visible reply texts.
type MessagesConfig struct {
	Welcome       string `mapstructure:"welcome"         validate:"required"`
	GeneralError  string `mapstructure:"general_error"   validate:"required"`
	APIKeyMissing string `mapstructure:"api_key_missing" validate:"required"`
}

// LoggerConfig selects the slog level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig configures a single scheduled task. Schedule is a cron
// expression with a leading seconds field.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
