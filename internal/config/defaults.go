package config

import "time"

// Default values for configuration.
const (
	DefaultTelegramPollTimeout = time.Minute

	DefaultDeepSeekBaseURL     = "https://api.deepseek.com/v1"
	DefaultDeepSeekModel       = "deepseek-chat"
	DefaultDeepSeekMaxTokens   = 2000
	DefaultDeepSeekTemperature = 0.7
	DefaultDeepSeekTimeout     = 30 * time.Second

	DefaultMsgWelcome       = "🤖 AI бот запущен!"
	DefaultMsgGeneralError  = "❌ Ошибка"
	DefaultMsgAPIKeyMissing = "❌ API ключ DeepSeek не настроен"

	DefaultLogLevel = "info"

	// UpstreamProbeTask is the scheduler key of the DeepSeek availability probe.
	UpstreamProbeTask        = "upstream_probe"
	DefaultUpstreamProbeCron = "0 */5 * * * *"
)

var defaults = map[string]any{
	"telegram.token":        "",
	"telegram.poll_timeout": DefaultTelegramPollTimeout,

	"deepseek.api_key":       "",
	"deepseek.base_url":      DefaultDeepSeekBaseURL,
	"deepseek.model":         DefaultDeepSeekModel,
	"deepseek.max_tokens":    DefaultDeepSeekMaxTokens,
	"deepseek.temperature":   DefaultDeepSeekTemperature,
	"deepseek.timeout":       DefaultDeepSeekTimeout,
	"deepseek.system_prompt": "",

	"messages.welcome":         DefaultMsgWelcome,
	"messages.general_error":   DefaultMsgGeneralError,
	"messages.api_key_missing": DefaultMsgAPIKeyMissing,

	"logger.level": DefaultLogLevel,
	"logger.json":  false,

	"metrics.addr": "",

	"scheduler.tasks": map[string]any{
		UpstreamProbeTask: map[string]any{
			"enabled":  true,
			"schedule": DefaultUpstreamProbeCron,
		},
	},
}

// envBindings maps configuration keys to the environment variables that
// override them. The bot token and API key keep their historical names.
var envBindings = map[string][]string{
	"telegram.token":         {"BOT_TOKEN", "TELEGRAM_BOT_TOKEN"},
	"telegram.poll_timeout":  {"BOT_POLL_TIMEOUT"},
	"deepseek.api_key":       {"DEEPSEEK_API_KEY"},
	"deepseek.base_url":      {"DEEPSEEK_BASE_URL"},
	"deepseek.model":         {"DEEPSEEK_MODEL"},
	"deepseek.max_tokens":    {"DEEPSEEK_MAX_TOKENS"},
	"deepseek.temperature":   {"DEEPSEEK_TEMPERATURE"},
	"deepseek.timeout":       {"DEEPSEEK_TIMEOUT"},
	"deepseek.system_prompt": {"DEEPSEEK_SYSTEM_PROMPT"},
	"logger.level":           {"LOG_LEVEL"},
	"logger.json":            {"LOG_JSON"},
	"metrics.addr":           {"METRICS_ADDR"},
}
