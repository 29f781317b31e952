// Package deepseek implements the chat completion client used to answer
// relayed messages. DeepSeek exposes an OpenAI-compatible API, so the
// go-openai SDK is pointed at the DeepSeek base URL.
package deepseek

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/edgard/deepseekbot/internal/config"
	"github.com/edgard/deepseekbot/internal/metrics"
)

var (
	// ErrAPIKeyMissing is returned without any network call when no API key is configured.
	ErrAPIKeyMissing = errors.New("deepseek API key is not configured")
	// ErrNoChoices is returned when the response carries no completion candidates.
	ErrNoChoices = errors.New("deepseek response contains no choices")
	// ErrEmptyContent is returned when the first candidate has no text.
	ErrEmptyContent = errors.New("deepseek response content is empty")
)

// Client sends single-turn chat completion requests.
type Client struct {
	api    *openai.Client
	cfg    config.DeepSeekConfig
	logger *slog.Logger
}

// New creates a client for the configured endpoint. An empty API key is
// accepted here; every call then fails with ErrAPIKeyMissing.
func New(cfg config.DeepSeekConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	log := logger.With("component", "deepseek_client")
	if cfg.APIKey == "" {
		log.Warn("DeepSeek API key is not set, messages will be answered with an error")
	}
	log.Info("DeepSeek client initialized", "base_url", apiCfg.BaseURL, "model", cfg.Model)

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		cfg:    cfg,
		logger: log,
	}
}

// Complete sends text as a single user message and returns the first
// candidate's content. The call is bounded by the configured timeout and is
// never retried.
func (c *Client) Complete(ctx context.Context, text string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrAPIKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	startTime := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, c.newRequest(text))
	duration := time.Since(startTime)
	if err != nil {
		metrics.ObserveCompletion(duration, false)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		metrics.ObserveCompletion(duration, false)
		return "", ErrNoChoices
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		metrics.ObserveCompletion(duration, false)
		return "", ErrEmptyContent
	}

	metrics.ObserveCompletion(duration, true)
	c.logger.DebugContext(ctx, "Chat completion received",
		"duration", duration,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)
	return content, nil
}

// Ping lists the available models to check that the endpoint accepts the key.
func (c *Client) Ping(ctx context.Context) error {
	if c.cfg.APIKey == "" {
		return ErrAPIKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	models, err := c.api.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("list models failed: %w", err)
	}
	c.logger.DebugContext(ctx, "DeepSeek endpoint reachable", "models", len(models.Models))
	return nil
}

func (c *Client) newRequest(text string) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if c.cfg.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.cfg.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	return openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
}
