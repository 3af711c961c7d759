package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is what a caller asks of a ChatCompletionProvider.
type CompletionRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Usage reports the tokens a completion consumed.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the first choice returned by the provider.
type Completion struct {
	Content string
	Model   string
	Usage   Usage
}

// ChatCompletionProvider is a language model behind a chat-completions API.
type ChatCompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Name() string
}

// LLMConfig configures an OpenAI-compatible chat completions endpoint.
type LLMConfig struct {
	Provider string
	APIKey   string
	APIURL   string
	Model    string
	Timeout  time.Duration
}

// NewChatCompletionProvider returns an HTTP client for cfg, or a
// DisabledProvider when no API key is configured.
func NewChatCompletionProvider(cfg LLMConfig) ChatCompletionProvider {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logrus.WithField("provider", cfg.Provider).Warn("no API key configured, provider disabled")
		return DisabledProvider{Provider: cfg.Provider}
	}
	return NewLLMClient(cfg)
}

// LLMClient talks to an OpenAI-compatible /chat/completions endpoint.
// Both OpenAI and Groq speak this protocol.
type LLMClient struct {
	cfg    LLMConfig
	client *http.Client
}

// NewLLMClient creates a new LLMClient instance
func NewLLMClient(cfg LLMConfig) *LLMClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &LLMClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *LLMClient) Name() string {
	return c.cfg.Provider
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// Complete sends one chat completion request. Failures are returned as is;
// there are no retries.
func (c *LLMClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	log := logrus.WithFields(logrus.Fields{"provider": c.cfg.Provider, "model": c.cfg.Model})
	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("chat completion request failed")
		return nil, &UpstreamError{Provider: c.cfg.Provider, StatusCode: resp.StatusCode, Body: truncate(string(data), 512)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyCompletion
	}

	model := parsed.Model
	if model == "" {
		model = c.cfg.Model
	}
	log.WithFields(logrus.Fields{
		"latency_ms":   time.Since(start).Milliseconds(),
		"total_tokens": parsed.Usage.TotalTokens,
	}).Debug("chat completion finished")

	return &Completion{
		Content: strings.TrimSpace(parsed.Choices[0].Message.Content),
		Model:   model,
		Usage:   parsed.Usage,
	}, nil
}

// DisabledProvider stands in for a provider with no credential.
type DisabledProvider struct {
	Provider string
}

func (p DisabledProvider) Name() string { return p.Provider }

func (p DisabledProvider) Complete(context.Context, CompletionRequest) (*Completion, error) {
	return nil, fmt.Errorf("%s: %w", p.Provider, ErrLLMUnavailable)
}

// IsAvailable reports whether p can serve requests.
func IsAvailable(p ChatCompletionProvider) bool {
	if p == nil {
		return false
	}
	_, disabled := p.(DisabledProvider)
	return !disabled
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
