// Package llm turns retrieved text into prose answers: it composes grounded
// prompts and calls a hosted chat-completion model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single chat-completion request.
const DefaultTimeout = 60 * time.Second

const maxAnswerTokens = 300

// Client calls a chat-completion model for answer composition.
type Client struct {
	api     *openai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		cfg := openai.DefaultConfig(c.apiKey)
		cfg.BaseURL = url
		c.api = openai.NewClientWithConfig(cfg)
	}
}

// New creates a chat client for the given model.
func New(apiKey, model string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("llm: API key is empty")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	c := &Client{
		api:     openai.NewClient(apiKey),
		apiKey:  apiKey,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Answer asks the model the question grounded on the retrieved context and
// returns the composed prose answer.
func (c *Client) Answer(ctx context.Context, question, grounding string) (string, error) {
	return c.complete(ctx, AnswerPrompt(question, grounding))
}

// Summarize condenses the recent questions into a short paragraph.
func (c *Client) Summarize(ctx context.Context, recent []string) (string, error) {
	if len(recent) == 0 {
		return "", errors.New("llm: nothing to summarize")
	}
	return c.complete(ctx, SummaryPrompt(recent))
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxAnswerTokens,
		// An exact zero is dropped by omitempty; the smallest positive value
		// keeps sampling effectively deterministic.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
