package embedder

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single embedding request so a stalled oracle call
// surfaces as ErrTimeout instead of hanging indefinitely.
const DefaultTimeout = 30 * time.Second

// OpenAI calls the OpenAI embeddings API.
type OpenAI struct {
	client  *openai.Client
	apiKey  string
	model   openai.EmbeddingModel
	dim     int
	timeout time.Duration
}

// Option customizes an OpenAI embedder.
type Option func(*OpenAI)

// WithTimeout overrides the per-request deadline. A non-positive value
// disables the internal deadline; the caller's context still applies.
func WithTimeout(d time.Duration) Option {
	return func(e *OpenAI) { e.timeout = d }
}

// WithBaseURL points the client at an alternate API endpoint (proxies,
// compatible local servers, tests).
func WithBaseURL(url string) Option {
	return func(e *OpenAI) {
		cfg := openai.DefaultConfig(e.apiKey)
		cfg.BaseURL = url
		e.client = openai.NewClientWithConfig(cfg)
	}
}

// NewOpenAI creates an embedder for the given model.
func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("embedder: OpenAI API key is empty")
	}
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	dim := 1536
	if model == string(openai.LargeEmbedding3) {
		dim = 3072
	}
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		apiKey:  apiKey,
		model:   openai.EmbeddingModel(model),
		dim:     dim,
		timeout: DefaultTimeout,
	}, nil
}

// NewOpenAIWith creates an embedder and applies options. Used mainly by
// tests and callers that need a custom endpoint or deadline.
func NewOpenAIWith(apiKey, model string, opts ...Option) (*OpenAI, error) {
	e, err := NewOpenAI(apiKey, model)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Embed requests a single embedding.
func (e *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	out, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// EmbedBatch requests embeddings for all texts in one API call and returns
// them in input order.
func (e *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("embedder: create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedder: got %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	out := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j := range d.Embedding {
			vec[j] = float32(d.Embedding[j])
		}
		out[i] = vec
	}
	return out, nil
}

// Dimension reports the vector length for the configured model.
func (e *OpenAI) Dimension() int { return e.dim }

var _ Embedder = (*OpenAI)(nil)
