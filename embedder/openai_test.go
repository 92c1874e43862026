package embedder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const embedResponse = `{
  "object": "list",
  "data": [
    {"object": "embedding", "index": 0, "embedding": [0.25, -0.5, 1.0]},
    {"object": "embedding", "index": 1, "embedding": [1.0, 0.0, 0.0]}
  ],
  "model": "text-embedding-3-small",
  "usage": {"prompt_tokens": 4, "total_tokens": 4}
}`

func TestOpenAI_EmbedBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(embedResponse))
	}))
	defer srv.Close()

	e, err := NewOpenAIWith("test-key", "text-embedding-3-small", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewOpenAIWith failed: %v", err)
	}

	vecs, err := e.EmbedBatch(context.Background(), []string{"one", "two"})
	if err != nil {
		t.Fatalf("EmbedBatch failed: %v", err)
	}
	if len(vecs) != 2 {
		t.Fatalf("EmbedBatch returned %d vectors, want 2", len(vecs))
	}
	if len(vecs[0]) != 3 || vecs[0][0] != 0.25 || vecs[0][1] != -0.5 || vecs[0][2] != 1.0 {
		t.Fatalf("unexpected first vector: %v", vecs[0])
	}
}

func TestOpenAI_EmbedBatchEmpty(t *testing.T) {
	e, err := NewOpenAI("test-key", "")
	if err != nil {
		t.Fatalf("NewOpenAI failed: %v", err)
	}
	vecs, err := e.EmbedBatch(context.Background(), nil)
	if err != nil || vecs != nil {
		t.Fatalf("EmbedBatch(nil) = %v, %v; want nil, nil", vecs, err)
	}
}

func TestOpenAI_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(embedResponse))
	}))
	defer srv.Close()

	e, err := NewOpenAIWith("test-key", "text-embedding-3-small",
		WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewOpenAIWith failed: %v", err)
	}

	_, err = e.Embed(context.Background(), "slow")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got: %v", err)
	}
}

func TestOpenAI_DimensionByModel(t *testing.T) {
	small, err := NewOpenAI("k", "text-embedding-3-small")
	if err != nil {
		t.Fatalf("NewOpenAI failed: %v", err)
	}
	if small.Dimension() != 1536 {
		t.Fatalf("small model dimension = %d, want 1536", small.Dimension())
	}
	large, err := NewOpenAI("k", "text-embedding-3-large")
	if err != nil {
		t.Fatalf("NewOpenAI failed: %v", err)
	}
	if large.Dimension() != 3072 {
		t.Fatalf("large model dimension = %d, want 3072", large.Dimension())
	}
}

func TestOpenAI_RequiresKey(t *testing.T) {
	if _, err := NewOpenAI("", "text-embedding-3-small"); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
