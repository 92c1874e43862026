package rag

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jismyseban/MINI-RAG-BOT/store"
)

// stubEmbedder is a deterministic, call-counting stand-in for the embedding
// oracle. Texts with an entry in vectors get that vector; everything else
// gets a stable vector derived from the text bytes.
type stubEmbedder struct {
	dim     int
	vectors map[string][]float32
	calls   int
	err     error
}

func newStubEmbedder(dim int) *stubEmbedder {
	return &stubEmbedder{dim: dim, vectors: make(map[string][]float32)}
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vec(text), nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = s.vec(t)
	}
	return out, nil
}

func (s *stubEmbedder) Dimension() int { return s.dim }

func (s *stubEmbedder) vec(text string) []float32 {
	if v, ok := s.vectors[text]; ok {
		return v
	}
	v := make([]float32, s.dim)
	for i, r := range text {
		v[i%s.dim] += float32(r) / 1000
	}
	return v
}

func newTestEngine(t *testing.T, emb *stubEmbedder, opts ...Option) *Engine {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "embeddings.db"))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := New(st, emb, append([]Option{WithLogger(quiet)}, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}
