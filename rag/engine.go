package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jismyseban/MINI-RAG-BOT/chunker"
	"github.com/jismyseban/MINI-RAG-BOT/embedder"
	"github.com/jismyseban/MINI-RAG-BOT/index"
	"github.com/jismyseban/MINI-RAG-BOT/store"
)

// Engine owns the retrieval state for one corpus: the durable store handle,
// the in-memory index, the query cache, and the embedding client. It is
// constructed at startup and torn down with Close, which releases the store
// handle.
type Engine struct {
	store    *store.Store
	embedder embedder.Embedder
	cache    *queryCache
	logger   *slog.Logger
	window   int
	exts     map[string]struct{}

	// mu guards idx. Sync builds a replacement index and swaps it under the
	// write lock; queries snapshot the pointer under the read lock and scan
	// without holding it.
	mu  sync.RWMutex
	idx *index.Index
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for reconciliation progress.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithChunkWindow overrides the words-per-chunk window used when indexing.
func WithChunkWindow(words int) Option {
	return func(e *Engine) { e.window = words }
}

// WithExtensions overrides the file extension allowlist (defaults to
// ".txt" and ".md", matched case-insensitively).
func WithExtensions(exts ...string) Option {
	return func(e *Engine) {
		e.exts = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			e.exts[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// New constructs an Engine over an open store and an embedding client.
func New(st *store.Store, emb embedder.Embedder, opts ...Option) (*Engine, error) {
	if st == nil {
		return nil, fmt.Errorf("rag: store is nil")
	}
	if emb == nil {
		return nil, fmt.Errorf("rag: embedder is nil")
	}
	e := &Engine{
		store:    st,
		embedder: emb,
		cache:    newQueryCache(),
		logger:   slog.Default(),
		window:   chunker.DefaultWindow,
		exts:     map[string]struct{}{".txt": {}, ".md": {}},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Load rebuilds the in-memory index from a full store scan and swaps it in.
// With zero stored rows the index keeps the embedder's dimension so the
// similarity math retains a defined shape.
func (e *Engine) Load(ctx context.Context) error {
	recs, err := e.store.AllChunks(ctx)
	if err != nil {
		return fmt.Errorf("rag: load chunks: %w", err)
	}
	dim := e.embedder.Dimension()
	if len(recs) > 0 {
		// Dimension follows the stored vectors; a model switch shows up as a
		// query dimension mismatch, not a load failure.
		dim = 0
	}
	chunks := make([]string, len(recs))
	sources := make([]string, len(recs))
	vecs := make([][]float32, len(recs))
	for i, rec := range recs {
		chunks[i] = rec.Text
		sources[i] = rec.Source
		vecs[i] = rec.Embedding
	}
	ix, err := index.Build(chunks, sources, vecs, dim)
	if err != nil {
		return fmt.Errorf("rag: build index: %w", err)
	}

	e.mu.Lock()
	e.idx = ix
	e.mu.Unlock()

	e.logger.Info("loaded chunks from store", "chunks", ix.Len())
	return nil
}

// ClearCache drops every cached query result. Callers must invoke it after
// reconciliation; Sync deliberately does not clear the cache itself.
func (e *Engine) ClearCache() { e.cache.clear() }

// Close releases the underlying store handle.
func (e *Engine) Close() error { return e.store.Close() }

// snapshot returns the current index without holding the lock during scans.
func (e *Engine) snapshot() *index.Index {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx
}
