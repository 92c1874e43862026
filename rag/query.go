package rag

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidK rejects queries with a non-positive k.
var ErrInvalidK = errors.New("rag: k must be positive")

// Result is one ranked retrieval hit.
type Result struct {
	Chunk  string  `json:"chunk"`
	Source string  `json:"source"`
	Score  float64 `json:"score"`
}

// Query embeds text and returns up to k chunks ranked by descending cosine
// similarity. Results are memoized by exact query text: a repeated query
// returns the cached result without consulting the embedding oracle, until
// ClearCache is called. An empty corpus yields an empty result, not an
// error; k greater than the corpus size returns every chunk ranked.
func (e *Engine) Query(ctx context.Context, text string, k int) ([]Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	key := cacheKey(text)
	if cached, ok := e.cache.get(key); ok {
		return cached, nil
	}

	ix := e.snapshot()
	if ix == nil || ix.Len() == 0 {
		return nil, nil
	}

	// External I/O; runs outside any lock.
	qVec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("rag: embed query: %w", err)
	}

	matches, err := ix.TopK(qVec, k)
	if err != nil {
		return nil, fmt.Errorf("rag: scan index: %w", err)
	}
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{Chunk: m.Chunk, Source: m.Source, Score: m.Score}
	}

	e.cache.put(key, results)
	return results, nil
}

func cacheKey(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
