package embedder

import (
	"context"
	"errors"
)

// ErrTimeout marks embedding calls that exceeded their deadline. Callers
// can detect it with errors.Is.
var ErrTimeout = errors.New("embedder: request timed out")

// Embedder turns text into fixed-length float vectors. The dimension is
// fixed for the lifetime of a corpus; mixing models invalidates all stored
// vectors.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one embedding per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension reports the length of the vectors this embedder produces.
	Dimension() int
}
