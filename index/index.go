package index

import (
	"fmt"
	"sort"

	"github.com/jismyseban/MINI-RAG-BOT/vector"
)

// Match is a single scored hit from a top-k scan.
type Match struct {
	Chunk  string
	Source string
	Score  float64
}

// Index holds positionally aligned chunk texts, source labels, and embedding
// vectors loaded from the store, with magnitudes precomputed for scanning.
// It is immutable once built; reconciliation builds a replacement and swaps
// it in.
type Index struct {
	chunks  []string
	sources []string
	vecs    [][]float32
	mags    []float64
	dim     int
}

// Build constructs an index from aligned slices. dim fixes the embedding
// dimension for an empty index so downstream similarity math keeps a defined
// shape; with rows present the vectors must all match it (or, when dim is
// zero, each other).
func Build(chunks, sources []string, vectors [][]float32, dim int) (*Index, error) {
	if len(chunks) != len(sources) || len(chunks) != len(vectors) {
		return nil, fmt.Errorf("index: aligned slice length mismatch: %d chunks, %d sources, %d vectors",
			len(chunks), len(sources), len(vectors))
	}
	if len(vectors) > 0 && dim == 0 {
		dim = len(vectors[0])
	}
	mags := make([]float64, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("index: vector %d has dimension %d, want %d", i, len(v), dim)
		}
		mags[i] = vector.Magnitude(v)
	}
	return &Index{
		chunks:  append([]string(nil), chunks...),
		sources: append([]string(nil), sources...),
		vecs:    append([][]float32(nil), vectors...),
		mags:    mags,
		dim:     dim,
	}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int { return len(ix.chunks) }

// Dim returns the embedding dimension, which is defined even with zero rows.
func (ix *Index) Dim() int { return ix.dim }

// TopK scores every stored vector against query by cosine similarity and
// returns up to k matches in descending score order. Ties keep insertion
// order (stable sort), so selection is deterministic. When k exceeds the
// number of rows, all rows are returned.
func (ix *Index) TopK(query []float32, k int) ([]Match, error) {
	if ix.Len() == 0 {
		return nil, nil
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("index: query dimension %d does not match index dimension %d", len(query), ix.dim)
	}
	qMag := vector.Magnitude(query)

	order := make([]int, ix.Len())
	scores := make([]float64, ix.Len())
	for i := range ix.vecs {
		order[i] = i
		scores[i] = vector.CosineWithMagnitude(query, ix.vecs[i], qMag, ix.mags[i])
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	if k > len(order) {
		k = len(order)
	}
	out := make([]Match, k)
	for n := 0; n < k; n++ {
		i := order[n]
		out[n] = Match{Chunk: ix.chunks[i], Source: ix.sources[i], Score: scores[i]}
	}
	return out, nil
}
