package vector

import (
	"fmt"

	"github.com/viant/vec/search"
)

// normEpsilon keeps the cosine denominator non-zero when either vector has
// zero magnitude, so such pairs score near zero instead of dividing by zero.
const normEpsilon = 1e-12

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float64 {
	if len(v) == 0 {
		return 0
	}
	return float64(search.Float32s(v).Magnitude())
}

// Cosine computes the cosine similarity between two vectors of equal
// dimension. Zero-magnitude vectors yield a score of (approximately) zero
// rather than an error.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: cosine dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vector: cosine on empty vectors")
	}
	return CosineWithMagnitude(a, b, Magnitude(a), Magnitude(b)), nil
}

// CosineWithMagnitude computes cosine similarity given precomputed
// magnitudes. Callers that scan many vectors against one query use this to
// avoid recomputing norms per pair. The vectors must share a dimension.
func CosineWithMagnitude(a, b []float32, magA, magB float64) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (magA*magB + normEpsilon)
}
