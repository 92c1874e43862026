// Package index provides the in-memory flat index used for similarity
// scanning: parallel chunk, source, and embedding sequences with
// precomputed magnitudes and deterministic top-k selection.
package index
