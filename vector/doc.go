// Package vector holds the numeric plumbing shared by the store and the
// in-memory index: BLOB encoding for embeddings and cosine similarity
// scoring.
package vector
