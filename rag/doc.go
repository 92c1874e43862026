// Package rag wires the retrieval engine together: it reconciles a folder
// of documents against the durable chunk store, maintains the in-memory
// index, and answers similarity queries through a result cache.
package rag
