package rag

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jismyseban/MINI-RAG-BOT/chunker"
	"github.com/jismyseban/MINI-RAG-BOT/store"
)

// Report summarizes one reconciliation pass.
type Report struct {
	Added     int // files indexed for the first time
	Updated   int // files whose content digest changed
	Removed   int // tracked files no longer present on disk
	Unchanged int // files skipped without re-embedding
	Chunks    int // chunks in the rebuilt in-memory index
}

// Sync reconciles the store against the current contents of dir: new files
// are chunked and embedded, changed files have their rows fully re-created,
// removed files have their rows and ledger entries deleted, and untouched
// files are skipped without calling the embedding oracle. The in-memory
// index is rebuilt from the store afterwards.
//
// Sync does not clear the query cache; that is the caller's explicit step.
func (e *Engine) Sync(ctx context.Context, dir string) (Report, error) {
	var rep Report

	entries, err := os.ReadDir(dir)
	if err != nil {
		return rep, fmt.Errorf("rag: read source folder: %w", err)
	}

	current := make(map[string]string)
	contents := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := e.exts[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return rep, fmt.Errorf("rag: read %s: %w", name, err)
		}
		contents[name] = string(raw)
		current[name] = digest(string(raw))
	}

	ledger, err := e.store.Ledger(ctx)
	if err != nil {
		return rep, fmt.Errorf("rag: load ledger: %w", err)
	}

	for name, sum := range current {
		recorded, tracked := ledger[name]
		switch {
		case !tracked:
			e.logger.Info("indexing new file", "file", name)
			if err := e.indexFile(ctx, name, contents[name], sum); err != nil {
				return rep, err
			}
			rep.Added++
		case recorded != sum:
			e.logger.Info("file changed, re-indexing", "file", name)
			if err := e.indexFile(ctx, name, contents[name], sum); err != nil {
				return rep, err
			}
			rep.Updated++
		default:
			rep.Unchanged++
		}
	}

	for name := range ledger {
		if _, present := current[name]; present {
			continue
		}
		e.logger.Info("file removed, deleting its chunks", "file", name)
		if err := e.store.RemoveSource(ctx, name); err != nil {
			return rep, fmt.Errorf("rag: remove %s: %w", name, err)
		}
		rep.Removed++
	}

	if err := e.Load(ctx); err != nil {
		return rep, err
	}
	rep.Chunks = e.snapshot().Len()
	return rep, nil
}

// indexFile chunks and embeds one file's content, then atomically replaces
// its chunk rows and ledger digest. An embedding failure leaves the file's
// previous state untouched.
func (e *Engine) indexFile(ctx context.Context, name, content, sum string) error {
	var texts []string
	for _, c := range chunker.Split(content, e.window) {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		texts = append(texts, c)
	}

	recs := make([]store.ChunkRecord, 0, len(texts))
	if len(texts) > 0 {
		vecs, err := e.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("rag: embed %s: %w", name, err)
		}
		for i, text := range texts {
			recs = append(recs, store.ChunkRecord{
				Source:    name,
				Text:      text,
				Embedding: vecs[i],
				Hash:      digest(text),
			})
		}
	}

	if err := e.store.ReplaceSource(ctx, name, sum, recs); err != nil {
		return fmt.Errorf("rag: store %s: %w", name, err)
	}
	return nil
}

func digest(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
