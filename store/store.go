package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jismyseban/MINI-RAG-BOT/engine"
	"github.com/jismyseban/MINI-RAG-BOT/vector"
)

// ChunkRecord is one persisted chunk row: a slice of a source document, its
// embedding, and a digest of the chunk text kept for de-duplication audits.
// Rows are never updated in place; a changed file has its rows deleted and
// fully re-created.
type ChunkRecord struct {
	Source    string
	Text      string
	Embedding []float32
	Hash      string
}

// Store provides durable persistence for chunk records and the per-file
// digest ledger, backed by a single SQLite database file.
type Store struct {
	db *sql.DB
}

// New wraps an open database and ensures the schema exists.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Open opens (or creates) the database file at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := engine.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertChunk appends a single chunk record. Write failures surface as
// errors; nothing is swallowed.
func (s *Store) InsertChunk(ctx context.Context, rec ChunkRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chunks(id, source, chunk, embedding, chunk_hash) VALUES(?, ?, ?, ?, ?)`,
		uuid.NewString(), rec.Source, rec.Text, vector.Encode(rec.Embedding), rec.Hash)
	return err
}

// DeleteChunks removes every chunk row for the given source. Deleting a
// source with no rows is a no-op.
func (s *Store) DeleteChunks(ctx context.Context, source string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chunks WHERE source = ?`, source)
	return err
}

// FileDigest returns the ledger digest recorded for file, with ok=false when
// the file has never been indexed.
func (s *Store) FileDigest(ctx context.Context, file string) (string, bool, error) {
	var digest string
	err := s.db.QueryRowContext(ctx, `SELECT digest FROM file_ledger WHERE file = ?`, file).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return digest, true, nil
}

// SetFileDigest upserts the ledger entry for file.
func (s *Store) SetFileDigest(ctx context.Context, file, digest string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO file_ledger(file, digest) VALUES(?, ?)
         ON CONFLICT(file) DO UPDATE SET digest = excluded.digest`, file, digest)
	return err
}

// DeleteFileDigest removes the ledger entry for file, if any.
func (s *Store) DeleteFileDigest(ctx context.Context, file string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM file_ledger WHERE file = ?`, file)
	return err
}

// Ledger returns every tracked file with its recorded digest.
func (s *Store) Ledger(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT file, digest FROM file_ledger`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledger := make(map[string]string)
	for rows.Next() {
		var file, digest string
		if err := rows.Scan(&file, &digest); err != nil {
			return nil, err
		}
		ledger[file] = digest
	}
	return ledger, rows.Err()
}

// AllChunks scans every chunk row in insertion order, decoding embeddings.
// Used to rebuild the in-memory index after reconciliation.
func (s *Store) AllChunks(ctx context.Context) ([]ChunkRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT source, chunk, embedding FROM chunks ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChunkRecord
	for rows.Next() {
		var rec ChunkRecord
		var blob []byte
		if err := rows.Scan(&rec.Source, &rec.Text, &blob); err != nil {
			return nil, err
		}
		if rec.Embedding, err = vector.Decode(blob); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ReplaceSource atomically replaces every chunk row for source and upserts
// its ledger digest in a single transaction, so a crash mid-update cannot
// leave chunks disagreeing with the ledger.
func (s *Store) ReplaceSource(ctx context.Context, source, digest string, recs []ChunkRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE source = ?`, source); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks(id, source, chunk, embedding, chunk_hash) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, rec := range recs {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), source, rec.Text, vector.Encode(rec.Embedding), rec.Hash); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO file_ledger(file, digest) VALUES(?, ?)
         ON CONFLICT(file) DO UPDATE SET digest = excluded.digest`, source, digest); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveSource atomically deletes a source's chunk rows and its ledger entry.
func (s *Store) RemoveSource(ctx context.Context, source string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE source = ?`, source); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM file_ledger WHERE file = ?`, source); err != nil {
		return err
	}
	return tx.Commit()
}
