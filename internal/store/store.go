// Package store persists the last shown word in a local SQLite file.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/adjespin/internal/word"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DefaultSlot is the slot the last spin result is written to.
const DefaultSlot = "adjespin_saved"

// schemaVersion tags every stored record.
const schemaVersion = 1

// Store is a named-slot key/value store on top of SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// record is the stored form of a word.
type record struct {
	Version int           `json:"v"`
	Word    word.Enriched `json:"word"`
}

// Open opens (creating if needed) the database at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: logger.Named("store")}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("creating slots table: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes w to slot, replacing any previous value.
func (s *Store) Save(ctx context.Context, slot string, w word.Enriched) error {
	data, err := Encode(w)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, slot, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}

	s.log.Debug("saved", zap.String("slot", slot), zap.String("word", w.Word))
	return nil
}

// Load reads slot. The boolean is false when the slot is empty or holds a
// record that cannot be decoded; a corrupt record is treated as absent.
func (s *Store) Load(ctx context.Context, slot string) (word.Enriched, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return word.Enriched{}, false, nil
	}
	if err != nil {
		return word.Enriched{}, false, fmt.Errorf("loading slot %s: %w", slot, err)
	}

	w, err := Decode([]byte(value))
	if err != nil {
		s.log.Warn("discarding unreadable slot", zap.String("slot", slot), zap.Error(err))
		return word.Enriched{}, false, nil
	}
	return w, true, nil
}

// Clear empties slot.
func (s *Store) Clear(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, slot); err != nil {
		return fmt.Errorf("clearing slot %s: %w", slot, err)
	}
	return nil
}

// Encode serializes w with the current schema tag.
func Encode(w word.Enriched) ([]byte, error) {
	data, err := json.Marshal(record{Version: schemaVersion, Word: w})
	if err != nil {
		return nil, fmt.Errorf("marshaling word: %w", err)
	}
	return data, nil
}

// Decode parses a stored record. Untagged records, the bare
// {"word":...,"definition":...} shape, are accepted as version 0.
func Decode(data []byte) (word.Enriched, error) {
	var probe struct {
		Version *int            `json:"v"`
		Word    json.RawMessage `json:"word"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return word.Enriched{}, fmt.Errorf("unmarshaling record: %w", err)
	}

	var w word.Enriched
	switch {
	case probe.Version == nil:
		if err := json.Unmarshal(data, &w); err != nil {
			return word.Enriched{}, fmt.Errorf("unmarshaling legacy record: %w", err)
		}
	case *probe.Version == schemaVersion:
		if err := json.Unmarshal(probe.Word, &w); err != nil {
			return word.Enriched{}, fmt.Errorf("unmarshaling word: %w", err)
		}
	default:
		return word.Enriched{}, fmt.Errorf("unsupported record version %d", *probe.Version)
	}

	if w.Word == "" {
		return word.Enriched{}, errors.New("record has no word")
	}
	return w, nil
}
