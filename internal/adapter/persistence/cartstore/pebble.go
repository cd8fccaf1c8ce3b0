package cartstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"alu_portal/internal/usecase/interfaces"

	"github.com/cockroachdb/pebble"
)

// PebbleStorage keeps cart slots in a local Pebble database, the
// equivalent of per-device browser storage for a single portal node.
type PebbleStorage struct {
	db *pebble.DB
}

var _ interfaces.ICartStorage = (*PebbleStorage)(nil)

func NewPebbleStorage(dir string) (*PebbleStorage, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStorage{db: db}, nil
}

func (s *PebbleStorage) Close() error { return s.db.Close() }

func (s *PebbleStorage) Read(_ context.Context, key string) (string, bool, error) {
	v, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer closer.Close()
	return string(v), true, nil
}

// Write syncs so a saved cart survives a crash right after the mutation.
func (s *PebbleStorage) Write(_ context.Context, key, value string) error {
	return s.db.Set([]byte(key), []byte(value), pebble.Sync)
}
