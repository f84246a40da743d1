// Package prefs persists viewer settings as key-value pairs. The only
// setting today is the preferred target language, read on startup and
// written whenever the viewer changes it.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mnadalc/yt-translate-transcription/internal/db"
	"github.com/mnadalc/yt-translate-transcription/internal/language"
)

// PreferredLanguageKey is the storage key for the target-language setting.
const PreferredLanguageKey = "preferred_language"

// ErrNotSet is returned when a preference has never been written.
var ErrNotSet = errors.New("preference is not set")

// Store reads and writes viewer preferences.
type Store interface {
	PreferredLanguage(ctx context.Context) (string, error)
	SetPreferredLanguage(ctx context.Context, code string) error
}

// MemoryStore keeps preferences in process memory. It backs deployments
// without a database and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) PreferredLanguage(_ context.Context) (string, error) {
	if s == nil {
		return "", ErrNotSet
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[PreferredLanguageKey]
	if !ok {
		return "", ErrNotSet
	}
	return value, nil
}

func (s *MemoryStore) SetPreferredLanguage(_ context.Context, code string) error {
	if s == nil {
		return fmt.Errorf("preference store is nil")
	}
	normalized := language.NormalizeCode(code)
	if normalized == "" {
		return fmt.Errorf("language code %q is not valid", code)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[PreferredLanguageKey] = normalized
	return nil
}

// DBStore persists preferences in the database.
type DBStore struct {
	pool *db.Pool
}

func NewDBStore(pool *db.Pool) *DBStore {
	return &DBStore{pool: pool}
}

func (s *DBStore) PreferredLanguage(ctx context.Context) (string, error) {
	if s == nil || s.pool == nil {
		return "", fmt.Errorf("preference store is not initialized")
	}
	value, err := s.pool.GetPreference(ctx, PreferredLanguageKey)
	if db.IsNoRows(err) {
		return "", ErrNotSet
	}
	if err != nil {
		return "", fmt.Errorf("read preferred language: %w", err)
	}
	return value, nil
}

func (s *DBStore) SetPreferredLanguage(ctx context.Context, code string) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("preference store is not initialized")
	}
	normalized := language.NormalizeCode(code)
	if normalized == "" {
		return fmt.Errorf("language code %q is not valid", code)
	}
	return s.pool.UpsertPreference(ctx, PreferredLanguageKey, normalized)
}
