package storage

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/telkomportal/internal/models"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable string-key to JSON-value store. Both domain stores persist
// whole collections under a single key, so the interface is deliberately minimal.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store backed by the kv_entries table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string) (string, error) {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (s *gormStore) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// MemoryStore is an in-process Store used by tests and as a no-database fallback.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string

	// FailReads and FailWrites force errors, for exercising degraded paths.
	FailReads  bool
	FailWrites bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailReads {
		return "", errors.New("storage: read unavailable")
	}
	value, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errors.New("storage: write unavailable")
	}
	s.entries[key] = value
	return nil
}
