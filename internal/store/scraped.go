package store

import (
	"encoding/json"
	"log"
	"time"

	"github.com/example/telkomportal/internal/models"
	"github.com/example/telkomportal/internal/storage"
)

// ScrapedDataKey is the storage key holding the account-number to bundle map.
const ScrapedDataKey = "telkom_scraped_data"

// ScrapedDataStore persists per-account scrape bundles. The whole map is read,
// modified and written back on every save: last writer wins, with no expiry,
// size bound or per-account locking.
type ScrapedDataStore struct {
	store storage.Store
}

// NewScrapedDataStore builds a ScrapedDataStore.
func NewScrapedDataStore(store storage.Store) *ScrapedDataStore {
	return &ScrapedDataStore{store: store}
}

// Get returns the latest bundle for an account, if one was ever saved.
func (s *ScrapedDataStore) Get(accountNumber string) (models.ScrapedData, bool) {
	data := s.loadAll()
	bundle, ok := data[accountNumber]
	return bundle, ok
}

// Save replaces the account's bundle. LastUpdated is stamped here regardless of
// what the caller supplied, so the stored value always reflects the save time.
func (s *ScrapedDataStore) Save(accountNumber string, bundle models.ScrapedData) error {
	data := s.loadAll()
	bundle.LastUpdated = time.Now().UTC().Format(isoMillis)
	data[accountNumber] = bundle

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.store.Set(ScrapedDataKey, string(raw))
}

func (s *ScrapedDataStore) loadAll() map[string]models.ScrapedData {
	raw, err := s.store.Get(ScrapedDataKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("[scraped] load failed, starting empty: %v", err)
		}
		return map[string]models.ScrapedData{}
	}

	var data map[string]models.ScrapedData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Printf("[scraped] corrupt bundle map, starting empty: %v", err)
		return map[string]models.ScrapedData{}
	}
	if data == nil {
		data = map[string]models.ScrapedData{}
	}
	return data
}
