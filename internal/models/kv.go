package models

import "time"

// KVEntry is the single durable table: string keys mapping to JSON documents.
// The user collection and the scraped-data map each occupy one row.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralization rules.
func (KVEntry) TableName() string {
	return "kv_entries"
}
