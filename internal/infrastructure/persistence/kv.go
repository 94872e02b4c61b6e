package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. Each key holds one JSON document; the set of keys is the
// whole persisted state of the store.
const (
	KeyProducts          = "products"
	KeyDeletedProducts   = "products-delete"
	KeyCustomers         = "customers"
	KeyCustomerIDCounter = "customerIdCounter"
	KeySales             = "sales"
	KeySaleIDCounter     = "saleIdCounter"
	KeyDeletedCount      = "deletedCount"
)

// Record is one persisted key-value row
type Record struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "records"
}

// KVStore reads and writes JSON documents under string keys. Mutations go
// through Update, which wraps the read-modify-write of one key in a
// transaction so concurrent writers cannot interleave.
type KVStore struct {
	db     *Database
	logger *zap.Logger
}

// NewKVStore creates a KVStore over the given database
func NewKVStore(db *Database, logger *zap.Logger) *KVStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVStore{db: db, logger: logger}
}

// Migrate creates the records table
func (s *KVStore) Migrate() error {
	return s.db.DB.AutoMigrate(&Record{})
}

// Get unmarshals the value under key into out. When the key is absent or
// holds malformed JSON, out is left at the caller-provided default and the
// malformed value is logged, not propagated.
func (s *KVStore) Get(ctx context.Context, key string, out any) error {
	return s.get(s.db.DB.WithContext(ctx), key, out)
}

func (s *KVStore) get(tx *gorm.DB, key string, out any) error {
	var record Record
	err := tx.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read record %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(record.Value), out); err != nil {
		s.logger.Warn("Malformed persisted value, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}
	return nil
}

// Put marshals value and stores it under key, overwriting any previous value
func (s *KVStore) Put(ctx context.Context, key string, value any) error {
	return s.put(s.db.DB.WithContext(ctx), key, value)
}

func (s *KVStore) put(tx *gorm.DB, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	record := Record{Key: key, Value: string(data), UpdatedAt: time.Now()}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// Exists reports whether a value is stored under key
func (s *KVStore) Exists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := s.db.DB.WithContext(ctx).Model(&Record{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check record %q: %w", key, err)
	}
	return count > 0, nil
}

// Update runs fn inside a transaction. The View passed to fn reads and
// writes through the transaction, so every key touched by fn changes
// atomically with the others.
func (s *KVStore) Update(ctx context.Context, fn func(view *View) error) error {
	return s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&View{store: s, tx: tx})
	})
}

// View is a transactional window onto the store, valid only inside the
// Update callback it was handed to
type View struct {
	store *KVStore
	tx    *gorm.DB
}

// Get reads a key within the transaction
func (v *View) Get(key string, out any) error {
	return v.store.get(v.tx, key, out)
}

// Put writes a key within the transaction
func (v *View) Put(key string, value any) error {
	return v.store.put(v.tx, key, value)
}

// NextCounter increments the integer under key and returns the new value.
// Missing or malformed counters restart from zero.
func (v *View) NextCounter(key string) (int64, error) {
	var current int64
	if err := v.Get(key, &current); err != nil {
		return 0, err
	}
	next := current + 1
	if err := v.Put(key, next); err != nil {
		return 0, err
	}
	return next, nil
}
