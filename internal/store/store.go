package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var (
	// ErrDuplicateRelationship is returned when the unordered endpoint pair
	// already has a stored relationship. Callers treat it as a benign no-op.
	ErrDuplicateRelationship = errors.New("store: relationship already exists")

	// ErrNotFound is returned when a record lookup matches nothing.
	ErrNotFound = errors.New("store: record not found")
)

// Store is the sqlite-backed implementation of DataAccess.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path. The modernc driver is
// pure Go, so the portal builds without cgo.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	return db, nil
}

// New wraps an opened database in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates every table the portal core persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EntityRelationshipModel{},
		&AppSettingModel{},
		&ReceiptModel{},
		&TransactionModel{},
		&ReimbursementModel{},
		&InventoryItemModel{},
		&MinuteModel{},
		&NewsItemModel{},
		&FAQEntryModel{},
		&EventModel{},
		&MailMessageModel{},
		&PollModel{},
		&FundBudgetModel{},
	)
}

// GetAppSetting returns the stored value for key, or "" when unset.
func (s *Store) GetAppSetting(ctx context.Context, key string) (string, error) {
	var m AppSettingModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Value, nil
}

// SetAppSetting upserts a single settings row. No cross-row coordination is
// needed; last writer wins.
func (s *Store) SetAppSetting(ctx context.Context, key, value string) error {
	m := AppSettingModel{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}
