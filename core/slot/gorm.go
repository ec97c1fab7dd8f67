package slot

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileStorage represents the 'profile_storage' table holding mod slot
// values per save profile and scope.
type ProfileStorage struct {
	Profile string `gorm:"column:profile;primaryKey"`
	Scope   string `gorm:"column:scope;primaryKey"`
	Key     string `gorm:"column:slot_key;primaryKey"`
	Value   string `gorm:"column:slot_value"`
}

// TableName overrides the GORM default pluralization.
func (ProfileStorage) TableName() string {
	return "profile_storage"
}

// GormStore is a Store backed by the profile_storage table.
type GormStore struct {
	db      *gorm.DB
	profile string
	scope   string
}

// NewGormStore creates a database-backed store for one (profile, scope) pair.
func NewGormStore(db *gorm.DB, profile, scope string) *GormStore {
	return &GormStore{db: db, profile: profile, scope: scope}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row ProfileStorage
	err := s.db.WithContext(ctx).
		Where("profile = ? AND scope = ? AND slot_key = ?", s.profile, s.scope, key).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	row := ProfileStorage{Profile: s.profile, Scope: s.scope, Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile"}, {Name: "scope"}, {Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"slot_value"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("profile = ? AND scope = ? AND slot_key = ?", s.profile, s.scope, key).
		Delete(&ProfileStorage{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove slot %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Where("profile = ? AND scope = ?", s.profile, s.scope).
		Delete(&ProfileStorage{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear slot scope %q: %w", s.scope, err)
	}
	return nil
}
