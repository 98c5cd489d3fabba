package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gatepass-backend/internal/domain/settings"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var out settings.Settings
	res := r.db.WithContext(ctx).Where("id = ?", 1).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, settings.ErrNotFound
	}
	return &out, res.Error
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	s.ID = 1
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SettingsRepository) Ensure(ctx context.Context) (*settings.Settings, error) {
	out, err := r.Get(ctx)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, settings.ErrNotFound) {
		return nil, err
	}
	def := settings.Defaults()
	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		// lost the race against another instance seeding the row
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.Get(ctx)
		}
		return nil, err
	}
	return def, nil
}
