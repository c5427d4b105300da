package repository

import (
	"errors"

	"go-printpos-ws/internal/model"

	"gorm.io/gorm"
)

type StoreSettingsRepository interface {
	Get() (*model.StoreSettings, error)
	Update(fields map[string]interface{}) (*model.StoreSettings, error)
}

type storeSettingsRepo struct {
	db *gorm.DB
}

func NewStoreSettingsRepo(db *gorm.DB) StoreSettingsRepository {
	return &storeSettingsRepo{db}
}

// Get returns the singleton settings row, creating it with defaults on
// first read.
func (r *storeSettingsRepo) Get() (*model.StoreSettings, error) {
	var settings model.StoreSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.DefaultStoreSettings
		settings.CreatedBy = "system"
		settings.UpdatedBy = "system"
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update merges the given fields into the singleton row, creating it
// first if needed.
func (r *storeSettingsRepo) Update(fields map[string]interface{}) (*model.StoreSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(settings).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get()
}
