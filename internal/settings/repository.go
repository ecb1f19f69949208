package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/broger/storefront-backend/internal/repo"
	"github.com/broger/storefront-backend/pkg/db/models"
)

// Repository persists site settings.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// Get loads one setting by key.
func (r *Repository) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := r.base.DB(ctx).First(&setting, "key = ?", key).Error; err != nil {
		return nil, repo.WrapError(err, "setting")
	}
	return &setting, nil
}

// List returns every stored setting.
func (r *Repository) List(ctx context.Context) ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	if err := r.base.DB(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, repo.WrapError(err, "settings")
	}
	return settings, nil
}

// Upsert writes the setting, inserting or replacing by key.
func (r *Repository) Upsert(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error) {
	err := r.base.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
	if err != nil {
		return nil, repo.WrapError(err, "setting")
	}
	return r.Get(ctx, setting.Key)
}
