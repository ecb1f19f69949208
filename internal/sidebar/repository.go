package sidebar

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/broger/storefront-backend/internal/repo"
	"github.com/broger/storefront-backend/pkg/db/models"
)

// Repository persists sidebar content blocks.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// List returns every stored block.
func (r *Repository) List(ctx context.Context) ([]models.SidebarContent, error) {
	var rows []models.SidebarContent
	if err := r.base.DB(ctx).Find(&rows).Error; err != nil {
		return nil, repo.WrapError(err, "sidebar content")
	}
	return rows, nil
}

// Upsert writes the block, inserting or replacing by key.
func (r *Repository) Upsert(ctx context.Context, content *models.SidebarContent) (*models.SidebarContent, error) {
	err := r.base.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(content).Error
	if err != nil {
		return nil, repo.WrapError(err, "sidebar content")
	}
	var saved models.SidebarContent
	if err := r.base.DB(ctx).First(&saved, "key = ?", content.Key).Error; err != nil {
		return nil, repo.WrapError(err, "sidebar content")
	}
	return &saved, nil
}
