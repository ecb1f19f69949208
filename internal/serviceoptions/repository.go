package serviceoptions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broger/storefront-backend/internal/repo"
	"github.com/broger/storefront-backend/pkg/db/models"
	pkgdb "github.com/broger/storefront-backend/pkg/db"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

// Repository persists fulfillment service options.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// ListActive returns active options in display order.
func (r *Repository) ListActive(ctx context.Context) ([]models.ServiceOption, error) {
	var options []models.ServiceOption
	err := r.base.DB(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&options).Error
	if err != nil {
		return nil, repo.WrapError(err, "service options")
	}
	return options, nil
}

// ListAll returns every option for the back office.
func (r *Repository) ListAll(ctx context.Context) ([]models.ServiceOption, error) {
	var options []models.ServiceOption
	err := r.base.DB(ctx).
		Order("sort_order ASC, name ASC").
		Find(&options).Error
	if err != nil {
		return nil, repo.WrapError(err, "service options")
	}
	return options, nil
}

// GetBySlug loads one option by its stable slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.ServiceOption, error) {
	var option models.ServiceOption
	if err := r.base.DB(ctx).First(&option, "slug = ?", slug).Error; err != nil {
		return nil, repo.WrapError(err, "service option")
	}
	return &option, nil
}

// GetByID loads one option.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOption, error) {
	var option models.ServiceOption
	if err := r.base.DB(ctx).First(&option, "id = ?", id).Error; err != nil {
		return nil, repo.WrapError(err, "service option")
	}
	return &option, nil
}

// Create inserts the option; a duplicate slug is a conflict.
func (r *Repository) Create(ctx context.Context, option *models.ServiceOption) (*models.ServiceOption, error) {
	if err := r.base.DB(ctx).Create(option).Error; err != nil {
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "service option slug already exists")
		}
		return nil, repo.WrapError(err, "service option")
	}
	return option, nil
}

// Update saves the option's columns.
func (r *Repository) Update(ctx context.Context, option *models.ServiceOption) (*models.ServiceOption, error) {
	result := r.base.DB(ctx).
		Model(&models.ServiceOption{}).
		Where("id = ?", option.ID).
		Updates(map[string]any{
			"slug":        option.Slug,
			"name":        option.Name,
			"icon":        option.Icon,
			"description": option.Description,
			"kind":        option.Kind,
			"is_active":   option.IsActive,
			"sort_order":  option.SortOrder,
		})
	if result.Error != nil {
		if pkgdb.IsUniqueViolation(result.Error, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "service option slug already exists")
		}
		return nil, repo.WrapError(result.Error, "service option")
	}
	if result.RowsAffected == 0 {
		return nil, repo.WrapError(gorm.ErrRecordNotFound, "service option")
	}
	return r.GetByID(ctx, option.ID)
}

// Delete removes the option.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.base.DB(ctx).Delete(&models.ServiceOption{}, "id = ?", id)
	if result.Error != nil {
		return repo.WrapError(result.Error, "service option")
	}
	if result.RowsAffected == 0 {
		return repo.WrapError(gorm.ErrRecordNotFound, "service option")
	}
	return nil
}
