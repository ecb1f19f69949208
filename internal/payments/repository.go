package payments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broger/storefront-backend/internal/repo"
	pkgdb "github.com/broger/storefront-backend/pkg/db"
	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

// Repository persists manually settled payment methods.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// ListActive returns active methods in display order.
func (r *Repository) ListActive(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.base.DB(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&methods).Error
	if err != nil {
		return nil, repo.WrapError(err, "payment methods")
	}
	return methods, nil
}

// ListAll returns every method for the back office.
func (r *Repository) ListAll(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.base.DB(ctx).
		Order("sort_order ASC, name ASC").
		Find(&methods).Error
	if err != nil {
		return nil, repo.WrapError(err, "payment methods")
	}
	return methods, nil
}

// GetBySlug loads one method by its stable slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.base.DB(ctx).First(&method, "slug = ?", slug).Error; err != nil {
		return nil, repo.WrapError(err, "payment method")
	}
	return &method, nil
}

// GetByID loads one method.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.base.DB(ctx).First(&method, "id = ?", id).Error; err != nil {
		return nil, repo.WrapError(err, "payment method")
	}
	return &method, nil
}

// Create inserts the method; a duplicate slug is a conflict.
func (r *Repository) Create(ctx context.Context, method *models.PaymentMethod) (*models.PaymentMethod, error) {
	if err := r.base.DB(ctx).Create(method).Error; err != nil {
		if pkgdb.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment method slug already exists")
		}
		return nil, repo.WrapError(err, "payment method")
	}
	return method, nil
}

// Update saves the method's columns.
func (r *Repository) Update(ctx context.Context, method *models.PaymentMethod) (*models.PaymentMethod, error) {
	result := r.base.DB(ctx).
		Model(&models.PaymentMethod{}).
		Where("id = ?", method.ID).
		Updates(map[string]any{
			"slug":           method.Slug,
			"name":           method.Name,
			"account_number": method.AccountNumber,
			"account_name":   method.AccountName,
			"qr_code_url":    method.QRCodeURL,
			"is_active":      method.IsActive,
			"sort_order":     method.SortOrder,
		})
	if result.Error != nil {
		if pkgdb.IsUniqueViolation(result.Error, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "payment method slug already exists")
		}
		return nil, repo.WrapError(result.Error, "payment method")
	}
	if result.RowsAffected == 0 {
		return nil, repo.WrapError(gorm.ErrRecordNotFound, "payment method")
	}
	return r.GetByID(ctx, method.ID)
}

// Delete removes the method.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.base.DB(ctx).Delete(&models.PaymentMethod{}, "id = ?", id)
	if result.Error != nil {
		return repo.WrapError(result.Error, "payment method")
	}
	if result.RowsAffected == 0 {
		return repo.WrapError(gorm.ErrRecordNotFound, "payment method")
	}
	return nil
}
