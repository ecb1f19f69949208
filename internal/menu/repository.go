package menu

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broger/storefront-backend/internal/repo"
	"github.com/broger/storefront-backend/pkg/db/models"
)

// Repository persists menu items with their variations and add-ons.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

func (r *Repository) preloaded(ctx context.Context) *gorm.DB {
	return r.base.DB(ctx).
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		}).
		Preload("AddOns", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		})
}

// ListActive returns active items in display order with children attached.
func (r *Repository) ListActive(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.preloaded(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&items).Error
	if err != nil {
		return nil, repo.WrapError(err, "menu items")
	}
	return items, nil
}

// ListAll returns every item, active or not, for the back office.
func (r *Repository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.preloaded(ctx).
		Order("sort_order ASC, name ASC").
		Find(&items).Error
	if err != nil {
		return nil, repo.WrapError(err, "menu items")
	}
	return items, nil
}

// GetByID loads one item with children.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.preloaded(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, repo.WrapError(err, "menu item")
	}
	return &item, nil
}

// Create inserts the item together with its children.
func (r *Repository) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.base.DB(ctx).Create(item).Error; err != nil {
		return nil, repo.WrapError(err, "menu item")
	}
	return r.GetByID(ctx, item.ID)
}

// Update saves the item's own columns and replaces its children with the
// provided sets, all in one transaction.
func (r *Repository) Update(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	err := r.base.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"name":        item.Name,
				"description": item.Description,
				"base_price":  item.BasePrice,
				"category":    item.Category,
				"image_url":   item.ImageURL,
				"is_active":   item.IsActive,
				"sort_order":  item.SortOrder,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.Variation{}).Error; err != nil {
			return err
		}
		if len(item.Variations) > 0 {
			if err := tx.Create(&item.Variations).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.AddOn{}).Error; err != nil {
			return err
		}
		if len(item.AddOns) > 0 {
			if err := tx.Create(&item.AddOns).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, repo.WrapError(err, "menu item")
	}
	return r.GetByID(ctx, item.ID)
}

// Delete removes the item and its children.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.base.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.Variation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.AddOn{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.MenuItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return repo.WrapError(err, "menu item")
}
