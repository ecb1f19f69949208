package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/pkg/enums"
)

// MenuItem is a sellable catalog entry with optional size variations and
// add-ons. Items are immutable from the storefront's point of view; only the
// back office writes them.
type MenuItem struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name        string             `gorm:"column:name;not null"`
	Description string             `gorm:"column:description"`
	BasePrice   decimal.Decimal    `gorm:"column:base_price;type:numeric(10,2);not null"`
	Category    enums.MenuCategory `gorm:"column:category;not null"`
	ImageURL    *string            `gorm:"column:image_url"`
	IsActive    bool               `gorm:"column:is_active;not null"`
	SortOrder   int                `gorm:"column:sort_order;not null;default:0"`
	Variations  []Variation        `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	AddOns      []AddOn            `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
