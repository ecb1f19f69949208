package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddOn is an optional, independently quantifiable extra. Price zero means
// the extra is free. MaxQty caps the per-line quantity when set.
type AddOn struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"column:menu_item_id;type:uuid;not null;index"`
	Name       string          `gorm:"column:name;not null"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null;default:0"`
	MaxQty     *int            `gorm:"column:max_qty"`
	SortOrder  int             `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}
