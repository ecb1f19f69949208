package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variation is a mutually exclusive size/type choice with an additive price
// delta on top of the item's base price.
type Variation struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"column:menu_item_id;type:uuid;not null;index"`
	Name       string          `gorm:"column:name;not null"`
	PriceDelta decimal.Decimal `gorm:"column:price_delta;type:numeric(10,2);not null;default:0"`
	SortOrder  int             `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}
