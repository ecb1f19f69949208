package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/pkg/enums"
)

// ServiceOption is a fulfillment choice shown at checkout (pickup tiers,
// in-house delivery, third-party booking). Kind drives fee and validation
// logic; Slug is the stable identifier the storefront selects by.
type ServiceOption struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Slug        string            `gorm:"column:slug;not null;uniqueIndex"`
	Name        string            `gorm:"column:name;not null"`
	Icon        string            `gorm:"column:icon"`
	Description *string           `gorm:"column:description"`
	Kind        enums.ServiceKind `gorm:"column:kind"`
	IsActive    bool              `gorm:"column:is_active;not null"`
	SortOrder   int               `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectiveKind falls back to the legacy name/slug classification for rows
// written before the kind column existed.
func (s ServiceOption) EffectiveKind() enums.ServiceKind {
	if s.Kind.IsValid() {
		return s.Kind
	}
	return enums.ClassifyService(s.Slug, s.Name)
}
