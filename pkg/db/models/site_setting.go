package models

import "time"

// FreeDeliveryThresholdKey is the only setting the checkout core reads.
const FreeDeliveryThresholdKey = "free_delivery_threshold"

// SiteSetting is a sparse key-value bag for storefront configuration.
type SiteSetting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
