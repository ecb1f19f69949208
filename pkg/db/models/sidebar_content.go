package models

import "time"

// Sidebar content keys. Unset keys fall back to built-in defaults at read
// time, so a fresh database still renders a complete sidebar.
const (
	SidebarAboutUs        = "sidebar_about_us"
	SidebarContactPhone   = "sidebar_contact_phone"
	SidebarContactEmail   = "sidebar_contact_email"
	SidebarContactMessage = "sidebar_contact_message"
	SidebarDeliveryInfo   = "sidebar_delivery_info"
	SidebarPickupInfo     = "sidebar_pickup_info"
)

// SidebarContent holds one curated informational text block (about, contact,
// delivery notes) keyed by section.
type SidebarContent struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
