package models

import (
	"time"

	"github.com/google/uuid"
)

// CashOnDeliverySlug marks the distinguished payment method that skips
// QR/proof-of-payment display and is restricted to repeat customers.
const CashOnDeliverySlug = "cash-on-delivery"

// PaymentMethod is a manually settled payment channel (e-wallet, bank, cash
// on delivery). The QR code and account details are shown for the customer
// to pay outside the system.
type PaymentMethod struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Slug          string    `gorm:"column:slug;not null;uniqueIndex"`
	Name          string    `gorm:"column:name;not null"`
	AccountNumber string    `gorm:"column:account_number"`
	AccountName   string    `gorm:"column:account_name"`
	QRCodeURL     *string   `gorm:"column:qr_code_url"`
	IsActive      bool      `gorm:"column:is_active;not null"`
	SortOrder     int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// IsCashOnDelivery reports whether this is the distinguished COD method.
func (p PaymentMethod) IsCashOnDelivery() bool {
	return p.Slug == CashOnDeliverySlug
}
