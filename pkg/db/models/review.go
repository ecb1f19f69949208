package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer-submitted rating. Reviews land unapproved and only
// show on the storefront once the back office approves them.
type Review struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	AuthorName string    `gorm:"column:author_name;not null"`
	Rating     int       `gorm:"column:rating;not null"`
	Body       string    `gorm:"column:body"`
	ImageURL   *string   `gorm:"column:image_url"`
	Approved   bool      `gorm:"column:approved;not null"`
	Featured   bool      `gorm:"column:featured;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
