package sidebar

import (
	"context"
	"fmt"
	"strings"

	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

// Defaults render a complete sidebar on a fresh database; stored rows
// override them per key.
var defaults = map[string]string{
	models.SidebarAboutUs:        "You can also Contact us on our page for faster transaction @Bro-Ger FB page",
	models.SidebarContactPhone:   "+639171102916",
	models.SidebarContactEmail:   "brogerphilippines@gmail.com",
	models.SidebarContactMessage: "+63",
	models.SidebarDeliveryInfo:   "Within bagong barrio",
	models.SidebarPickupInfo:     "Pickup time: WE WILL CONTACT YOU ONCE YOUR ORDER IS DONE",
}

// Content is the assembled sidebar the storefront renders.
type Content struct {
	AboutUs        string `json:"about_us"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	ContactMessage string `json:"contact_message"`
	DeliveryInfo   string `json:"delivery_info"`
	PickupInfo     string `json:"pickup_info"`
}

// Service exposes the assembled sidebar and the back-office upsert.
type Service interface {
	Get(ctx context.Context) (*Content, error)
	Set(ctx context.Context, key, value string) (*models.SidebarContent, error)
}

type repository interface {
	List(ctx context.Context) ([]models.SidebarContent, error)
	Upsert(ctx context.Context, content *models.SidebarContent) (*models.SidebarContent, error)
}

type service struct {
	repo repository
}

// NewService builds the sidebar content service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sidebar repository required")
	}
	return &service{repo: repo}, nil
}

// Get assembles the sidebar, filling unset keys from the defaults.
func (s *service) Get(ctx context.Context) (*Content, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(defaults))
	for key, value := range defaults {
		values[key] = value
	}
	for _, row := range rows {
		if strings.TrimSpace(row.Value) != "" {
			values[row.Key] = row.Value
		}
	}
	return &Content{
		AboutUs:        values[models.SidebarAboutUs],
		ContactPhone:   values[models.SidebarContactPhone],
		ContactEmail:   values[models.SidebarContactEmail],
		ContactMessage: values[models.SidebarContactMessage],
		DeliveryInfo:   values[models.SidebarDeliveryInfo],
		PickupInfo:     values[models.SidebarPickupInfo],
	}, nil
}

// Set upserts one block. Only known sidebar keys are accepted.
func (s *service) Set(ctx context.Context, key, value string) (*models.SidebarContent, error) {
	key = strings.TrimSpace(key)
	if _, ok := defaults[key]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sidebar content key")
	}
	return s.repo.Upsert(ctx, &models.SidebarContent{Key: key, Value: strings.TrimSpace(value)})
}
