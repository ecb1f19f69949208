package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/money"
)

// VariationInput describes one variation on a menu item write.
type VariationInput struct {
	Name       string
	PriceDelta decimal.Decimal
	SortOrder  int
}

// AddOnInput describes one add-on on a menu item write.
type AddOnInput struct {
	Name      string
	Price     decimal.Decimal
	MaxQty    *int
	SortOrder int
}

// ItemInput is the full menu item payload for create and update. Children
// replace the existing sets on update.
type ItemInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    enums.MenuCategory
	ImageURL    *string
	IsActive    bool
	SortOrder   int
	Variations  []VariationInput
	AddOns      []AddOnInput
}

// Service exposes storefront reads and back-office writes for the catalog.
type Service interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, input ItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, input ItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	ListActive(ctx context.Context) ([]models.MenuItem, error)
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds the catalog service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

// ListMenu returns the storefront catalog: active items in display order.
func (s *service) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.ListActive(ctx)
}

// GetItem loads one item with children; the cart uses this to validate and
// price configurations.
func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// ListAll returns the full catalog for the back office.
func (s *service) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.ListAll(ctx)
}

// Create validates and inserts a new item with its children.
func (s *service) Create(ctx context.Context, input ItemInput) (*models.MenuItem, error) {
	item, err := buildItem(uuid.New(), input)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, item)
}

// Update validates and saves the item, replacing its variation and add-on
// sets with the provided ones.
func (s *service) Update(ctx context.Context, id uuid.UUID, input ItemInput) (*models.MenuItem, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	item, err := buildItem(id, input)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, item)
}

// Delete removes the item and its children.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	return s.repo.Delete(ctx, id)
}

func buildItem(id uuid.UUID, input ItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if money.IsNegative(input.BasePrice) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base price must not be negative")
	}
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}

	variations := make([]models.Variation, 0, len(input.Variations))
	for _, v := range input.Variations {
		if strings.TrimSpace(v.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variation name is required")
		}
		if money.IsNegative(v.PriceDelta) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variation price delta must not be negative")
		}
		variations = append(variations, models.Variation{
			ID:         uuid.New(),
			MenuItemID: id,
			Name:       strings.TrimSpace(v.Name),
			PriceDelta: v.PriceDelta,
			SortOrder:  v.SortOrder,
		})
	}

	addOns := make([]models.AddOn, 0, len(input.AddOns))
	for _, a := range input.AddOns {
		if strings.TrimSpace(a.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "add-on name is required")
		}
		if money.IsNegative(a.Price) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "add-on price must not be negative")
		}
		if a.MaxQty != nil && *a.MaxQty < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "add-on max quantity must be at least 1")
		}
		addOns = append(addOns, models.AddOn{
			ID:         uuid.New(),
			MenuItemID: id,
			Name:       strings.TrimSpace(a.Name),
			Price:      a.Price,
			MaxQty:     a.MaxQty,
			SortOrder:  a.SortOrder,
		})
	}

	return &models.MenuItem{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		BasePrice:   input.BasePrice,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
		Variations:  variations,
		AddOns:      addOns,
	}, nil
}
