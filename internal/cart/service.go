package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/internal/pricing"
	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

type catalogLoader interface {
	GetItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

// AddOnChoice selects one add-on and how many of it.
type AddOnChoice struct {
	AddOnID  uuid.UUID
	Quantity int
}

// AddItemInput is the payload for adding a configured item to the cart.
type AddItemInput struct {
	MenuItemID  uuid.UUID
	VariationID *uuid.UUID
	AddOns      []AddOnChoice
	Quantity    int
}

// Service exposes session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID, lineID string) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store   Store
	catalog catalogLoader
	now     func() time.Time
}

// NewService builds a cart service backed by the provided store and catalog.
func NewService(store Store, catalog catalogLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	return &service{store: store, catalog: catalog, now: time.Now}, nil
}

// Get loads the cart for the session. A missing cart is an empty cart.
func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return s.store.Load(ctx, sessionID)
}

// AddItem validates the configuration against the catalog, freezes the unit
// price, and merges the line into an existing one with the same
// configuration key.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if input.MenuItemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item id is required")
	}
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	item, err := s.catalog.GetItem(ctx, input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu item is not available")
	}

	variation, err := resolveVariation(item, input.VariationID)
	if err != nil {
		return nil, err
	}
	addOns, err := resolveAddOns(item, input.AddOns)
	if err != nil {
		return nil, err
	}

	line := CartItem{
		LineID:     LineKey(item.ID, input.VariationID, addOns),
		MenuItemID: item.ID,
		Name:       item.Name,
		BasePrice:  item.BasePrice,
		Variation:  variation,
		AddOns:     addOns,
		UnitPrice:  unitPriceFor(item, variation, addOns),
		Quantity:   input.Quantity,
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range c.Items {
		if c.Items[i].LineID == line.LineID {
			c.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, line)
	}
	c.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity replaces a line's quantity; zero or below removes the line.
// Repeating the same call yields the same cart.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, lineID)
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range c.Items {
		if c.Items[i].LineID == lineID {
			c.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	c.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem drops the line if present. Removing an absent line is a no-op
// so repeated removals stay idempotent.
func (s *service) RemoveItem(ctx context.Context, sessionID, lineID string) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.LineID != lineID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.Items) {
		return c, nil
	}
	c.Items = kept
	c.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes the whole cart for the session.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return s.store.Delete(ctx, sessionID)
}

func resolveVariation(item *models.MenuItem, variationID *uuid.UUID) (*SelectedVariation, error) {
	if variationID == nil {
		return nil, nil
	}
	for _, v := range item.Variations {
		if v.ID == *variationID {
			return &SelectedVariation{ID: v.ID, Name: v.Name, PriceDelta: v.PriceDelta}, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "variation does not belong to this item")
}

func resolveAddOns(item *models.MenuItem, choices []AddOnChoice) ([]SelectedAddOn, error) {
	if len(choices) == 0 {
		return nil, nil
	}
	byID := make(map[uuid.UUID]models.AddOn, len(item.AddOns))
	for _, a := range item.AddOns {
		byID[a.ID] = a
	}
	selected := make([]SelectedAddOn, 0, len(choices))
	seen := make(map[uuid.UUID]struct{}, len(choices))
	for _, choice := range choices {
		if choice.Quantity <= 0 {
			// Zero quantity means "not selected"; never stored.
			continue
		}
		if _, dup := seen[choice.AddOnID]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate add-on selection")
		}
		seen[choice.AddOnID] = struct{}{}
		addOn, ok := byID[choice.AddOnID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "add-on does not belong to this item")
		}
		if addOn.MaxQty != nil && choice.Quantity > *addOn.MaxQty {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("add-on %q allows at most %d per item", addOn.Name, *addOn.MaxQty))
		}
		selected = append(selected, SelectedAddOn{
			ID:       addOn.ID,
			Name:     addOn.Name,
			Price:    addOn.Price,
			Quantity: choice.Quantity,
		})
	}
	if len(selected) == 0 {
		return nil, nil
	}
	return selected, nil
}

func unitPriceFor(item *models.MenuItem, variation *SelectedVariation, addOns []SelectedAddOn) decimal.Decimal {
	delta := decimal.Zero
	if variation != nil {
		delta = variation.PriceDelta
	}
	selections := make([]pricing.AddOnSelection, 0, len(addOns))
	for _, addOn := range addOns {
		selections = append(selections, pricing.AddOnSelection{Price: addOn.Price, Quantity: addOn.Quantity})
	}
	return pricing.UnitPrice(item.BasePrice, delta, selections)
}
