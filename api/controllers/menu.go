package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	menusvc "github.com/broger/storefront-backend/internal/menu"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
	"github.com/broger/storefront-backend/pkg/money"
)

// GetMenu returns the active catalog the storefront renders.
func GetMenu(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}
		items, err := svc.ListMenu(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// AdminListMenuItems returns the full catalog, inactive items included.
func AdminListMenuItems(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}
		items, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// AdminCreateMenuItem creates a menu item with its variations and add-ons.
func AdminCreateMenuItem(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}
		var payload menuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// AdminUpdateMenuItem replaces a menu item, including its child sets.
func AdminUpdateMenuItem(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu item id"))
			return
		}
		var payload menuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminDeleteMenuItem removes a menu item and its children.
func AdminDeleteMenuItem(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu item id"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type menuVariationRequest struct {
	Name       string `json:"name" validate:"required"`
	PriceDelta string `json:"price_delta" validate:"required"`
	SortOrder  int    `json:"sort_order"`
}

type menuAddOnRequest struct {
	Name      string `json:"name" validate:"required"`
	Price     string `json:"price" validate:"required"`
	MaxQty    *int   `json:"max_qty,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type menuItemRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	BasePrice   string                 `json:"base_price" validate:"required"`
	Category    string                 `json:"category" validate:"required"`
	ImageURL    *string                `json:"image_url,omitempty"`
	IsActive    bool                   `json:"is_active"`
	SortOrder   int                    `json:"sort_order"`
	Variations  []menuVariationRequest `json:"variations" validate:"dive"`
	AddOns      []menuAddOnRequest     `json:"add_ons" validate:"dive"`
}

func (req menuItemRequest) toInput() (menusvc.ItemInput, error) {
	category, err := enums.ParseMenuCategory(req.Category)
	if err != nil {
		return menusvc.ItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu category")
	}
	basePrice, err := money.FromString(req.BasePrice)
	if err != nil {
		return menusvc.ItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid base price")
	}
	input := menusvc.ItemInput{
		Name:        validators.SanitizeString(req.Name, 200),
		Description: validators.SanitizeString(req.Description, 2000),
		BasePrice:   basePrice,
		Category:    category,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}
	for _, variation := range req.Variations {
		delta, err := money.FromString(variation.PriceDelta)
		if err != nil {
			return menusvc.ItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid variation price delta")
		}
		input.Variations = append(input.Variations, menusvc.VariationInput{
			Name:       validators.SanitizeString(variation.Name, 200),
			PriceDelta: delta,
			SortOrder:  variation.SortOrder,
		})
	}
	for _, addOn := range req.AddOns {
		price, err := money.FromString(addOn.Price)
		if err != nil {
			return menusvc.ItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid add-on price")
		}
		input.AddOns = append(input.AddOns, menusvc.AddOnInput{
			Name:      validators.SanitizeString(addOn.Name, 200),
			Price:     price,
			MaxQty:    addOn.MaxQty,
			SortOrder: addOn.SortOrder,
		})
	}
	return input, nil
}
