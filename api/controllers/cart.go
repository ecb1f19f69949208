package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/middleware"
	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	cartsvc "github.com/broger/storefront-backend/internal/cart"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
)

func sessionOrError(r *http.Request) (string, error) {
	session := middleware.SessionIDFromContext(r.Context())
	if session == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return session, nil
}

// GetCart returns the session cart, empty when nothing was added yet.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c, err := svc.Get(r.Context(), session)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

// AddCartItem adds a configured menu item to the session cart. Lines with
// the same configuration merge.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c, err := svc.AddItem(r.Context(), session, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

// UpdateCartItem sets the quantity on a cart line. Zero or less removes it.
func UpdateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c, err := svc.UpdateQuantity(r.Context(), session, chi.URLParam(r, "lineId"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

// RemoveCartItem drops a cart line. Removing an absent line is a no-op.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c, err := svc.RemoveItem(r.Context(), session, chi.URLParam(r, "lineId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, c)
	}
}

// ClearCart empties the session cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Clear(r.Context(), session); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

type cartAddOnRequest struct {
	AddOnID  string `json:"add_on_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type addCartItemRequest struct {
	MenuItemID  string             `json:"menu_item_id" validate:"required,uuid"`
	VariationID *string            `json:"variation_id,omitempty"`
	AddOns      []cartAddOnRequest `json:"add_ons" validate:"dive"`
	Quantity    int                `json:"quantity" validate:"required,min=1"`
}

func (req addCartItemRequest) toInput() (cartsvc.AddItemInput, error) {
	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		return cartsvc.AddItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu item id")
	}
	input := cartsvc.AddItemInput{MenuItemID: menuItemID, Quantity: req.Quantity}
	if req.VariationID != nil {
		variationID, err := uuid.Parse(*req.VariationID)
		if err != nil {
			return cartsvc.AddItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid variation id")
		}
		input.VariationID = &variationID
	}
	for _, addOn := range req.AddOns {
		addOnID, err := uuid.Parse(addOn.AddOnID)
		if err != nil {
			return cartsvc.AddItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid add-on id")
		}
		input.AddOns = append(input.AddOns, cartsvc.AddOnChoice{AddOnID: addOnID, Quantity: addOn.Quantity})
	}
	return input, nil
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
