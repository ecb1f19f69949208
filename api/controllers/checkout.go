package controllers

import (
	"net/http"
	"strings"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	checkoutsvc "github.com/broger/storefront-backend/internal/checkout"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
)

// QuoteCheckout prices the session cart against the chosen service option
// and reports which required form fields are still missing.
func QuoteCheckout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		details, err := payload.Details.toDetails()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		quote, err := svc.Quote(r.Context(), session, checkoutsvc.QuoteInput{
			ServiceSlug: payload.ServiceSlug,
			Details:     details,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// PlaceOrder validates the form, assembles the order message, and returns
// the messenger hand-off link. The cart is left untouched.
func PlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		session, err := sessionOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload placeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		details, err := payload.Details.toDetails()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		handoff, err := svc.Place(r.Context(), session, checkoutsvc.PlaceInput{
			ServiceSlug: payload.ServiceSlug,
			PaymentSlug: payload.PaymentSlug,
			Details:     details,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, handoff)
	}
}

type customerDetailsRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Landmark      string `json:"landmark"`
	PickupWindow  string `json:"pickup_window"`
	CustomTime    string `json:"custom_time"`
	Notes         string `json:"notes"`
}

func (req customerDetailsRequest) toDetails() (checkoutsvc.CustomerDetails, error) {
	details := checkoutsvc.CustomerDetails{
		Name:          validators.SanitizeString(req.Name, 200),
		ContactNumber: validators.SanitizeString(req.ContactNumber, 50),
		Address:       validators.SanitizeString(req.Address, 500),
		Landmark:      validators.SanitizeString(req.Landmark, 500),
		CustomTime:    validators.SanitizeString(req.CustomTime, 100),
		Notes:         validators.SanitizeString(req.Notes, 1000),
	}
	if raw := strings.TrimSpace(req.PickupWindow); raw != "" {
		window, err := enums.ParsePickupWindow(raw)
		if err != nil {
			return checkoutsvc.CustomerDetails{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid pickup window")
		}
		details.PickupWindow = window
	}
	return details, nil
}

type quoteRequest struct {
	ServiceSlug string                 `json:"service_slug" validate:"required"`
	Details     customerDetailsRequest `json:"details"`
}

type placeRequest struct {
	ServiceSlug string                 `json:"service_slug" validate:"required"`
	PaymentSlug string                 `json:"payment_slug" validate:"required"`
	Details     customerDetailsRequest `json:"details"`
}
