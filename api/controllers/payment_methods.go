package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	paymentsvc "github.com/broger/storefront-backend/internal/payments"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
)

// ListPaymentMethods returns the active payment methods in sort order.
func ListPaymentMethods(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment method service unavailable"))
			return
		}
		methods, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, methods)
	}
}

// AdminListPaymentMethods returns all payment methods, inactive included.
func AdminListPaymentMethods(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment method service unavailable"))
			return
		}
		methods, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, methods)
	}
}

// AdminCreatePaymentMethod creates a payment method. Cash on delivery
// carries no account details.
func AdminCreatePaymentMethod(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment method service unavailable"))
			return
		}
		var payload paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		method, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, method)
	}
}

// AdminUpdatePaymentMethod replaces a payment method.
func AdminUpdatePaymentMethod(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment method service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "methodId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method id"))
			return
		}
		var payload paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		method, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, method)
	}
}

// AdminDeletePaymentMethod removes a payment method.
func AdminDeletePaymentMethod(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment method service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "methodId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method id"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type paymentMethodRequest struct {
	Slug          string  `json:"slug" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name"`
	QRCodeURL     *string `json:"qr_code_url,omitempty"`
	IsActive      bool    `json:"is_active"`
	SortOrder     int     `json:"sort_order"`
}

func (req paymentMethodRequest) toInput() paymentsvc.MethodInput {
	return paymentsvc.MethodInput{
		Slug:          req.Slug,
		Name:          validators.SanitizeString(req.Name, 200),
		AccountNumber: validators.SanitizeString(req.AccountNumber, 100),
		AccountName:   validators.SanitizeString(req.AccountName, 200),
		QRCodeURL:     req.QRCodeURL,
		IsActive:      req.IsActive,
		SortOrder:     req.SortOrder,
	}
}
