package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	optionsvc "github.com/broger/storefront-backend/internal/serviceoptions"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
)

// ListServiceOptions returns the active fulfilment choices in sort order.
func ListServiceOptions(svc optionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "service option service unavailable"))
			return
		}
		options, err := svc.ListActive(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// AdminListServiceOptions returns all fulfilment choices, inactive included.
func AdminListServiceOptions(svc optionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "service option service unavailable"))
			return
		}
		options, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// AdminCreateServiceOption creates a fulfilment choice. An empty kind is
// classified from the slug and name.
func AdminCreateServiceOption(svc optionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "service option service unavailable"))
			return
		}
		var payload serviceOptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		option, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, option)
	}
}

// AdminUpdateServiceOption replaces a fulfilment choice.
func AdminUpdateServiceOption(svc optionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "service option service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "optionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service option id"))
			return
		}
		var payload serviceOptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		option, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, option)
	}
}

// AdminDeleteServiceOption removes a fulfilment choice.
func AdminDeleteServiceOption(svc optionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "service option service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "optionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service option id"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type serviceOptionRequest struct {
	Slug        string  `json:"slug" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Icon        string  `json:"icon"`
	Description *string `json:"description,omitempty"`
	Kind        string  `json:"kind"`
	IsActive    bool    `json:"is_active"`
	SortOrder   int     `json:"sort_order"`
}

func (req serviceOptionRequest) toInput() optionsvc.OptionInput {
	return optionsvc.OptionInput{
		Slug:        req.Slug,
		Name:        validators.SanitizeString(req.Name, 200),
		Icon:        validators.SanitizeString(req.Icon, 50),
		Description: req.Description,
		Kind:        req.Kind,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}
}
