package controllers

import (
	"net/http"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	sidebarsvc "github.com/broger/storefront-backend/internal/sidebar"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
)

// GetSidebar returns the assembled sidebar content, defaults filled in for
// any block the back office has not customized.
func GetSidebar(svc sidebarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sidebar service unavailable"))
			return
		}
		content, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, content)
	}
}

// AdminSetSidebarContent upserts one sidebar block by key.
func AdminSetSidebarContent(svc sidebarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sidebar service unavailable"))
			return
		}
		var payload setSidebarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		content, err := svc.Set(r.Context(), payload.Key, payload.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, content)
	}
}

type setSidebarRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}
