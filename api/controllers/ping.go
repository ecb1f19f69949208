package controllers

import (
	"net/http"

	"github.com/broger/storefront-backend/api/middleware"
	"github.com/broger/storefront-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "public", "status": "ok"}
		if session := middleware.SessionIDFromContext(r.Context()); session != "" {
			payload["session_id"] = session
		}
		responses.WriteSuccess(w, payload)
	}
}

func AdminPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "admin", "status": "ok"})
	}
}
