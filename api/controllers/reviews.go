package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/responses"
	"github.com/broger/storefront-backend/api/validators"
	reviewsvc "github.com/broger/storefront-backend/internal/reviews"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/logger"
	"github.com/broger/storefront-backend/pkg/pagination"
)

// ListReviews returns a cursor page of approved reviews, newest first.
func ListReviews(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.ListApproved(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// SubmitReview accepts a customer review. It lands unapproved and stays
// hidden until moderation approves it.
func SubmitReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}
		var payload submitReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		review, err := svc.Submit(r.Context(), reviewsvc.SubmitInput{
			AuthorName: validators.SanitizeString(payload.AuthorName, 200),
			Rating:     payload.Rating,
			Body:       validators.SanitizeString(payload.Body, 4000),
			ImageURL:   payload.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

// AdminListReviews returns every review regardless of moderation state.
func AdminListReviews(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}
		reviews, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reviews)
	}
}

// AdminModerateReview flips the approved and featured flags on a review.
func AdminModerateReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "reviewId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid review id"))
			return
		}
		var payload moderateReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Approved == nil && payload.Featured == nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "at least one of approved or featured is required"))
			return
		}
		var review any
		if payload.Approved != nil {
			review, err = svc.SetApproved(r.Context(), id, *payload.Approved)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if payload.Featured != nil {
			review, err = svc.SetFeatured(r.Context(), id, *payload.Featured)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, review)
	}
}

// AdminDeleteReview removes a review permanently.
func AdminDeleteReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "reviewId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid review id"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type submitReviewRequest struct {
	AuthorName string  `json:"author_name" validate:"required"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Body       string  `json:"body"`
	ImageURL   *string `json:"image_url,omitempty"`
}

type moderateReviewRequest struct {
	Approved *bool `json:"approved,omitempty"`
	Featured *bool `json:"featured,omitempty"`
}
