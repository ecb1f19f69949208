package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	reviewsvc "github.com/broger/storefront-backend/internal/reviews"
	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/pagination"
)

type stubReviewService struct {
	review *models.Review
	page   *reviewsvc.Page
	err    error
}

func (s stubReviewService) Submit(ctx context.Context, input reviewsvc.SubmitInput) (*models.Review, error) {
	return s.review, s.err
}

func (s stubReviewService) ListApproved(ctx context.Context, params pagination.Params) (*reviewsvc.Page, error) {
	return s.page, s.err
}

func (s stubReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return nil, s.err
}

func (s stubReviewService) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error) {
	return s.review, s.err
}

func (s stubReviewService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*models.Review, error) {
	return s.review, s.err
}

func (s stubReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestSubmitReviewCreated(t *testing.T) {
	review := &models.Review{ID: uuid.New(), AuthorName: "Maria", Rating: 5}
	handler := SubmitReview(stubReviewService{review: review}, nil)

	body := `{"author_name":"Maria","rating":5,"body":"Sarap!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestSubmitReviewRejectsRatingOutOfRange(t *testing.T) {
	handler := SubmitReview(stubReviewService{}, nil)

	body := `{"author_name":"Maria","rating":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestListReviewsRejectsBadLimit(t *testing.T) {
	handler := ListReviews(stubReviewService{page: &reviewsvc.Page{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews?limit=9999", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminModerateReviewRequiresAFlag(t *testing.T) {
	handler := AdminModerateReview(stubReviewService{}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/reviews/"+uuid.NewString(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "reviewId", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
