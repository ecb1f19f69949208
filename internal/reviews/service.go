package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/pagination"
)

// SubmitInput is a customer review submission.
type SubmitInput struct {
	AuthorName string
	Rating     int
	Body       string
	ImageURL   *string
}

// Page is one page of approved reviews.
type Page struct {
	Reviews    []models.Review `json:"reviews"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// Service exposes review submission, listing, and moderation.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*models.Review, error)
	ListApproved(ctx context.Context, params pagination.Params) (*Page, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListApproved(ctx context.Context, params pagination.Params) ([]models.Review, string, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds the review service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	return &service{repo: repo}, nil
}

// Submit stores a new review. It always lands unapproved and unfeatured; the
// back office decides what the storefront shows.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.Review, error) {
	author := strings.TrimSpace(input.AuthorName)
	if author == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author name is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	return s.repo.Create(ctx, &models.Review{
		ID:         uuid.New(),
		AuthorName: author,
		Rating:     input.Rating,
		Body:       strings.TrimSpace(input.Body),
		ImageURL:   input.ImageURL,
	})
}

// ListApproved pages through storefront-visible reviews, newest first.
func (s *service) ListApproved(ctx context.Context, params pagination.Params) (*Page, error) {
	rows, next, err := s.repo.ListApproved(ctx, params)
	if err != nil {
		return nil, err
	}
	return &Page{Reviews: rows, NextCursor: next}, nil
}

// ListAll returns everything for the moderation screen.
func (s *service) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListAll(ctx)
}

// SetApproved approves or unapproves a review.
func (s *service) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review id is required")
	}
	return s.repo.SetApproved(ctx, id, approved)
}

// SetFeatured features or unfeatures a review.
func (s *service) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*models.Review, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "review id is required")
	}
	return s.repo.SetFeatured(ctx, id, featured)
}

// Delete removes a review permanently.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "review id is required")
	}
	return s.repo.Delete(ctx, id)
}
