package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broger/storefront-backend/internal/repo"
	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/pagination"
)

// Repository persists customer reviews.
type Repository struct {
	base repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// Create inserts the review.
func (r *Repository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.base.DB(ctx).Create(review).Error; err != nil {
		return nil, repo.WrapError(err, "review")
	}
	return review, nil
}

// GetByID loads one review.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := r.base.DB(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, repo.WrapError(err, "review")
	}
	return &review, nil
}

// ListApproved returns approved reviews newest first, one page at a time.
// The extra row signals whether a next page exists.
func (r *Repository) ListApproved(ctx context.Context, params pagination.Params) ([]models.Review, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", repo.WrapError(err, "review cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.base.DB(ctx).
		Where("approved = ?", true).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Review
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", repo.WrapError(err, "reviews")
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, next, nil
}

// ListAll returns every review newest first for moderation.
func (r *Repository) ListAll(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	err := r.base.DB(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, repo.WrapError(err, "reviews")
	}
	return rows, nil
}

// SetApproved flips the approved flag.
func (r *Repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error) {
	return r.setFlag(ctx, id, "approved", approved)
}

// SetFeatured flips the featured flag.
func (r *Repository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*models.Review, error) {
	return r.setFlag(ctx, id, "featured", featured)
}

func (r *Repository) setFlag(ctx context.Context, id uuid.UUID, column string, value bool) (*models.Review, error) {
	result := r.base.DB(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return nil, repo.WrapError(result.Error, "review")
	}
	if result.RowsAffected == 0 {
		return nil, repo.WrapError(gorm.ErrRecordNotFound, "review")
	}
	return r.GetByID(ctx, id)
}

// Delete removes the review.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.base.DB(ctx).Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return repo.WrapError(result.Error, "review")
	}
	if result.RowsAffected == 0 {
		return repo.WrapError(gorm.ErrRecordNotFound, "review")
	}
	return nil
}
