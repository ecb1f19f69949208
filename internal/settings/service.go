package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
	"github.com/broger/storefront-backend/pkg/money"
)

// Service exposes site settings reads and the back-office upsert.
type Service interface {
	List(ctx context.Context) ([]models.SiteSetting, error)
	Get(ctx context.Context, key string) (*models.SiteSetting, error)
	Set(ctx context.Context, key, value string) (*models.SiteSetting, error)
	FreeDeliveryThreshold(ctx context.Context) (decimal.Decimal, error)
}

type repository interface {
	Get(ctx context.Context, key string) (*models.SiteSetting, error)
	List(ctx context.Context) ([]models.SiteSetting, error)
	Upsert(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error)
}

type service struct {
	repo             repository
	defaultThreshold decimal.Decimal
}

// NewService builds the settings service with the configured fallback
// threshold.
func NewService(repo repository, defaultThreshold decimal.Decimal) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	if money.IsNegative(defaultThreshold) {
		return nil, fmt.Errorf("default threshold must not be negative")
	}
	return &service{repo: repo, defaultThreshold: defaultThreshold}, nil
}

func (s *service) List(ctx context.Context) ([]models.SiteSetting, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key is required")
	}
	return s.repo.Get(ctx, key)
}

// Set validates and upserts a setting. The free-delivery threshold must stay
// a non-negative decimal since checkout math depends on it.
func (s *service) Set(ctx context.Context, key, value string) (*models.SiteSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key is required")
	}
	value = strings.TrimSpace(value)
	if key == models.FreeDeliveryThresholdKey {
		amount, err := money.FromString(value)
		if err != nil || money.IsNegative(amount) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				"free delivery threshold must be a non-negative amount")
		}
	}
	return s.repo.Upsert(ctx, &models.SiteSetting{Key: key, Value: value})
}

// FreeDeliveryThreshold reads the threshold, falling back to the configured
// default when the setting is absent or unparseable.
func (s *service) FreeDeliveryThreshold(ctx context.Context) (decimal.Decimal, error) {
	setting, err := s.repo.Get(ctx, models.FreeDeliveryThresholdKey)
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
			return s.defaultThreshold, nil
		}
		return decimal.Zero, err
	}
	amount, err := money.FromString(setting.Value)
	if err != nil || money.IsNegative(amount) {
		return s.defaultThreshold, nil
	}
	return amount, nil
}
