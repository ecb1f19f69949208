package serviceoptions

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// OptionInput is the back-office payload for creating or updating an option.
// Kind is optional: when empty it is classified from the slug and name, the
// same rule applied to legacy rows at read time.
type OptionInput struct {
	Slug        string
	Name        string
	Icon        string
	Description *string
	Kind        string
	IsActive    bool
	SortOrder   int
}

// Service exposes storefront reads and back-office writes for service options.
type Service interface {
	ListActive(ctx context.Context) ([]models.ServiceOption, error)
	ListAll(ctx context.Context) ([]models.ServiceOption, error)
	GetBySlug(ctx context.Context, slug string) (*models.ServiceOption, error)
	Create(ctx context.Context, input OptionInput) (*models.ServiceOption, error)
	Update(ctx context.Context, id uuid.UUID, input OptionInput) (*models.ServiceOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	ListActive(ctx context.Context) ([]models.ServiceOption, error)
	ListAll(ctx context.Context) ([]models.ServiceOption, error)
	GetBySlug(ctx context.Context, slug string) (*models.ServiceOption, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOption, error)
	Create(ctx context.Context, option *models.ServiceOption) (*models.ServiceOption, error)
	Update(ctx context.Context, option *models.ServiceOption) (*models.ServiceOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds the service option service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("service option repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]models.ServiceOption, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]models.ServiceOption, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.ServiceOption, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and inserts a new option, assigning its kind at write
// time.
func (s *service) Create(ctx context.Context, input OptionInput) (*models.ServiceOption, error) {
	option, err := buildOption(uuid.New(), input)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, option)
}

// Update validates and saves the option.
func (s *service) Update(ctx context.Context, id uuid.UUID, input OptionInput) (*models.ServiceOption, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service option id is required")
	}
	option, err := buildOption(id, input)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, option)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "service option id is required")
	}
	return s.repo.Delete(ctx, id)
}

func buildOption(id uuid.UUID, input OptionInput) (*models.ServiceOption, error) {
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug must be lowercase kebab-case")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	var kind enums.ServiceKind
	if strings.TrimSpace(input.Kind) == "" {
		kind = enums.ClassifyService(slug, name)
	} else {
		parsed, err := enums.ParseServiceKind(input.Kind)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown service kind")
		}
		kind = parsed
	}

	return &models.ServiceOption{
		ID:          id,
		Slug:        slug,
		Name:        name,
		Icon:        strings.TrimSpace(input.Icon),
		Description: input.Description,
		Kind:        kind,
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	}, nil
}
