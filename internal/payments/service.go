package payments

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/pkg/db/models"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// MethodInput is the back-office payload for creating or updating a method.
type MethodInput struct {
	Slug          string
	Name          string
	AccountNumber string
	AccountName   string
	QRCodeURL     *string
	IsActive      bool
	SortOrder     int
}

// Service exposes storefront reads and back-office writes for payment
// methods.
type Service interface {
	ListActive(ctx context.Context) ([]models.PaymentMethod, error)
	ListAll(ctx context.Context) ([]models.PaymentMethod, error)
	GetBySlug(ctx context.Context, slug string) (*models.PaymentMethod, error)
	Create(ctx context.Context, input MethodInput) (*models.PaymentMethod, error)
	Update(ctx context.Context, id uuid.UUID, input MethodInput) (*models.PaymentMethod, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	ListActive(ctx context.Context) ([]models.PaymentMethod, error)
	ListAll(ctx context.Context) ([]models.PaymentMethod, error)
	GetBySlug(ctx context.Context, slug string) (*models.PaymentMethod, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error)
	Create(ctx context.Context, method *models.PaymentMethod) (*models.PaymentMethod, error)
	Update(ctx context.Context, method *models.PaymentMethod) (*models.PaymentMethod, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds the payment method service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payment method repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListActive(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.PaymentMethod, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and inserts a new method. Cash on delivery carries no
// account details or QR code.
func (s *service) Create(ctx context.Context, input MethodInput) (*models.PaymentMethod, error) {
	method, err := buildMethod(uuid.New(), input)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, method)
}

// Update validates and saves the method.
func (s *service) Update(ctx context.Context, id uuid.UUID, input MethodInput) (*models.PaymentMethod, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method id is required")
	}
	method, err := buildMethod(id, input)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, method)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method id is required")
	}
	return s.repo.Delete(ctx, id)
}

func buildMethod(id uuid.UUID, input MethodInput) (*models.PaymentMethod, error) {
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug must be lowercase kebab-case")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	method := &models.PaymentMethod{
		ID:            id,
		Slug:          slug,
		Name:          name,
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		AccountName:   strings.TrimSpace(input.AccountName),
		QRCodeURL:     input.QRCodeURL,
		IsActive:      input.IsActive,
		SortOrder:     input.SortOrder,
	}
	if method.IsCashOnDelivery() {
		method.AccountNumber = ""
		method.AccountName = ""
		method.QRCodeURL = nil
	} else if method.AccountNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account number is required")
	}
	return method, nil
}
