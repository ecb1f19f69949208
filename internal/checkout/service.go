package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/internal/cart"
	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

type cartReader interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
}

type serviceOptionLoader interface {
	GetBySlug(ctx context.Context, slug string) (*models.ServiceOption, error)
}

type paymentMethodLoader interface {
	GetBySlug(ctx context.Context, slug string) (*models.PaymentMethod, error)
}

type thresholdLoader interface {
	FreeDeliveryThreshold(ctx context.Context) (decimal.Decimal, error)
}

// Config carries the storefront knobs the checkout flow renders with.
type Config struct {
	StoreName       string
	DeliveryFee     decimal.Decimal
	MessengerPageID string
}

// QuoteInput selects the service option and carries the form state to gate.
type QuoteInput struct {
	ServiceSlug string
	Details     CustomerDetails
}

// Quote is everything the checkout screen shows before placing.
type Quote struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	FinalTotal      decimal.Decimal `json:"final_total"`
	FreeDeliveryGap decimal.Decimal `json:"free_delivery_gap"`
	FeeApplies      bool            `json:"fee_applies"`
	Verdict         Verdict         `json:"verdict"`
}

// PlaceInput is QuoteInput plus the chosen payment method.
type PlaceInput struct {
	ServiceSlug string
	PaymentSlug string
	Details     CustomerDetails
}

// Handoff is the placement result: the assembled message and the messenger
// link the client opens. Placing never mutates the cart.
type Handoff struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Service exposes the checkout quote and placement operations.
type Service interface {
	Quote(ctx context.Context, sessionID string, input QuoteInput) (*Quote, error)
	Place(ctx context.Context, sessionID string, input PlaceInput) (*Handoff, error)
}

type service struct {
	carts    cartReader
	options  serviceOptionLoader
	payments paymentMethodLoader
	settings thresholdLoader
	cfg      Config
}

// NewService builds the checkout service.
func NewService(carts cartReader, options serviceOptionLoader, payments paymentMethodLoader, settings thresholdLoader, cfg Config) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart reader required")
	}
	if options == nil {
		return nil, fmt.Errorf("service option loader required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment method loader required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if cfg.StoreName == "" || cfg.MessengerPageID == "" {
		return nil, fmt.Errorf("store name and messenger page id required")
	}
	return &service{carts: carts, options: options, payments: payments, settings: settings, cfg: cfg}, nil
}

// Quote computes subtotal, fee and total for the session's cart against the
// chosen service option, plus the proceed verdict for the given form state.
func (s *service) Quote(ctx context.Context, sessionID string, input QuoteInput) (*Quote, error) {
	c, option, err := s.loadCartAndOption(ctx, sessionID, input.ServiceSlug)
	if err != nil {
		return nil, err
	}
	kind := option.EffectiveKind()

	threshold, err := s.settings.FreeDeliveryThreshold(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := c.Subtotal()
	fee := DeliveryFee(kind, subtotal, threshold, s.cfg.DeliveryFee)

	gap := decimal.Zero
	if kind == enums.ServiceKindInHouseDelivery && subtotal.LessThan(threshold) {
		gap = threshold.Sub(subtotal)
	}

	return &Quote{
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		FinalTotal:      FinalTotal(subtotal, fee),
		FreeDeliveryGap: gap,
		FeeApplies:      fee.IsPositive(),
		Verdict:         ValidateDetails(kind, input.Details),
	}, nil
}

// Place assembles the order message and messenger link. The cart stays as-is
// afterwards; the customer may come back and place again.
func (s *service) Place(ctx context.Context, sessionID string, input PlaceInput) (*Handoff, error) {
	c, option, err := s.loadCartAndOption(ctx, sessionID, input.ServiceSlug)
	if err != nil {
		return nil, err
	}
	kind := option.EffectiveKind()

	if verdict := ValidateDetails(kind, input.Details); !verdict.Valid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer details incomplete").
			WithDetails(verdict)
	}

	payment, err := s.payments.GetBySlug(ctx, input.PaymentSlug)
	if err != nil {
		return nil, err
	}
	if !payment.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method is not available")
	}

	threshold, err := s.settings.FreeDeliveryThreshold(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := c.Subtotal()
	fee := DeliveryFee(kind, subtotal, threshold, s.cfg.DeliveryFee)

	message := AssembleMessage(OrderContext{
		StoreName:     s.cfg.StoreName,
		Customer:      input.Details,
		ServiceName:   option.Name,
		ServiceKind:   kind,
		Items:         c.Items,
		DeliveryFee:   fee,
		FinalTotal:    FinalTotal(subtotal, fee),
		PaymentMethod: payment.Name,
	})
	return &Handoff{
		Message: message,
		URL:     HandoffURL(s.cfg.MessengerPageID, message),
	}, nil
}

func (s *service) loadCartAndOption(ctx context.Context, sessionID, serviceSlug string) (*cart.Cart, *models.ServiceOption, error) {
	if sessionID == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if serviceSlug == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "service option is required")
	}
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if len(c.Items) == 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}
	option, err := s.options.GetBySlug(ctx, serviceSlug)
	if err != nil {
		return nil, nil, err
	}
	if !option.IsActive {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "service option is not available")
	}
	return c, option, nil
}
