package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/broger/storefront-backend/api/middleware"
	cartsvc "github.com/broger/storefront-backend/internal/cart"
	checkoutsvc "github.com/broger/storefront-backend/internal/checkout"
	menusvc "github.com/broger/storefront-backend/internal/menu"
	paymentsvc "github.com/broger/storefront-backend/internal/payments"
	reviewsvc "github.com/broger/storefront-backend/internal/reviews"
	optionsvc "github.com/broger/storefront-backend/internal/serviceoptions"
	sidebarsvc "github.com/broger/storefront-backend/internal/sidebar"
	"github.com/broger/storefront-backend/pkg/config"
	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubMenu struct{}

func (stubMenu) ListMenu(context.Context) ([]models.MenuItem, error) { return nil, nil }
func (stubMenu) GetItem(context.Context, uuid.UUID) (*models.MenuItem, error) {
	return &models.MenuItem{}, nil
}
func (stubMenu) ListAll(context.Context) ([]models.MenuItem, error) { return nil, nil }
func (stubMenu) Create(context.Context, menusvc.ItemInput) (*models.MenuItem, error) {
	return &models.MenuItem{}, nil
}
func (stubMenu) Update(context.Context, uuid.UUID, menusvc.ItemInput) (*models.MenuItem, error) {
	return &models.MenuItem{}, nil
}
func (stubMenu) Delete(context.Context, uuid.UUID) error { return nil }

type stubReviews struct{}

func (stubReviews) Submit(context.Context, reviewsvc.SubmitInput) (*models.Review, error) {
	return &models.Review{}, nil
}
func (stubReviews) ListApproved(context.Context, pagination.Params) (*reviewsvc.Page, error) {
	return &reviewsvc.Page{}, nil
}
func (stubReviews) ListAll(context.Context) ([]models.Review, error) { return nil, nil }
func (stubReviews) SetApproved(context.Context, uuid.UUID, bool) (*models.Review, error) {
	return &models.Review{}, nil
}
func (stubReviews) SetFeatured(context.Context, uuid.UUID, bool) (*models.Review, error) {
	return &models.Review{}, nil
}
func (stubReviews) Delete(context.Context, uuid.UUID) error { return nil }

type stubCart struct{}

func (stubCart) Get(ctx context.Context, sessionID string) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{SessionID: sessionID}, nil
}
func (stubCart) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{SessionID: sessionID}, nil
}
func (stubCart) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{SessionID: sessionID}, nil
}
func (stubCart) RemoveItem(ctx context.Context, sessionID, lineID string) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{SessionID: sessionID}, nil
}
func (stubCart) Clear(context.Context, string) error { return nil }

type stubCheckout struct{}

func (stubCheckout) Quote(context.Context, string, checkoutsvc.QuoteInput) (*checkoutsvc.Quote, error) {
	return &checkoutsvc.Quote{Subtotal: decimal.Zero}, nil
}
func (stubCheckout) Place(context.Context, string, checkoutsvc.PlaceInput) (*checkoutsvc.Handoff, error) {
	return &checkoutsvc.Handoff{}, nil
}

type stubOptions struct{}

func (stubOptions) ListActive(context.Context) ([]models.ServiceOption, error) { return nil, nil }
func (stubOptions) ListAll(context.Context) ([]models.ServiceOption, error)    { return nil, nil }
func (stubOptions) GetBySlug(context.Context, string) (*models.ServiceOption, error) {
	return &models.ServiceOption{}, nil
}
func (stubOptions) Create(context.Context, optionsvc.OptionInput) (*models.ServiceOption, error) {
	return &models.ServiceOption{}, nil
}
func (stubOptions) Update(context.Context, uuid.UUID, optionsvc.OptionInput) (*models.ServiceOption, error) {
	return &models.ServiceOption{}, nil
}
func (stubOptions) Delete(context.Context, uuid.UUID) error { return nil }

type stubPayments struct{}

func (stubPayments) ListActive(context.Context) ([]models.PaymentMethod, error) { return nil, nil }
func (stubPayments) ListAll(context.Context) ([]models.PaymentMethod, error)    { return nil, nil }
func (stubPayments) GetBySlug(context.Context, string) (*models.PaymentMethod, error) {
	return &models.PaymentMethod{}, nil
}
func (stubPayments) Create(context.Context, paymentsvc.MethodInput) (*models.PaymentMethod, error) {
	return &models.PaymentMethod{}, nil
}
func (stubPayments) Update(context.Context, uuid.UUID, paymentsvc.MethodInput) (*models.PaymentMethod, error) {
	return &models.PaymentMethod{}, nil
}
func (stubPayments) Delete(context.Context, uuid.UUID) error { return nil }

type stubSettings struct{}

func (stubSettings) List(context.Context) ([]models.SiteSetting, error) { return nil, nil }
func (stubSettings) Get(context.Context, string) (*models.SiteSetting, error) {
	return &models.SiteSetting{}, nil
}
func (stubSettings) Set(context.Context, string, string) (*models.SiteSetting, error) {
	return &models.SiteSetting{}, nil
}
func (stubSettings) FreeDeliveryThreshold(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("350"), nil
}

type stubSidebar struct{}

func (stubSidebar) Get(context.Context) (*sidebarsvc.Content, error) {
	return &sidebarsvc.Content{}, nil
}
func (stubSidebar) Set(context.Context, string, string) (*models.SidebarContent, error) {
	return &models.SidebarContent{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	return NewRouter(cfg, nil, Services{
		Menu:           stubMenu{},
		Reviews:        stubReviews{},
		Cart:           stubCart{},
		Checkout:       stubCheckout{},
		ServiceOptions: stubOptions{},
		Payments:       stubPayments{},
		Settings:       stubSettings{},
		Sidebar:        stubSidebar{},
	}, Deps{DB: stubPinger{}, Redis: stubPinger{}})
}

func TestHealthProbes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestPublicRoutesMintSession(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	session := resp.Header().Get(middleware.SessionHeader)
	if session == "" {
		t.Fatal("expected a minted session id header")
	}
	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SessionID != session {
		t.Fatalf("cart session %q does not match header %q", envelope.Data.SessionID, session)
	}
}

func TestSessionHeaderRoundTrips(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(middleware.SessionHeader, "session-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get(middleware.SessionHeader); got != "session-123" {
		t.Fatalf("session header = %q, want round-trip", got)
	}
}

func TestPublicRoutesRegistered(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/menu",
		"/api/v1/reviews",
		"/api/v1/service-options",
		"/api/v1/payment-methods",
		"/api/v1/settings",
		"/api/v1/sidebar-content",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestAdminRoutesRegistered(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/admin/v1/ping",
		"/api/admin/v1/menu-items",
		"/api/admin/v1/reviews",
		"/api/admin/v1/service-options",
		"/api/admin/v1/payment-methods",
		"/api/admin/v1/settings",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
