package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/broger/storefront-backend/api/middleware"
	cartsvc "github.com/broger/storefront-backend/internal/cart"
)

type stubCartService struct {
	cart *cartsvc.Cart
	err  error
}

func (s stubCartService) Get(ctx context.Context, sessionID string) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s stubCartService) AddItem(ctx context.Context, sessionID string, input cartsvc.AddItemInput) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s stubCartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s stubCartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func withSession(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), uuid.NewString()))
}

func TestGetCartSuccess(t *testing.T) {
	cart := &cartsvc.Cart{
		SessionID: "abc",
		Items: []cartsvc.CartItem{{
			LineID:    "line-1",
			Name:      "Classic Burger",
			UnitPrice: decimal.RequireFromString("140"),
			Quantity:  2,
		}},
	}
	handler := GetCart(stubCartService{cart: cart}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].LineID != "line-1" {
		t.Fatalf("unexpected cart payload: %+v", envelope.Data)
	}
}

func TestGetCartMissingSessionContext(t *testing.T) {
	handler := GetCart(stubCartService{cart: &cartsvc.Cart{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestAddCartItemRejectsBadID(t *testing.T) {
	handler := AddCartItem(stubCartService{cart: &cartsvc.Cart{}}, nil)

	body := `{"menu_item_id":"not-a-uuid","quantity":1}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAddCartItemRejectsZeroQuantity(t *testing.T) {
	handler := AddCartItem(stubCartService{cart: &cartsvc.Cart{}}, nil)

	body := `{"menu_item_id":"` + uuid.NewString() + `","quantity":0}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestClearCartSuccess(t *testing.T) {
	handler := ClearCart(stubCartService{}, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
