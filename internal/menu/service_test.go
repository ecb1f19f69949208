package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.MenuItem{}, &models.Variation{}, &models.AddOn{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func burgerInput() ItemInput {
	maxTwo := 2
	return ItemInput{
		Name:      "Classic Burger",
		BasePrice: d("120"),
		Category:  enums.MenuCategoryGrilledBurger,
		IsActive:  true,
		SortOrder: 1,
		Variations: []VariationInput{
			{Name: "Regular", PriceDelta: d("0"), SortOrder: 1},
			{Name: "Spicy", PriceDelta: d("10"), SortOrder: 2},
		},
		AddOns: []AddOnInput{
			{Name: "Cheese", Price: d("5"), MaxQty: &maxTwo, SortOrder: 1},
		},
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, burgerInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if len(created.Variations) != 2 || len(created.AddOns) != 1 {
		t.Fatalf("children not persisted: %d variations, %d add-ons",
			len(created.Variations), len(created.AddOns))
	}
	if created.Variations[0].Name != "Regular" || created.Variations[1].Name != "Spicy" {
		t.Fatalf("variations out of order: %+v", created.Variations)
	}

	got, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if !got.BasePrice.Equal(d("120")) {
		t.Fatalf("base price = %s, want 120", got.BasePrice)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ItemInput)
	}{
		{"empty name", func(in *ItemInput) { in.Name = "  " }},
		{"negative base price", func(in *ItemInput) { in.BasePrice = d("-1") }},
		{"unknown category", func(in *ItemInput) { in.Category = "sushi" }},
		{"negative variation delta", func(in *ItemInput) { in.Variations[0].PriceDelta = d("-5") }},
		{"negative add-on price", func(in *ItemInput) { in.AddOns[0].Price = d("-5") }},
		{"zero add-on cap", func(in *ItemInput) { zero := 0; in.AddOns[0].MaxQty = &zero }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := burgerInput()
			tc.mutate(&input)
			_, err := svc.Create(ctx, input)
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestListMenuOnlyActive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, burgerInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	hidden := burgerInput()
	hidden.Name = "Retired Burger"
	hidden.IsActive = false
	if _, err := svc.Create(ctx, hidden); err != nil {
		t.Fatalf("Create hidden: %v", err)
	}

	visible, err := svc.ListMenu(ctx)
	if err != nil {
		t.Fatalf("ListMenu: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Classic Burger" {
		t.Fatalf("expected only active items, got %+v", visible)
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both items for back office, got %d", len(all))
	}
}

func TestUpdateReplacesChildren(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, burgerInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	input := burgerInput()
	input.Name = "Classic Burger v2"
	input.BasePrice = d("130")
	input.Variations = []VariationInput{{Name: "Jumbo", PriceDelta: d("30"), SortOrder: 1}}
	input.AddOns = nil

	updated, err := svc.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Classic Burger v2" || !updated.BasePrice.Equal(d("130")) {
		t.Fatalf("columns not updated: %+v", updated)
	}
	if len(updated.Variations) != 1 || updated.Variations[0].Name != "Jumbo" {
		t.Fatalf("variations not replaced: %+v", updated.Variations)
	}
	if len(updated.AddOns) != 0 {
		t.Fatalf("add-ons not removed: %+v", updated.AddOns)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), burgerInput())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, burgerInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetItem(ctx, created.ID); pkgerrors.As(err) == nil {
		t.Fatalf("expected item gone, got %v", err)
	}
	err = svc.Delete(ctx, created.ID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND on second delete, got %v", err)
	}
}
