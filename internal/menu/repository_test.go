package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/broger/storefront-backend/pkg/db/models"
	"github.com/broger/storefront-backend/pkg/enums"
	pkgerrors "github.com/broger/storefront-backend/pkg/errors"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.MenuItem{}, &models.Variation{}, &models.AddOn{}))
	return conn
}

func seedItem(t *testing.T, r *Repository, name string, sortOrder int) *models.MenuItem {
	t.Helper()
	itemID := uuid.New()
	created, err := r.Create(context.Background(), &models.MenuItem{
		ID:        itemID,
		Name:      name,
		BasePrice: decimal.RequireFromString("120"),
		Category:  enums.MenuCategoryGrilledBurger,
		IsActive:  true,
		SortOrder: sortOrder,
		Variations: []models.Variation{
			{ID: uuid.New(), MenuItemID: itemID, Name: "Spicy", PriceDelta: decimal.RequireFromString("10"), SortOrder: 2},
			{ID: uuid.New(), MenuItemID: itemID, Name: "Regular", PriceDelta: decimal.Zero, SortOrder: 1},
		},
		AddOns: []models.AddOn{
			{ID: uuid.New(), MenuItemID: itemID, Name: "Cheese", Price: decimal.RequireFromString("5"), SortOrder: 1},
		},
	})
	require.NoError(t, err)
	return created
}

func TestRepositoryPreloadsChildrenInSortOrder(t *testing.T) {
	r := NewRepository(setupMenuTestDB(t))
	item := seedItem(t, r, "Classic Burger", 1)

	require.Len(t, item.Variations, 2)
	assert.Equal(t, "Regular", item.Variations[0].Name)
	assert.Equal(t, "Spicy", item.Variations[1].Name)
	require.Len(t, item.AddOns, 1)
	assert.Equal(t, "Cheese", item.AddOns[0].Name)
}

func TestRepositoryListActiveFiltersAndOrders(t *testing.T) {
	r := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()

	seedItem(t, r, "Burger B", 2)
	first := seedItem(t, r, "Burger A", 1)
	hidden := seedItem(t, r, "Retired", 3)

	hidden.IsActive = false
	_, err := r.Update(ctx, hidden)
	require.NoError(t, err)

	active, err := r.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepositoryCreateKeepsInactiveFlag(t *testing.T) {
	r := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, &models.MenuItem{
		ID:        uuid.New(),
		Name:      "Off-menu Special",
		BasePrice: decimal.RequireFromString("99"),
		Category:  enums.MenuCategoryGrilledBurger,
		IsActive:  false,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)

	reloaded, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive, "inactive flag must survive the insert")

	active, err := r.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestRepositoryUpdateReplacesChildren(t *testing.T) {
	r := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()
	item := seedItem(t, r, "Classic Burger", 1)

	item.Variations = []models.Variation{
		{ID: uuid.New(), MenuItemID: item.ID, Name: "Double", PriceDelta: decimal.RequireFromString("40"), SortOrder: 1},
	}
	item.AddOns = nil

	updated, err := r.Update(ctx, item)
	require.NoError(t, err)
	require.Len(t, updated.Variations, 1)
	assert.Equal(t, "Double", updated.Variations[0].Name)
	assert.Empty(t, updated.AddOns)

	var orphans int64
	require.NoError(t, r.base.DB(ctx).Model(&models.AddOn{}).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestRepositoryDeleteRemovesChildren(t *testing.T) {
	r := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()
	item := seedItem(t, r, "Classic Burger", 1)

	require.NoError(t, r.Delete(ctx, item.ID))

	_, err := r.GetByID(ctx, item.ID)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	var variations int64
	require.NoError(t, r.base.DB(ctx).Model(&models.Variation{}).Count(&variations).Error)
	assert.Zero(t, variations)

	err = r.Delete(ctx, item.ID)
	appErr = pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
