package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jersey-hub/models"
)

func TestMemStoreSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	jerseys, err := store.ListJerseys(ctx)
	require.NoError(t, err)
	assert.Len(t, jerseys, 12)
	assert.Equal(t, "Barcelona Home 2024", jerseys[0].Name)

	banners, err := store.ListBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 5)
	for i := 1; i < len(banners); i++ {
		assert.LessOrEqual(t, banners[i-1].Order, banners[i].Order)
	}

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateJerseyDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	created, err := store.CreateJersey(ctx, models.CreateJerseyRequest{
		Name:     "Bayern Home 2024",
		Price:    229900,
		ImageURL: "https://example.com/bayern.jpg",
		Category: models.CategoryClub,
		Team:     "Bayern Munich",
	})
	require.NoError(t, err)

	assert.Equal(t, 13, created.ID)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
	assert.Nil(t, created.OriginalPrice)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.Season)

	got, err := store.GetJersey(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestJerseyIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	first, err := store.CreateJersey(ctx, models.CreateJerseyRequest{
		Name: "A", Price: 100, ImageURL: "a.jpg", Category: models.CategoryClub, Team: "A FC",
	})
	require.NoError(t, err)

	deleted, err := store.DeleteJersey(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	second, err := store.CreateJersey(ctx, models.CreateJerseyRequest{
		Name: "B", Price: 100, ImageURL: "b.jpg", Category: models.CategoryClub, Team: "B FC",
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestUpdateJerseyPartial(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	before, err := store.GetJersey(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, before)

	newPrice := 199900
	updated, err := store.UpdateJersey(ctx, 1, models.UpdateJerseyRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Team, updated.Team)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Tags, updated.Tags)
	assert.Equal(t, before.ImageURL, updated.ImageURL)
	assert.Equal(t, before.IsActive, updated.IsActive)
}

func TestUpdateJerseyNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	name := "Ghost"
	updated, err := store.UpdateJersey(ctx, 999, models.UpdateJerseyRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteJersey(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	deleted, err := store.DeleteJersey(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := store.GetJersey(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = store.DeleteJersey(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInactiveJerseyExcludedFromList(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	inactive := false
	_, err := store.UpdateJersey(ctx, 3, models.UpdateJerseyRequest{IsActive: &inactive})
	require.NoError(t, err)

	jerseys, err := store.ListJerseys(ctx)
	require.NoError(t, err)
	for _, j := range jerseys {
		assert.NotEqual(t, 3, j.ID)
	}
	assert.Len(t, jerseys, 11)

	// get-by-id still serves inactive rows for the admin edit path
	got, err := store.GetJersey(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
}

func TestBannerOrderingAndDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	// order defaults to 0, which sorts ahead of the seeded banners
	created, err := store.CreateBanner(ctx, models.CreateBannerRequest{
		Title:    "Clearance",
		ImageURL: "https://example.com/clearance.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Order)
	assert.True(t, created.IsActive)

	banners, err := store.ListBanners(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, banners[0].ID)
}

func TestInactiveBannerExcluded(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	inactive := false
	updated, err := store.UpdateBanner(ctx, 2, models.UpdateBannerRequest{IsActive: &inactive})
	require.NoError(t, err)
	require.NotNil(t, updated)

	banners, err := store.ListBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 4)
	for _, b := range banners {
		assert.NotEqual(t, 2, b.ID)
	}
}

func TestCreateOrderDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	jerseyID := 5
	order, err := store.CreateOrder(ctx, models.CreateOrderRequest{JerseyID: &jerseyID})
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	require.NotNil(t, order.JerseyID)
	assert.Equal(t, jerseyID, *order.JerseyID)
}

func TestDeleteJerseyKeepsOrders(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	jerseyID := 1
	_, err := store.CreateOrder(ctx, models.CreateOrderRequest{JerseyID: &jerseyID})
	require.NoError(t, err)

	_, err = store.DeleteJersey(ctx, jerseyID)
	require.NoError(t, err)

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	require.NotNil(t, orders[0].JerseyID)
	assert.Equal(t, jerseyID, *orders[0].JerseyID)
}
