package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jersey-hub/models"
	"jersey-hub/repositories"
	"jersey-hub/services"
)

func newTestStore() repositories.Store {
	return repositories.NewMemStore()
}

func TestListBanners(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodGet, "/api/banners", nil)
	require.Equal(t, 200, w.Code)

	var banners []models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banners))
	require.Len(t, banners, 5)
	for i := 1; i < len(banners); i++ {
		assert.LessOrEqual(t, banners[i-1].Order, banners[i].Order)
	}
}

func TestCreateBannerValidation(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodPost, "/api/banners", gin.H{"subtitle": "No title or image"})
	assert.Equal(t, 400, w.Code)

	w = doJSON(router, http.MethodPost, "/api/banners", gin.H{
		"title":    "Winter Sale",
		"imageUrl": "https://example.com/winter.jpg",
		"order":    6,
	})
	require.Equal(t, 201, w.Code)

	var banner models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	assert.Equal(t, 6, banner.ID)
	assert.True(t, banner.IsActive)
}

func TestUpdateAndDeleteBanner(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodPut, "/api/banners/1", gin.H{"title": "Renamed"})
	require.Equal(t, 200, w.Code)

	var banner models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	assert.Equal(t, "Renamed", banner.Title)
	require.NotNil(t, banner.Subtitle)

	w = doJSON(router, http.MethodDelete, "/api/banners/1", nil)
	assert.Equal(t, 204, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/banners/1", nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(router, http.MethodPut, "/api/banners/1", gin.H{"title": "Gone"})
	assert.Equal(t, 404, w.Code)
}

func TestOrders(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/orders", gin.H{
		"jerseyId":     1,
		"customerName": "Asha Rao",
		"size":         "M",
	})
	require.Equal(t, 201, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	w = doJSON(router, http.MethodPost, "/api/orders", gin.H{"status": "cancelled"})
	assert.Equal(t, 400, w.Code)

	w = doJSON(router, http.MethodPost, "/api/orders", gin.H{"customerEmail": "not-an-email"})
	assert.Equal(t, 400, w.Code)
}

func TestStorefrontShelves(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodGet, "/api/storefront", nil)
	require.Equal(t, 200, w.Code)

	var view services.StorefrontView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.False(t, view.Filtering)
	require.Len(t, view.Shelves, 3)
	assert.Equal(t, "Featured Jerseys", view.Shelves[0].Title)
	assert.Len(t, view.Banners, 5)
}

func TestStorefrontFiltering(t *testing.T) {
	router := setupRouter()

	w := doJSON(router, http.MethodGet, "/api/storefront?category=retro&sort=price-low", nil)
	require.Equal(t, 200, w.Code)

	var view services.StorefrontView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.Filtering)
	assert.Empty(t, view.Shelves)
	require.Len(t, view.Results, 2)
	assert.Equal(t, "Inter Milan Retro 1990", view.Results[0].Name)
	assert.Equal(t, "AC Milan Retro 2007", view.Results[1].Name)
	assert.Equal(t, "All Jerseys (2)", view.Title)
}
