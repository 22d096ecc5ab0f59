package services

import (
	"context"

	"jersey-hub/models"
	"jersey-hub/repositories"
)

// CatalogService fronts the store for the HTTP layer. Payloads are already
// schema-validated by the DTO bindings when they reach this point.
type CatalogService struct {
	store repositories.Store
}

func NewCatalogService(store repositories.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListJerseys(ctx context.Context) ([]models.Jersey, error) {
	return s.store.ListJerseys(ctx)
}

func (s *CatalogService) GetJersey(ctx context.Context, id int) (*models.Jersey, error) {
	return s.store.GetJersey(ctx, id)
}

func (s *CatalogService) CreateJersey(ctx context.Context, req models.CreateJerseyRequest) (*models.Jersey, error) {
	return s.store.CreateJersey(ctx, req)
}

func (s *CatalogService) UpdateJersey(ctx context.Context, id int, req models.UpdateJerseyRequest) (*models.Jersey, error) {
	return s.store.UpdateJersey(ctx, id, req)
}

func (s *CatalogService) DeleteJersey(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteJersey(ctx, id)
}

func (s *CatalogService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return s.store.ListBanners(ctx)
}

func (s *CatalogService) CreateBanner(ctx context.Context, req models.CreateBannerRequest) (*models.Banner, error) {
	return s.store.CreateBanner(ctx, req)
}

func (s *CatalogService) UpdateBanner(ctx context.Context, id int, req models.UpdateBannerRequest) (*models.Banner, error) {
	return s.store.UpdateBanner(ctx, id, req)
}

func (s *CatalogService) DeleteBanner(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteBanner(ctx, id)
}

func (s *CatalogService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *CatalogService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	return s.store.CreateOrder(ctx, req)
}
