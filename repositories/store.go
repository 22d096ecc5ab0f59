package repositories

import (
	"context"

	"jersey-hub/models"
)

// Store is the catalog storage contract. Get/Update return (nil, nil) when the
// id is unknown; Delete reports whether anything was removed.
type Store interface {
	ListJerseys(ctx context.Context) ([]models.Jersey, error)
	GetJersey(ctx context.Context, id int) (*models.Jersey, error)
	CreateJersey(ctx context.Context, req models.CreateJerseyRequest) (*models.Jersey, error)
	UpdateJersey(ctx context.Context, id int, req models.UpdateJerseyRequest) (*models.Jersey, error)
	DeleteJersey(ctx context.Context, id int) (bool, error)

	ListBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, req models.CreateBannerRequest) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id int, req models.UpdateBannerRequest) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id int) (bool, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}
