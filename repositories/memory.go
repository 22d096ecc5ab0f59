package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"jersey-hub/models"
)

// MemStore keeps the whole catalog in process memory. Identifiers are per-kind
// counters that never reuse a value after deletion. The original single-threaded
// runtime needed no locking; Go's HTTP server is concurrent, so a mutex guards
// the maps.
type MemStore struct {
	mu sync.RWMutex

	jerseys map[int]models.Jersey
	banners map[int]models.Banner
	orders  map[int]models.Order

	nextJerseyID int
	nextBannerID int
	nextOrderID  int
}

func NewMemStore() *MemStore {
	s := &MemStore{
		jerseys:      make(map[int]models.Jersey),
		banners:      make(map[int]models.Banner),
		orders:       make(map[int]models.Order),
		nextJerseyID: 1,
		nextBannerID: 1,
		nextOrderID:  1,
	}
	s.seed()
	return s
}

func (s *MemStore) ListJerseys(ctx context.Context) ([]models.Jersey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jerseys := []models.Jersey{}
	for _, j := range s.jerseys {
		if j.IsActive {
			jerseys = append(jerseys, j)
		}
	}
	sort.Slice(jerseys, func(i, k int) bool { return jerseys[i].ID < jerseys[k].ID })
	return jerseys, nil
}

func (s *MemStore) GetJersey(ctx context.Context, id int) (*models.Jersey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jerseys[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (s *MemStore) CreateJersey(ctx context.Context, req models.CreateJerseyRequest) (*models.Jersey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j := models.Jersey{
		ID:            s.nextJerseyID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Tags:          req.Tags,
		Description:   req.Description,
		Team:          req.Team,
		Season:        req.Season,
		IsActive:      true,
	}
	if j.Tags == nil {
		j.Tags = []string{}
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	s.nextJerseyID++
	s.jerseys[j.ID] = j
	return &j, nil
}

func (s *MemStore) UpdateJersey(ctx context.Context, id int, req models.UpdateJerseyRequest) (*models.Jersey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jerseys[id]
	if !ok {
		return nil, nil
	}

	if req.Name != nil {
		j.Name = *req.Name
	}
	if req.Price != nil {
		j.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		j.OriginalPrice = req.OriginalPrice
	}
	if req.ImageURL != nil {
		j.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		j.Category = *req.Category
	}
	if req.Tags != nil {
		j.Tags = *req.Tags
	}
	if req.Description != nil {
		j.Description = req.Description
	}
	if req.Team != nil {
		j.Team = *req.Team
	}
	if req.Season != nil {
		j.Season = req.Season
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}

	s.jerseys[id] = j
	return &j, nil
}

func (s *MemStore) DeleteJersey(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jerseys[id]; !ok {
		return false, nil
	}
	delete(s.jerseys, id)
	return true, nil
}

func (s *MemStore) ListBanners(ctx context.Context) ([]models.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banners := []models.Banner{}
	for _, b := range s.banners {
		if b.IsActive {
			banners = append(banners, b)
		}
	}
	sort.Slice(banners, func(i, k int) bool {
		if banners[i].Order != banners[k].Order {
			return banners[i].Order < banners[k].Order
		}
		return banners[i].ID < banners[k].ID
	})
	return banners, nil
}

func (s *MemStore) CreateBanner(ctx context.Context, req models.CreateBannerRequest) (*models.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Banner{
		ID:       s.nextBannerID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		CTAText:  req.CTAText,
		CTALink:  req.CTALink,
		IsActive: true,
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.Order != nil {
		b.Order = *req.Order
	}
	s.nextBannerID++
	s.banners[b.ID] = b
	return &b, nil
}

func (s *MemStore) UpdateBanner(ctx context.Context, id int, req models.UpdateBannerRequest) (*models.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[id]
	if !ok {
		return nil, nil
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Subtitle != nil {
		b.Subtitle = req.Subtitle
	}
	if req.ImageURL != nil {
		b.ImageURL = *req.ImageURL
	}
	if req.CTAText != nil {
		b.CTAText = req.CTAText
	}
	if req.CTALink != nil {
		b.CTALink = req.CTALink
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.Order != nil {
		b.Order = *req.Order
	}

	s.banners[id] = b
	return &b, nil
}

func (s *MemStore) DeleteBanner(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[id]; !ok {
		return false, nil
	}
	delete(s.banners, id)
	return true, nil
}

func (s *MemStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, k int) bool { return orders[i].ID < orders[k].ID })
	return orders, nil
}

func (s *MemStore) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := models.Order{
		ID:            s.nextOrderID,
		JerseyID:      req.JerseyID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Size:          req.Size,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	s.nextOrderID++
	s.orders[o.ID] = o
	return &o, nil
}
