package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"jersey-hub/models"
	"jersey-hub/repositories"
)

// ShelfSize caps every homepage shelf. Overflow is silently dropped.
const ShelfSize = 8

const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
	SortFeatured  = "featured"
)

// FilterOptions are the three independent storefront controls. Zero values
// mean "not filtering": Category "" or "all", empty Query, empty SortBy.
type FilterOptions struct {
	Category string
	Query    string
	SortBy   string
}

// Active reports whether any control is engaged, which switches the homepage
// from named shelves to a single combined result list.
func (o FilterOptions) Active() bool {
	return (o.Category != "" && o.Category != "all") || o.Query != "" || o.SortBy != ""
}

// Shelf is a named, capped homepage section.
type Shelf struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Jerseys []models.Jersey `json:"jerseys"`
}

// StorefrontView is what the home page renders: either the three named shelves
// or, when filtering, a single titled result list.
type StorefrontView struct {
	Filtering bool            `json:"filtering"`
	Title     string          `json:"title,omitempty"`
	Results   []models.Jersey `json:"results,omitempty"`
	Shelves   []Shelf         `json:"shelves,omitempty"`
	Banners   []models.Banner `json:"banners"`
}

// FilterJerseys narrows by category and case-insensitive substring query over
// name, team and description. It never mutates the input slice.
func FilterJerseys(jerseys []models.Jersey, opts FilterOptions) []models.Jersey {
	filtered := jerseys

	if opts.Category != "" && opts.Category != "all" {
		narrowed := []models.Jersey{}
		for _, j := range filtered {
			if j.Category == opts.Category {
				narrowed = append(narrowed, j)
			}
		}
		filtered = narrowed
	}

	if opts.Query != "" {
		query := strings.ToLower(opts.Query)
		narrowed := []models.Jersey{}
		for _, j := range filtered {
			if strings.Contains(strings.ToLower(j.Name), query) ||
				strings.Contains(strings.ToLower(j.Team), query) ||
				(j.Description != nil && strings.Contains(strings.ToLower(*j.Description), query)) {
				narrowed = append(narrowed, j)
			}
		}
		filtered = narrowed
	}

	return filtered
}

// SortJerseys orders a copy of the list by the chosen key. Sorts are stable:
// ties keep their original relative order. Unknown keys leave the order as-is.
func SortJerseys(jerseys []models.Jersey, sortBy string) []models.Jersey {
	if sortBy == "" {
		return jerseys
	}

	sorted := make([]models.Jersey, len(jerseys))
	copy(sorted, jerseys)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, k int) bool {
			return sorted[i].Price < sorted[k].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, k int) bool {
			return sorted[i].Price > sorted[k].Price
		})
	case SortPopular:
		sort.SliceStable(sorted, func(i, k int) bool {
			return sorted[i].HasTag(models.TagPopular) && !sorted[k].HasTag(models.TagPopular)
		})
	case SortFeatured:
		sort.SliceStable(sorted, func(i, k int) bool {
			return sorted[i].HasTag(models.TagFeatured) && !sorted[k].HasTag(models.TagFeatured)
		})
	}

	return sorted
}

func shelfByTag(jerseys []models.Jersey, tag string) []models.Jersey {
	shelf := []models.Jersey{}
	for _, j := range jerseys {
		if j.HasTag(tag) {
			shelf = append(shelf, j)
			if len(shelf) == ShelfSize {
				break
			}
		}
	}
	return shelf
}

// BuildShelves partitions the list into the three homepage sections, each
// capped to ShelfSize in catalog order. A jersey with none of the shelf tags
// appears in no shelf.
func BuildShelves(jerseys []models.Jersey) []Shelf {
	return []Shelf{
		{ID: "featured", Title: "Featured Jerseys", Jerseys: shelfByTag(jerseys, models.TagFeatured)},
		{ID: "top-deals", Title: "Top Deals", Jerseys: shelfByTag(jerseys, models.TagTopDeals)},
		{ID: "new-arrivals", Title: "New Arrivals", Jerseys: shelfByTag(jerseys, models.TagNewArrivals)},
	}
}

// ResultTitle labels the combined list when filtering is active.
func ResultTitle(opts FilterOptions, count int) string {
	if opts.Query != "" {
		return fmt.Sprintf("Results for %q (%d)", opts.Query, count)
	}
	return fmt.Sprintf("All Jerseys (%d)", count)
}

// StorefrontService runs the filter-sort-shelf pipeline over the live catalog.
type StorefrontService struct {
	store repositories.Store
}

func NewStorefrontService(store repositories.Store) *StorefrontService {
	return &StorefrontService{store: store}
}

func (s *StorefrontService) Browse(ctx context.Context, opts FilterOptions) (*StorefrontView, error) {
	jerseys, err := s.store.ListJerseys(ctx)
	if err != nil {
		return nil, err
	}
	banners, err := s.store.ListBanners(ctx)
	if err != nil {
		return nil, err
	}

	filtered := SortJerseys(FilterJerseys(jerseys, opts), opts.SortBy)

	view := &StorefrontView{Banners: banners}
	if opts.Active() {
		view.Filtering = true
		view.Title = ResultTitle(opts, len(filtered))
		view.Results = filtered
	} else {
		view.Shelves = BuildShelves(filtered)
	}
	return view, nil
}
