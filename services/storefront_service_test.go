package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jersey-hub/models"
	"jersey-hub/repositories"
)

func jersey(id int, name, team, category string, price int, tags ...string) models.Jersey {
	if tags == nil {
		tags = []string{}
	}
	return models.Jersey{
		ID:       id,
		Name:     name,
		Team:     team,
		Category: category,
		Price:    price,
		Tags:     tags,
		IsActive: true,
	}
}

func names(jerseys []models.Jersey) []string {
	out := []string{}
	for _, j := range jerseys {
		out = append(out, j.Name)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "Barcelona Home", "FC Barcelona", models.CategoryClub, 249900),
		jersey(2, "Argentina 2022", "Argentina", models.CategoryNational, 179900),
		jersey(3, "Inter Retro", "Inter Milan", models.CategoryRetro, 199900),
	}

	filtered := FilterJerseys(list, FilterOptions{Category: "club"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Barcelona Home", filtered[0].Name)

	// "all" and empty mean no filtering
	assert.Len(t, FilterJerseys(list, FilterOptions{Category: "all"}), 3)
	assert.Len(t, FilterJerseys(list, FilterOptions{}), 3)
}

func TestFilterByQuery(t *testing.T) {
	desc := "Official Barcelona home jersey"
	list := []models.Jersey{
		jersey(1, "Barcelona Home", "FC Barcelona", models.CategoryClub, 249900),
		jersey(2, "Real Madrid Home", "Real Madrid", models.CategoryClub, 269900),
	}
	list[0].Description = &desc

	// matches name, team or description, case-insensitively
	assert.Len(t, FilterJerseys(list, FilterOptions{Query: "BARCELONA"}), 1)
	assert.Len(t, FilterJerseys(list, FilterOptions{Query: "real"}), 1)
	assert.Len(t, FilterJerseys(list, FilterOptions{Query: "official"}), 1)
	assert.Len(t, FilterJerseys(list, FilterOptions{Query: "home"}), 2)
	assert.Empty(t, FilterJerseys(list, FilterOptions{Query: "juventus"}))
}

func TestFilterCategoryAndQueryIntersect(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "Barcelona Home", "FC Barcelona", models.CategoryClub, 249900),
		jersey(2, "Barcelona Retro 1999", "FC Barcelona", models.CategoryRetro, 199900),
		jersey(3, "Real Madrid Home", "Real Madrid", models.CategoryClub, 269900),
	}

	filtered := FilterJerseys(list, FilterOptions{Category: "club", Query: "barcelona"})
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "Barcelona Home", "FC Barcelona", models.CategoryClub, 249900),
		jersey(2, "Real Madrid Home", "Real Madrid", models.CategoryClub, 269900),
	}

	FilterJerseys(list, FilterOptions{Query: "real"})
	SortJerseys(list, SortPriceHigh)

	assert.Equal(t, []string{"Barcelona Home", "Real Madrid Home"}, names(list))
}

func TestSortPriceAscending(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "A", "A FC", models.CategoryClub, 249900),
		jersey(2, "B", "B FC", models.CategoryClub, 179900),
		jersey(3, "C", "C FC", models.CategoryClub, 289900),
	}

	sorted := SortJerseys(list, SortPriceLow)
	assert.Equal(t, []int{179900, 249900, 289900}, []int{sorted[0].Price, sorted[1].Price, sorted[2].Price})

	sorted = SortJerseys(list, SortPriceHigh)
	assert.Equal(t, []int{289900, 249900, 179900}, []int{sorted[0].Price, sorted[1].Price, sorted[2].Price})
}

func TestSortIsStable(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "First", "A FC", models.CategoryClub, 249900),
		jersey(2, "Second", "B FC", models.CategoryClub, 249900),
		jersey(3, "Cheap", "C FC", models.CategoryClub, 100),
	}

	sorted := SortJerseys(list, SortPriceLow)
	assert.Equal(t, []string{"Cheap", "First", "Second"}, names(sorted))
}

func TestSortTagPriority(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "Plain", "A FC", models.CategoryClub, 100),
		jersey(2, "Popular One", "B FC", models.CategoryClub, 200, models.TagPopular),
		jersey(3, "Also Plain", "C FC", models.CategoryClub, 300),
		jersey(4, "Popular Two", "D FC", models.CategoryClub, 400, models.TagPopular),
	}

	sorted := SortJerseys(list, SortPopular)
	// tag-bearers first, original order preserved within each partition
	assert.Equal(t, []string{"Popular One", "Popular Two", "Plain", "Also Plain"}, names(sorted))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	list := []models.Jersey{
		jersey(1, "B", "B FC", models.CategoryClub, 200),
		jersey(2, "A", "A FC", models.CategoryClub, 100),
	}
	assert.Equal(t, []string{"B", "A"}, names(SortJerseys(list, "alphabetical")))
	assert.Equal(t, []string{"B", "A"}, names(SortJerseys(list, "")))
}

func TestBuildShelves(t *testing.T) {
	list := []models.Jersey{}
	for i := 1; i <= 11; i++ {
		j := jersey(i, fmt.Sprintf("Jersey %d", i), "Team", models.CategoryClub, 100*i)
		if i <= 3 {
			j.Tags = []string{models.TagFeatured}
		}
		list = append(list, j)
	}

	shelves := BuildShelves(list)
	require.Len(t, shelves, 3)

	featured := shelves[0]
	assert.Equal(t, "Featured Jerseys", featured.Title)
	assert.Equal(t, []string{"Jersey 1", "Jersey 2", "Jersey 3"}, names(featured.Jerseys))

	// untagged jerseys appear in no shelf
	assert.Empty(t, shelves[1].Jerseys)
	assert.Empty(t, shelves[2].Jerseys)
}

func TestShelfCap(t *testing.T) {
	list := []models.Jersey{}
	for i := 1; i <= 10; i++ {
		list = append(list, jersey(i, fmt.Sprintf("Deal %d", i), "Team", models.CategoryClub, 100, models.TagTopDeals))
	}

	shelves := BuildShelves(list)
	deals := shelves[1].Jerseys
	require.Len(t, deals, ShelfSize)
	assert.Equal(t, "Deal 1", deals[0].Name)
	assert.Equal(t, "Deal 8", deals[7].Name)
}

func TestFilterOptionsActive(t *testing.T) {
	assert.False(t, FilterOptions{}.Active())
	assert.False(t, FilterOptions{Category: "all"}.Active())
	assert.True(t, FilterOptions{Category: "club"}.Active())
	assert.True(t, FilterOptions{Query: "barca"}.Active())
	assert.True(t, FilterOptions{SortBy: SortPriceLow}.Active())
}

func TestBrowseShelvesWhenNotFiltering(t *testing.T) {
	svc := NewStorefrontService(repositories.NewMemStore())

	view, err := svc.Browse(context.Background(), FilterOptions{Category: "all"})
	require.NoError(t, err)

	assert.False(t, view.Filtering)
	require.Len(t, view.Shelves, 3)
	assert.Empty(t, view.Results)
	assert.Len(t, view.Banners, 5)

	// seed carries 5 featured, 3 top-deals, 3 new-arrivals jerseys
	assert.Len(t, view.Shelves[0].Jerseys, 5)
	assert.Len(t, view.Shelves[1].Jerseys, 3)
	assert.Len(t, view.Shelves[2].Jerseys, 3)
}

func TestBrowseCombinedWhenFiltering(t *testing.T) {
	svc := NewStorefrontService(repositories.NewMemStore())

	view, err := svc.Browse(context.Background(), FilterOptions{Query: "barcelona"})
	require.NoError(t, err)

	assert.True(t, view.Filtering)
	assert.Empty(t, view.Shelves)
	require.Len(t, view.Results, 1)
	assert.Equal(t, `Results for "barcelona" (1)`, view.Title)
}

func TestBrowseSortOnlyStillCombined(t *testing.T) {
	svc := NewStorefrontService(repositories.NewMemStore())

	view, err := svc.Browse(context.Background(), FilterOptions{Category: "all", SortBy: SortPriceLow})
	require.NoError(t, err)

	assert.True(t, view.Filtering)
	assert.Equal(t, "All Jerseys (12)", view.Title)
	require.NotEmpty(t, view.Results)
	for i := 1; i < len(view.Results); i++ {
		assert.LessOrEqual(t, view.Results[i-1].Price, view.Results[i].Price)
	}
}
