package models

// Jersey categories form a closed set.
const (
	CategoryClub     = "club"
	CategoryNational = "national"
	CategoryRetro    = "retro"
)

// Shelf-driving tags recognized by the storefront.
const (
	TagFeatured    = "featured"
	TagPopular     = "popular"
	TagTopDeals    = "top-deals"
	TagNewArrivals = "new-arrivals"
)

// Jersey is a catalog item. Prices are stored in paise; originalPrice, when
// present, is the pre-discount price shown struck through.
type Jersey struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Description   *string  `json:"description"`
	Team          string   `json:"team"`
	Season        *string  `json:"season"`
	IsActive      bool     `json:"isActive"`
}

// HasTag reports whether the jersey carries the given tag.
func (j *Jersey) HasTag(tag string) bool {
	for _, t := range j.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
