package models

// Banner is a promotional carousel slide. CTALink may be an in-page anchor
// ("#featured") or an external URL. Order controls carousel position.
type Banner struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL string  `json:"imageUrl"`
	CTAText  *string `json:"ctaText"`
	CTALink  *string `json:"ctaLink"`
	IsActive bool    `json:"isActive"`
	Order    int     `json:"order"`
}
