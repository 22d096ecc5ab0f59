package models

type CreateJerseyRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         int      `json:"price" binding:"required,gt=0"`
	OriginalPrice *int     `json:"originalPrice" binding:"omitempty,gt=0"`
	ImageURL      string   `json:"imageUrl" binding:"required"`
	Category      string   `json:"category" binding:"required,oneof=club national retro"`
	Tags          []string `json:"tags"`
	Description   *string  `json:"description"`
	Team          string   `json:"team" binding:"required"`
	Season        *string  `json:"season"`
	IsActive      *bool    `json:"isActive"`
}

// UpdateJerseyRequest is a partial update: nil fields are left untouched.
type UpdateJerseyRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1"`
	Price         *int      `json:"price" binding:"omitempty,gt=0"`
	OriginalPrice *int      `json:"originalPrice" binding:"omitempty,gt=0"`
	ImageURL      *string   `json:"imageUrl" binding:"omitempty,min=1"`
	Category      *string   `json:"category" binding:"omitempty,oneof=club national retro"`
	Tags          *[]string `json:"tags"`
	Description   *string   `json:"description"`
	Team          *string   `json:"team" binding:"omitempty,min=1"`
	Season        *string   `json:"season"`
	IsActive      *bool     `json:"isActive"`
}

type CreateBannerRequest struct {
	Title    string  `json:"title" binding:"required"`
	Subtitle *string `json:"subtitle"`
	ImageURL string  `json:"imageUrl" binding:"required"`
	CTAText  *string `json:"ctaText"`
	CTALink  *string `json:"ctaLink"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type UpdateBannerRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,min=1"`
	CTAText  *string `json:"ctaText"`
	CTALink  *string `json:"ctaLink"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`
}

type CreateOrderRequest struct {
	JerseyID      *int    `json:"jerseyId" binding:"omitempty,gt=0"`
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail" binding:"omitempty,email"`
	CustomerPhone *string `json:"customerPhone"`
	Size          *string `json:"size"`
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed shipped"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
