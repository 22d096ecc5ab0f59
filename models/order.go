package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
)

// Order records a purchase intent. JerseyID is informational only; deleting a
// jersey does not touch orders that reference it.
type Order struct {
	ID            int       `json:"id"`
	JerseyID      *int      `json:"jerseyId"`
	CustomerName  *string   `json:"customerName"`
	CustomerEmail *string   `json:"customerEmail"`
	CustomerPhone *string   `json:"customerPhone"`
	Size          *string   `json:"size"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
