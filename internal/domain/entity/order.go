package entity

import "time"

// Order is a processed order persisted by the receiver side.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	OrderID    string    `gorm:"uniqueIndex;size:64" json:"orderId"`
	CustomerID string    `gorm:"size:64" json:"customerId"`
	Item       string    `gorm:"size:255" json:"item"`
	Quantity   int       `json:"quantity"`
	Total      float64   `json:"total"`
	PlacedAt   time.Time `json:"placedAt"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
