package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment records the confirmation a checkout was submitted with.
// The reference comes from the payment provider and is trusted as-is;
// verifying it is the provider integration's job, not ours.
type Payment struct {
	gorm.Model
	Amount    int64      `json:"amount"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
