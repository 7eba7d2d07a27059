package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is one entry of a user's order history. Append-only: rows are
// written once at checkout and never mutated afterwards.
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index" json:"-"`
	User   User `json:"-"`

	TotalPrice int64     `json:"totalPrice"`
	Date       time.Time `json:"date"`

	Items    []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Payments []Payment   `json:"-"`
}
