package entity

import (
	"time"
)

// OrderItem is a materialized copy of a cart line at checkout time.
// The JSON id is the food item's id, matching what clients browsed with.
type OrderItem struct {
	RowID     uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`

	OrderID uint  `gorm:"index" json:"-"`
	Order   Order `json:"-"`

	FoodItemID uint   `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}
