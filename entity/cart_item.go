package entity

import (
	"time"
)

// FoodSnapshot is the copy of a catalog item taken when a cart line is
// created. Later catalog price changes must not touch existing lines, so
// the line carries its own name/price instead of joining back to food_items.
type FoodSnapshot struct {
	FoodItemID uint   `gorm:"column:item_id;index:idx_cart_user_food,unique" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	Price      int64  `gorm:"column:price" json:"price"`
}

// CartItem is one line of a user's cart. Rows are hard-deleted: a line that
// reaches quantity 0 is removed, never kept around.
// quantity > 0 holds for every persisted row; total_price = quantity * food price.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"index:idx_cart_user_food,unique" json:"-"`
	User   User `json:"-"`

	Food FoodSnapshot `gorm:"embedded;embeddedPrefix:food_" json:"food"`

	Quantity   int   `gorm:"not null" json:"quantity"`
	TotalPrice int64 `gorm:"not null" json:"totalPrice"`
}
