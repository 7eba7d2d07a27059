package entity

import (
	"gorm.io/gorm"
)

// FoodItem is the catalog record. Price is in the smallest currency unit.
// Cart lines copy name/price out of it at add time and never read it again.
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Image       string `json:"image"`

	CuisineCategoryID uint            `json:"cuisineCategoryId"`
	CuisineCategory   CuisineCategory `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
