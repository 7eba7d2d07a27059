package entity

import (
	"gorm.io/gorm"
)

type CuisineCategory struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	FoodItems []FoodItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"foodItems"`
}
