package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`

	UserID uint `json:"ownerId"` // owner (users.id)
	User   User `json:"-"`

	Cuisines []CuisineCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cuisines"`
}
