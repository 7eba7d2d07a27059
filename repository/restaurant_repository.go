package repository

import (
	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("Cuisines.FoodItems").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByName resolves the restaurant carts address food by.
func (r *RestaurantRepository) FindByName(name string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("name = ?", name).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}

// ---- cuisine categories ----

func (r *RestaurantRepository) CreateCuisine(cu *entity.CuisineCategory) error {
	return r.DB.Create(cu).Error
}

func (r *RestaurantRepository) FindCuisine(restID uint, name string) (*entity.CuisineCategory, error) {
	var cu entity.CuisineCategory
	err := r.DB.Where("restaurant_id = ? AND name = ?", restID, name).First(&cu).Error
	if err != nil {
		return nil, err
	}
	return &cu, nil
}

func (r *RestaurantRepository) ListCuisines(restID uint) ([]entity.CuisineCategory, error) {
	var cus []entity.CuisineCategory
	err := r.DB.Where("restaurant_id = ?", restID).Find(&cus).Error
	return cus, err
}

// DeleteCuisine removes a category and its food items. Returns false when
// the category doesn't belong to the restaurant.
func (r *RestaurantRepository) DeleteCuisine(restID, cuisineID uint) (bool, error) {
	var deleted bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND restaurant_id = ?", cuisineID, restID).
			Delete(&entity.CuisineCategory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("cuisine_category_id = ?", cuisineID).
			Delete(&entity.FoodItem{}).Error
	})
	return deleted, err
}

// ---- food items ----

func (r *RestaurantRepository) CreateFoodItem(item *entity.FoodItem) error {
	return r.DB.Create(item).Error
}

// FindFoodItem resolves the (restaurant, category name, food id) triple the
// cart's add operation addresses the catalog with.
func (r *RestaurantRepository) FindFoodItem(restID uint, category string, foodID uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := r.DB.
		Joins("JOIN cuisine_categories ON cuisine_categories.id = food_items.cuisine_category_id").
		Where("food_items.id = ? AND food_items.restaurant_id = ? AND cuisine_categories.name = ?",
			foodID, restID, category).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RestaurantRepository) FindFoodItemByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RestaurantRepository) ListFoodItems(restID uint) ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Where("restaurant_id = ?", restID).Find(&items).Error
	return items, err
}

func (r *RestaurantRepository) UpdateFoodItem(restID, itemID uint, updates map[string]any) (bool, error) {
	res := r.DB.Model(&entity.FoodItem{}).
		Where("id = ? AND restaurant_id = ?", itemID, restID).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *RestaurantRepository) DeleteFoodItem(restID, itemID uint) (bool, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).
		Delete(&entity.FoodItem{})
	return res.RowsAffected > 0, res.Error
}
