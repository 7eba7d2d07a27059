package repository

import (
	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

// CartRepository owns the cart_items table. Every mutation is a targeted
// statement scoped to (user_id, line id) so two requests for the same user
// can never overwrite each other's lines the way a whole-row save would.
type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListForUser returns the cart newest-first. New lines land at the front;
// in-place quantity changes keep their position because ids never change.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	items := make([]entity.CartItem, 0)
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// MergeByFood bumps the quantity of the user's existing line for a food item
// and recomputes the derived total from the line's snapshot price. Returns
// false when the user has no line for that food item.
func (r *CartRepository) MergeByFood(tx *gorm.DB, userID, foodItemID uint, qty int) (bool, error) {
	res := tx.Exec(`
		UPDATE cart_items
		   SET quantity = quantity + ?,
		       total_price = food_price * (quantity + ?)
		 WHERE user_id = ? AND food_item_id = ?
	`, qty, qty, userID, foodItemID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CartRepository) Create(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Create(line).Error
}

// Increment bumps a line by id. Returns false when the line is not in the
// user's cart.
func (r *CartRepository) Increment(tx *gorm.DB, userID, lineID uint) (bool, error) {
	res := tx.Exec(`
		UPDATE cart_items
		   SET quantity = quantity + 1,
		       total_price = food_price * (quantity + 1)
		 WHERE id = ? AND user_id = ?
	`, lineID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Decrement lowers a line by one, removing the row instead of ever leaving
// quantity at zero or below. Returns false when the line is absent.
func (r *CartRepository) Decrement(tx *gorm.DB, userID, lineID uint) (bool, error) {
	res := tx.Exec(`
		DELETE FROM cart_items
		 WHERE id = ? AND user_id = ? AND quantity <= 1
	`, lineID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	res = tx.Exec(`
		UPDATE cart_items
		   SET quantity = quantity - 1,
		       total_price = food_price * (quantity - 1)
		 WHERE id = ? AND user_id = ? AND quantity > 1
	`, lineID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes a line unconditionally. Returns false when it was absent.
func (r *CartRepository) Remove(tx *gorm.DB, userID, lineID uint) (bool, error) {
	res := tx.Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
