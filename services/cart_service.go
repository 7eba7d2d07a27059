package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
)

// CartService holds the cart state machine: add merges on food identity,
// increment/decrement/delete address lines by id, and every transition
// keeps total_price = quantity * snapshot price. The snapshot price is the
// catalog price at add time; later catalog edits never touch existing lines.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ur *repository.UserRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, UserRepo: ur, RestRepo: rr}
}

func (s *CartService) requireUser(userID uint) error {
	ok, err := s.UserRepo.Exists(userID)
	if err != nil {
		return apperr.PersistenceWrap(err, "database error")
	}
	if !ok {
		return apperr.NotFoundf("User not found!")
	}
	return nil
}

func (s *CartService) list(userID uint) ([]entity.CartItem, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	return items, nil
}

// Get returns the cart as stored, newest line first.
func (s *CartService) Get(userID uint) ([]entity.CartItem, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	return s.list(userID)
}

// Add resolves (restaurant name, category, food id) through the catalog,
// then merges into an existing line for that food or inserts a new one.
// Exactly one line per food item ever exists for a user.
func (s *CartService) Add(userID uint, restaurantName, category string, foodID uint, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validationf("Quantity must be a positive number!")
	}

	rest, err := s.RestRepo.FindByName(restaurantName)
	if err != nil {
		return nil, apperr.FromDB(err, "Restaurant with name "+restaurantName+" does not exist!")
	}

	item, err := s.RestRepo.FindFoodItem(rest.ID, category, foodID)
	if err != nil {
		return nil, apperr.FromDB(err, fmt.Sprintf("Food item with id %d not found!", foodID))
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		merged, err := s.CartRepo.MergeByFood(tx, userID, item.ID, quantity)
		if err != nil {
			return err
		}
		if merged {
			return nil
		}
		line := &entity.CartItem{
			UserID: userID,
			Food: entity.FoodSnapshot{
				FoodItemID: item.ID,
				Name:       item.Name,
				Price:      item.Price,
			},
			Quantity:   quantity,
			TotalPrice: int64(quantity) * item.Price,
		}
		return s.CartRepo.Create(tx, line)
	})
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not update cart")
	}

	return s.list(userID)
}

// Increase bumps a cart line's quantity by one.
func (s *CartService) Increase(userID, lineID uint) ([]entity.CartItem, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var found bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = s.CartRepo.Increment(tx, userID, lineID)
		return err
	})
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not update cart")
	}
	if !found {
		return nil, apperr.NotFoundf("Food item with id %d is not in your cart!", lineID)
	}

	return s.list(userID)
}

// Decrease lowers a cart line's quantity by one; reaching zero removes the
// line, so a persisted quantity is always positive.
func (s *CartService) Decrease(userID, lineID uint) ([]entity.CartItem, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var found bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = s.CartRepo.Decrement(tx, userID, lineID)
		return err
	})
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not update cart")
	}
	if !found {
		return nil, apperr.NotFoundf("Food item with id %d is not in your cart!", lineID)
	}

	return s.list(userID)
}

// Delete removes a cart line regardless of quantity.
func (s *CartService) Delete(userID, lineID uint) ([]entity.CartItem, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var found bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = s.CartRepo.Remove(tx, userID, lineID)
		return err
	})
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not update cart")
	}
	if !found {
		return nil, apperr.NotFoundf("Cart item with id %d not found!", lineID)
	}

	return s.list(userID)
}
