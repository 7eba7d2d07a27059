package repository

import (
	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

// ListForUser returns the user's order history in append order.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindForUser(userID, orderID uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
