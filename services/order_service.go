package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
)

// OrderNotifier pushes order events to connected clients. The ws hub
// implements it; a nil notifier just drops events.
type OrderNotifier interface {
	OrderPlaced(userID uint, order *entity.Order)
}

// OrderService turns carts into order-history entries at checkout and
// serves the history afterwards. Orders are append-only.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Notifier OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, userRepo *repository.UserRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, Notifier: notifier}
}

type CheckoutIn struct {
	// Reference identifies the completed payment at the provider.
	// It arrives verified upstream and is stored as-is.
	PaymentReference string `json:"paymentReference" binding:"required"`
}

// Checkout materializes the cart into an Order, records the payment
// confirmation, and empties the cart — all in one transaction. An empty
// cart is rejected before anything is written.
func (s *OrderService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, apperr.FromDB(err, "User not found!")
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	if len(lines) == 0 {
		return nil, apperr.Validationf("Cart is empty!")
	}

	// Total comes from the stored per-line derived totals, never from a
	// fresh catalog read.
	var total int64
	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		total += l.TotalPrice
		items = append(items, entity.OrderItem{
			FoodItemID: l.Food.FoodItemID,
			Name:       l.Food.Name,
			Price:      l.Food.Price,
			Quantity:   l.Quantity,
		})
	}

	now := time.Now()
	order := &entity.Order{
		UserID:     userID,
		TotalPrice: total,
		Date:       now,
		Items:      items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		payment := &entity.Payment{
			Amount:    total,
			Reference: in.PaymentReference,
			PaidAt:    &now,
			OrderID:   order.ID,
		}
		if err := s.Repo.CreatePayment(tx, payment); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "could not place order")
	}

	if s.Notifier != nil {
		s.Notifier.OrderPlaced(userID, order)
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, apperr.FromDB(err, "User not found!")
	}
	orders, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	return orders, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.FindForUser(userID, orderID)
	if err != nil {
		return nil, apperr.FromDB(err, "Order not found!")
	}
	return order, nil
}
