package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// DefaultShippingPrice is the flat delivery charge in rupees.
const DefaultShippingPrice = 200

// OrderService places orders and moves them through payment and delivery.
type OrderService struct {
	*CRUDService[models.Order, *models.Order]
	shippingPrice float64
	now           func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		CRUDService:   NewCRUDService[models.Order](db, "order", nil),
		shippingPrice: DefaultShippingPrice,
		now:           time.Now,
	}
}

// PlaceOrder prices every line from the catalog, reserves stock and stores
// the order in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req types.CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, NewValidationError("orderItems", "at least one item is required")
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ShippingPrice:   s.shippingPrice,
	}

	err := s.DB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range req.OrderItems {
			if line.Quantity <= 0 {
				return NewValidationError("orderItems.quantity", "must be positive")
			}
			productID, err := uuid.Parse(line.Product)
			if err != nil {
				return NewValidationError("orderItems.product", "unknown product "+line.Product)
			}

			var product models.Product
			err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND is_active = ?", productID, true).
				First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewValidationError("orderItems.product", "unknown product "+line.Product)
			}
			if err != nil {
				return fmt.Errorf("failed to load product: %w", err)
			}
			if product.CountInStock < line.Quantity {
				return NewValidationError("orderItems.quantity", fmt.Sprintf("only %d of %s in stock", product.CountInStock, product.Name))
			}

			product.CountInStock -= line.Quantity
			if err := tx.Model(&product).Update("count_in_stock", product.CountInStock).Error; err != nil {
				return fmt.Errorf("failed to reserve stock: %w", err)
			}

			order.OrderItems = append(order.OrderItems, models.OrderItem{
				Product:  product.ID.String(),
				Name:     product.Name,
				Quantity: line.Quantity,
				Price:    product.Price,
				Image:    product.Image,
			})
			order.ItemsPrice += product.Price * float64(line.Quantity)
		}

		order.ItemsPrice = roundMoney(order.ItemsPrice)
		order.TotalPrice = roundMoney(order.ItemsPrice + order.ShippingPrice)
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListForUser returns the orders placed by userID, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id = ?", userID).Order("created_at DESC")
	})
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.List(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
}

// GetForActor returns the order when actor owns it or is an admin.
func (s *OrderService) GetForActor(ctx context.Context, id uuid.UUID, actor *models.User) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return order, nil
}

// UpdateStatus marks an order paid and/or delivered. Flags only move from
// false to true; clearing a set flag is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req types.UpdateOrderStatusRequest) (*models.Order, error) {
	if req.IsPaid == nil && req.IsDelivered == nil {
		return nil, NewValidationError("status", "isPaid or isDelivered is required")
	}
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if req.IsPaid != nil {
		if !*req.IsPaid && order.IsPaid {
			return nil, NewValidationError("isPaid", "a paid order cannot be marked unpaid")
		}
		if *req.IsPaid && !order.IsPaid {
			order.IsPaid = true
			order.PaidAt = &now
		}
	}
	if req.IsDelivered != nil {
		if !*req.IsDelivered && order.IsDelivered {
			return nil, NewValidationError("isDelivered", "a delivered order cannot be marked undelivered")
		}
		if *req.IsDelivered && !order.IsDelivered {
			order.IsDelivered = true
			order.DeliveredAt = &now
		}
	}

	if err := s.DB(ctx).Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
