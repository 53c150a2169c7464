package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/metrics"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/pkg/events"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type OrderService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.ShopMetrics
	Now     func() time.Time
}

// Checkout turns the customer's cart into a PENDING order. Line prices come
// from the cart lines, not the live products. The cart and product stock are
// left as they are.
func (s *OrderService) Checkout(ctx context.Context, customerID uuid.UUID) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout")

	var order *models.Order
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		cart, err := tx.GetCartByCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Cart not found")
			}
			return err
		}

		cartItems, err := tx.ListCartItems(ctx, cart.ID)
		if err != nil {
			return err
		}

		items, total := orderLines(cartItems)
		created := &models.Order{
			CustomerID: customerID,
			OrderDate:  nowOr(s.Now),
			Status:     models.OrderStatusPending,
			Total:      total,
			Items:      items,
		}
		if err := tx.CreateOrder(ctx, created); err != nil {
			return err
		}

		order, err = tx.GetOrder(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.Info("order_created", "order_id", order.ID, "customer_id", customerID, "total", order.Total.StringFixed(2))
	s.Metrics.RecordOrderCreated(order.Total)
	publish(ctx, s.Events, events.TopicOrder, order.ID.String(), map[string]any{
		"type":       "order_created",
		"orderID":    order.ID,
		"customerID": customerID,
		"total":      order.Total.StringFixed(2),
		"items":      len(order.Items),
	})
	return order, nil
}

// orderLines copies cart lines into order lines and sums unitPrice*quantity.
func orderLines(cartItems []models.CartItem) ([]models.OrderItem, decimal.Decimal) {
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(cartItems))
	for i, ci := range cartItems {
		items = append(items, models.OrderItem{
			ProductID: ci.ProductID,
			Quantity:  ci.Quantity,
			UnitPrice: ci.UnitPrice,
			Position:  i,
		})
		total = total.Add(ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity))))
	}
	return items, total
}

func (s *OrderService) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newErr(ErrNotFound, "Order not found")
		}
		return nil, err
	}
	return order, nil
}
