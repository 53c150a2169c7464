package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/metrics"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/pkg/events"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type CartService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.ShopMetrics
	Now     func() time.Time
}

// AddItem puts quantity units of the product into the customer's cart,
// creating the cart on first use. Stock is checked but not reserved. A new
// line freezes the product's current price; later adds keep that price.
func (s *CartService) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_item")

	if quantity <= 0 {
		return nil, newErr(ErrInvalidQuantity, "Quantity must be greater than zero")
	}

	item := &models.CartItem{ProductID: productID, Quantity: quantity}
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetCustomer(ctx, customerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Customer not found")
			}
			return err
		}

		product, err := tx.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Product not found")
			}
			return err
		}
		if product.Stock < quantity {
			return newErr(ErrInsufficientStock, "Product stock less than quantity")
		}

		cart, err := s.cartFor(ctx, tx, customerID)
		if err != nil {
			return err
		}

		item.CartID = cart.ID
		item.UnitPrice = product.Price
		return tx.AddCartItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	l.Info("cart_item_added", "customer_id", customerID, "product_id", productID, "quantity", item.Quantity)
	s.Metrics.RecordCartItemAdded()
	publish(ctx, s.Events, events.TopicCart, customerID.String(), map[string]any{
		"type":       "cart_item_added",
		"customerID": customerID,
		"productID":  productID,
		"added":      quantity,
		"quantity":   item.Quantity,
		"unitPrice":  item.UnitPrice.StringFixed(2),
	})
	return item, nil
}

func (s *CartService) cartFor(ctx context.Context, tx *repo.GormRepo, customerID uuid.UUID) (*models.Cart, error) {
	cart, err := tx.GetCartByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &models.Cart{CustomerID: customerID, CreatedAt: nowOr(s.Now)}
	if err := tx.CreateCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) GetItems(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, error) {
	cart, err := s.Repo.GetCartByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newErr(ErrNotFound, "Cart not found")
		}
		return nil, err
	}
	return s.Repo.ListCartItems(ctx, cart.ID)
}
