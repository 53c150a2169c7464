package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func (r *GormRepo) GetCartByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("customer_id = ?", customerID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(cart).Error
}

// AddCartItem increments the quantity of the (cart, product) line, creating
// it with item.UnitPrice when it does not exist yet. The stored unit price of
// an existing line is left untouched. item is reloaded with its product.
func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) error {
	db := r.DB.WithContext(ctx)
	res := db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
		Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if err := db.Omit(clause.Associations).Create(item).Error; err != nil {
			return err
		}
	}

	return db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", item.CartID, item.ProductID).
		First(item).Error
}

func (r *GormRepo) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteCustomerCart removes the customer's cart together with its items.
func (r *GormRepo) DeleteCustomerCart(ctx context.Context, customerID uuid.UUID) error {
	db := r.DB.WithContext(ctx)
	cartIDs := db.Model(&models.Cart{}).Select("id").Where("customer_id = ?", customerID)
	if err := db.Where("cart_id IN (?)", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return db.Where("customer_id = ?", customerID).Delete(&models.Cart{}).Error
}
