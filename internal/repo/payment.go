package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(payment).Error
}

func (r *GormRepo) PaymentExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Payment{}, "order_id = ?", orderID)
}
