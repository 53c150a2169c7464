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

type PaymentService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.ShopMetrics
	Now     func() time.Time
}

// Pay records an approved payment for the full order total and marks the
// order PAID. An order can be paid once.
func (s *PaymentService) Pay(ctx context.Context, orderID uuid.UUID, paymentType models.PaymentType) (*models.Payment, error) {
	l := logging.FromContext(ctx).With("svc", "payment.pay")

	var payment *models.Payment
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		order, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Order not found")
			}
			return err
		}

		paid, err := tx.PaymentExistsForOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if paid {
			return newErr(ErrBusiness, "Order already paid")
		}

		payment = &models.Payment{
			OrderID:     order.ID,
			PaymentType: paymentType,
			Status:      models.PaymentStatusApproved,
			PaymentDate: nowOr(s.Now),
			Amount:      order.Total,
		}
		if err := tx.CreatePayment(ctx, payment); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newErr(ErrBusiness, "Order already paid")
			}
			return err
		}
		return tx.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPaid)
	})
	if err != nil {
		return nil, err
	}

	l.Info("payment_recorded", "order_id", orderID, "payment_type", paymentType, "amount", payment.Amount.StringFixed(2))
	s.Metrics.RecordPayment(string(paymentType))
	publish(ctx, s.Events, events.TopicPayment, orderID.String(), map[string]any{
		"type":        "payment_approved",
		"orderID":     orderID,
		"paymentType": paymentType,
		"amount":      payment.Amount.StringFixed(2),
	})
	return payment, nil
}
