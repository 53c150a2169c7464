package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func checkedOutOrder(t *testing.T, f *fixture) *models.Order {
	t.Helper()
	ctx := context.Background()

	c := f.customer(t, "pay@example.com", "52998224725")
	cat := f.category(t, "Office")
	p := f.product(t, cat.ID, "Stapler", "12.34", 10)

	_, err := f.carts.AddItem(ctx, c.ID, p.ID, 3)
	require.NoError(t, err)
	order, err := f.orders.Checkout(ctx, c.ID)
	require.NoError(t, err)
	return order
}

func TestPaymentService_Pay_MarksOrderPaid(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	order := checkedOutOrder(t, f)

	payment, err := f.payments.Pay(ctx, order.ID, models.PaymentTypePix)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, payment.Status)
	assert.Equal(t, models.PaymentTypePix, payment.PaymentType)
	assert.True(t, order.Total.Equal(payment.Amount))
	assert.True(t, dec("37.02").Equal(payment.Amount))
	assert.True(t, fixedNow.Equal(payment.PaymentDate))

	reloaded, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, reloaded.Status)

	assert.Contains(t, f.events.types(), "payment_approved")
}

func TestPaymentService_Pay_Twice(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	order := checkedOutOrder(t, f)

	_, err := f.payments.Pay(ctx, order.ID, models.PaymentTypeBoleto)
	require.NoError(t, err)

	_, err = f.payments.Pay(ctx, order.ID, models.PaymentTypeCreditCard)
	require.ErrorIs(t, err, ErrBusiness)
	assert.Equal(t, "Order already paid", Message(err))
}

func TestPaymentService_Pay_UnknownOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.payments.Pay(context.Background(), uuid.New(), models.PaymentTypePix)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Order not found", Message(err))
}
