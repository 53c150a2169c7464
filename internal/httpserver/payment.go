package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) Pay(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.pay")

	orderID, err := pathID(c, l, "payment_pay", "orderId")
	if err != nil {
		return err
	}

	paymentType, err := models.ParsePaymentType(c.QueryParam("paymentType"))
	if err != nil {
		l.Warn("payment_pay_error", "status", http.StatusBadRequest, "reason", "unknown payment type", "error", err)
		return apiError(http.StatusBadRequest, titleMalformed, "Query parameter 'paymentType' must be one of PIX, CREDIT_CARD, DEBIT_CARD, BOLETO")
	}

	payment, err := h.Svc.Pay(ctx, orderID, paymentType)
	if err != nil {
		return serviceError(l, "payment_pay", err)
	}

	l.Info("payment_pay_success", "order_id", orderID, "payment_id", payment.ID)
	return created(c, "/payments/"+orderID.String()+"/"+payment.ID.String(), transport.ToPaymentResponse(payment))
}
