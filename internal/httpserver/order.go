package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	customerID, err := pathID(c, l, "order_checkout", "customerId")
	if err != nil {
		return err
	}

	order, err := h.Svc.Checkout(ctx, customerID)
	if err != nil {
		return serviceError(l, "order_checkout", err)
	}

	l.Info("order_checkout_success", "order_id", order.ID)
	return created(c, "/orders/"+order.ID.String(), transport.ToOrderResponse(order))
}

func (h *OrderHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := pathID(c, l, "order_get", "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(l, "order_get", err)
	}
	return c.JSON(http.StatusOK, transport.ToOrderResponse(order))
}
