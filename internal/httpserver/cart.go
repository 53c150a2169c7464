package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	customerID, err := pathID(c, l, "cart_add_item", "customerId")
	if err != nil {
		return err
	}
	productID, err := pathID(c, l, "cart_add_item", "productId")
	if err != nil {
		return err
	}

	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		l.Warn("cart_add_item_error", "status", http.StatusBadRequest, "reason", "quantity is not an integer", "error", err)
		return apiError(http.StatusBadRequest, titleMalformed, "Query parameter 'quantity' must be an integer")
	}

	item, err := h.Svc.AddItem(ctx, customerID, productID, quantity)
	if err != nil {
		return serviceError(l, "cart_add_item", err)
	}

	l.Info("cart_add_item_success", "customer_id", customerID, "product_id", productID)
	return created(c, c.Request().URL.RequestURI(), transport.ToCartItemResponse(item))
}

func (h *CartHTTP) GetItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_items")

	customerID, err := pathID(c, l, "cart_get_items", "customerId")
	if err != nil {
		return err
	}

	items, err := h.Svc.GetItems(ctx, customerID)
	if err != nil {
		return serviceError(l, "cart_get_items", err)
	}
	return c.JSON(http.StatusOK, transport.ToCartItemResponses(items))
}
