package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type Deps struct {
	CustomerHandler *CustomerHTTP
	CategoryHandler *CategoryHTTP
	ProductHandler  *ProductHTTP
	CartHandler     *CartHTTP
	OrderHandler    *OrderHTTP
	PaymentHandler  *PaymentHTTP

	// Ready reports whether the service can take traffic, usually a DB ping.
	Ready func(ctx context.Context) error
	// Metrics serves the Prometheus exposition on /metrics when set.
	Metrics http.Handler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{"status": "ok"}) })
	e.GET("/health/ready", d.ready)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	customers := e.Group("/customers")
	customers.POST("", d.CustomerHandler.Create)
	customers.GET("", d.CustomerHandler.List)
	customers.GET("/:id", d.CustomerHandler.Get)
	customers.PUT("/:id", d.CustomerHandler.Update)
	customers.DELETE("/:id", d.CustomerHandler.Delete)

	categories := e.Group("/categories")
	categories.POST("", d.CategoryHandler.Create)
	categories.GET("", d.CategoryHandler.List)
	categories.GET("/:id", d.CategoryHandler.Get)
	categories.PUT("/:id", d.CategoryHandler.Update)
	categories.DELETE("/:id", d.CategoryHandler.Delete)

	products := e.Group("/products")
	products.POST("", d.ProductHandler.Create)
	products.GET("", d.ProductHandler.List)
	products.GET("/:id", d.ProductHandler.Get)
	products.PUT("/:id", d.ProductHandler.Update)
	products.DELETE("/:id", d.ProductHandler.Delete)

	carts := e.Group("/carts")
	carts.POST("/:customerId/items/:productId", d.CartHandler.AddItem)
	carts.GET("/:customerId", d.CartHandler.GetItems)

	e.POST("/orders/:customerId", d.OrderHandler.Checkout)
	e.GET("/orders/:id", d.OrderHandler.Get)

	e.POST("/payments/:orderId", d.PaymentHandler.Pay)
}

func (d *Deps) ready(c echo.Context) error {
	if d.Ready == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := d.Ready(ctx); err != nil {
		logging.FromContext(ctx).Error("readiness_check_failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
