package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := bindValid(c, l, "product_create", &req); err != nil {
		return err
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		return serviceError(l, "product_create", err)
	}

	l.Info("product_create_success", "product_id", product.ID)
	return created(c, "/products/"+product.ID.String(), transport.ToProductResponse(product))
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := pathID(c, l, "product_get", "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(l, "product_get", err)
	}
	return c.JSON(http.StatusOK, transport.ToProductResponse(product))
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, err := h.Svc.FindAll(ctx)
	if err != nil {
		return serviceError(l, "product_list", err)
	}
	return c.JSON(http.StatusOK, transport.ToProductResponses(products))
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := pathID(c, l, "product_update", "id")
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := bindValid(c, l, "product_update", &req); err != nil {
		return err
	}

	product, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return serviceError(l, "product_update", err)
	}

	l.Info("product_update_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.ToProductResponse(product))
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := pathID(c, l, "product_delete", "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return serviceError(l, "product_delete", err)
	}

	l.Info("product_delete_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
