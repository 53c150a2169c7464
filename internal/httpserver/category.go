package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CategoryRequest
	if err := bindValid(c, l, "category_create", &req); err != nil {
		return err
	}

	category, err := h.Svc.Create(ctx, req)
	if err != nil {
		return serviceError(l, "category_create", err)
	}

	l.Info("category_create_success", "category_id", category.ID)
	return created(c, "/categories/"+category.ID.String(), transport.ToCategoryResponse(category))
}

func (h *CategoryHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	id, err := pathID(c, l, "category_get", "id")
	if err != nil {
		return err
	}

	category, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(l, "category_get", err)
	}
	return c.JSON(http.StatusOK, transport.ToCategoryResponse(category))
}

func (h *CategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	categories, err := h.Svc.FindAll(ctx)
	if err != nil {
		return serviceError(l, "category_list", err)
	}
	return c.JSON(http.StatusOK, transport.ToCategoryResponses(categories))
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := pathID(c, l, "category_update", "id")
	if err != nil {
		return err
	}

	var req transport.CategoryRequest
	if err := bindValid(c, l, "category_update", &req); err != nil {
		return err
	}

	category, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return serviceError(l, "category_update", err)
	}

	l.Info("category_update_success", "category_id", id)
	return c.JSON(http.StatusOK, transport.ToCategoryResponse(category))
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := pathID(c, l, "category_delete", "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return serviceError(l, "category_delete", err)
	}

	l.Info("category_delete_success", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}
