package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create")

	var req transport.CreateCustomerRequest
	if err := bindValid(c, l, "customer_create", &req); err != nil {
		return err
	}

	customer, err := h.Svc.Create(ctx, req)
	if err != nil {
		return serviceError(l, "customer_create", err)
	}

	l.Info("customer_create_success", "customer_id", customer.ID)
	return created(c, "/customers/"+customer.ID.String(), transport.ToCustomerResponse(customer))
}

func (h *CustomerHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get")

	id, err := pathID(c, l, "customer_get", "id")
	if err != nil {
		return err
	}

	customer, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return serviceError(l, "customer_get", err)
	}
	return c.JSON(http.StatusOK, transport.ToCustomerResponse(customer))
}

func (h *CustomerHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.list")

	customers, err := h.Svc.FindAll(ctx)
	if err != nil {
		return serviceError(l, "customer_list", err)
	}
	return c.JSON(http.StatusOK, transport.ToCustomerResponses(customers))
}

func (h *CustomerHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update")

	id, err := pathID(c, l, "customer_update", "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCustomerRequest
	if err := bindValid(c, l, "customer_update", &req); err != nil {
		return err
	}

	customer, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return serviceError(l, "customer_update", err)
	}

	l.Info("customer_update_success", "customer_id", id)
	return c.JSON(http.StatusOK, transport.ToCustomerResponse(customer))
}

func (h *CustomerHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete")

	id, err := pathID(c, l, "customer_delete", "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return serviceError(l, "customer_delete", err)
	}

	l.Info("customer_delete_success", "customer_id", id)
	return c.NoContent(http.StatusNoContent)
}
