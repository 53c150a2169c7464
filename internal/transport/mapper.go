package transport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ToCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		CPF:     c.CPF,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func ToCustomerResponses(list []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCustomerResponse(&list[i]))
	}
	return out
}

func ToCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func ToCategoryResponses(list []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCategoryResponse(&list[i]))
	}
	return out
}

func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        money(p.Price),
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
	}
}

func ToProductResponses(list []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, ToProductResponse(&list[i]))
	}
	return out
}

func ToCartItemResponse(item *models.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductID:   item.ProductID,
		ProductName: item.Product.Name,
		Quantity:    item.Quantity,
		UnitPrice:   money(item.UnitPrice),
	}
}

func ToCartItemResponses(items []models.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, ToCartItemResponse(&items[i]))
	}
	return out
}

func ToOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   money(it.UnitPrice),
		})
	}
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      money(o.Total),
		Status:     string(o.Status),
		OrderDate:  timestamp(o.OrderDate),
		Items:      items,
	}
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		OrderID:     p.OrderID,
		Status:      string(p.Status),
		PaymentType: string(p.PaymentType),
		Amount:      money(p.Amount),
		PaymentDate: timestamp(p.PaymentDate),
	}
}
