package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CPF      string `json:"cpf"      validate:"required,cpf"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateCustomerRequest carries the mutable customer fields only.
type UpdateCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

type ProductRequest struct {
	Name        string           `json:"name"        validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"       validate:"required,gte=0"`
	Stock       *int             `json:"stock"       validate:"required,gte=0"`
	ImageURL    string           `json:"imageUrl"    validate:"omitempty,url"`
	CategoryID  uuid.UUID        `json:"categoryId"  validate:"required"`
}

type CustomerResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	CPF     string    `json:"cpf"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type ProductResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"imageUrl"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

type CartItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
}

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
}

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	CustomerID uuid.UUID           `json:"customerId"`
	Total      string              `json:"total"`
	Status     string              `json:"status"`
	OrderDate  string              `json:"orderDate"`
	Items      []OrderItemResponse `json:"items"`
}

type PaymentResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	Status      string    `json:"status"`
	PaymentType string    `json:"paymentType"`
	Amount      string    `json:"amount"`
	PaymentDate string    `json:"paymentDate"`
}
