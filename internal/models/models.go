package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	CPF       string    `gorm:"column:cpf;uniqueIndex;not null"`
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
	ImageURL    string          `gorm:"column:image_url"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Category    Category        `gorm:"constraint:OnDelete:RESTRICT"`
}

type Cart struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Customer   Customer   `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time  `gorm:"not null"`
	Items      []CartItem `gorm:"constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_cart_product;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_cart_product;not null"`
	Product   Product         `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Customer   Customer        `gorm:"constraint:OnDelete:RESTRICT"`
	OrderDate  time.Time       `gorm:"not null"`
	Status     OrderStatus     `gorm:"type:varchar(16);not null"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items      []OrderItem     `gorm:"constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Product   Product         `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"not null"`
}

type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Order       Order           `gorm:"constraint:OnDelete:RESTRICT"`
	PaymentType PaymentType     `gorm:"type:varchar(16);not null"`
	Status      PaymentStatus   `gorm:"type:varchar(16);not null"`
	PaymentDate time.Time       `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&Customer{},
		&Category{},
		&Product{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Payment{},
	}
}

func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (c *Customer) BeforeCreate(*gorm.DB) error  { newID(&c.ID); return nil }
func (c *Category) BeforeCreate(*gorm.DB) error  { newID(&c.ID); return nil }
func (p *Product) BeforeCreate(*gorm.DB) error   { newID(&p.ID); return nil }
func (c *Cart) BeforeCreate(*gorm.DB) error      { newID(&c.ID); return nil }
func (i *CartItem) BeforeCreate(*gorm.DB) error  { newID(&i.ID); return nil }
func (o *Order) BeforeCreate(*gorm.DB) error     { newID(&o.ID); return nil }
func (i *OrderItem) BeforeCreate(*gorm.DB) error { newID(&i.ID); return nil }
func (p *Payment) BeforeCreate(*gorm.DB) error   { newID(&p.ID); return nil }
