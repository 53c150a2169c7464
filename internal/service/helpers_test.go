package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/testdb"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

type published struct {
	Topic string
	Key   string
	Event map[string]any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, _ := event.(map[string]any)
	p.events = append(p.events, published{Topic: topic, Key: key, Event: m})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event["type"].(string))
	}
	return out
}

type fixture struct {
	repo      *repo.GormRepo
	events    *recordingPublisher
	customers *CustomerService
	catalog   *CategoryService
	products  *ProductService
	carts     *CartService
	orders    *OrderService
	payments  *PaymentService
}

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	r := repo.New(testdb.New(t))
	pub := &recordingPublisher{}
	now := func() time.Time { return fixedNow }

	return &fixture{
		repo:      r,
		events:    pub,
		customers: &CustomerService{Repo: r, Events: pub},
		catalog:   &CategoryService{Repo: r, Events: pub},
		products:  &ProductService{Repo: r, Events: pub},
		carts:     &CartService{Repo: r, Events: pub, Now: now},
		orders:    &OrderService{Repo: r, Events: pub, Now: now},
		payments:  &PaymentService{Repo: r, Events: pub, Now: now},
	}
}

func (f *fixture) customer(t *testing.T, email, cpf string) *models.Customer {
	t.Helper()

	c, err := f.customers.Create(context.Background(), transport.CreateCustomerRequest{
		Name:     "Maria",
		Email:    email,
		Password: "secret1",
		CPF:      cpf,
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) category(t *testing.T, name string) *models.Category {
	t.Helper()

	c, err := f.catalog.Create(context.Background(), transport.CategoryRequest{Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, categoryID uuid.UUID, name, price string, stock int) *models.Product {
	t.Helper()

	p, err := f.products.Create(context.Background(), productReq(categoryID, name, price, stock))
	require.NoError(t, err)
	return p
}

func productReq(categoryID uuid.UUID, name, price string, stock int) transport.ProductRequest {
	d := decimal.RequireFromString(price)
	return transport.ProductRequest{
		Name:       name,
		Price:      &d,
		Stock:      &stock,
		CategoryID: categoryID,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
