package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/metrics"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/events"
	"github.com/Skotchmaster/ecommerce_api/pkg/hash"
	"github.com/Skotchmaster/ecommerce_api/pkg/logging"
)

type CustomerService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.ShopMetrics
}

func (s *CustomerService) Create(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "customer.create")

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	cpf := models.NormalizeCPF(req.CPF)
	customer := &models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		CPF:      cpf,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		taken, err := tx.CustomerEmailExists(ctx, req.Email)
		if err != nil {
			return err
		}
		if taken {
			return newErr(ErrEmailExists, "Email already registered: %s", req.Email)
		}

		taken, err = tx.CustomerCPFExists(ctx, cpf)
		if err != nil {
			return err
		}
		if taken {
			return newErr(ErrCPFExists, "CPF already registered: %s", cpf)
		}

		return tx.CreateCustomer(ctx, customer)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, s.duplicateCustomer(ctx, customer.Email, cpf, err)
	}
	if err != nil {
		return nil, err
	}

	l.Info("customer_created", "customer_id", customer.ID)
	s.Metrics.RecordCustomerCreated()
	publish(ctx, s.Events, events.TopicCustomer, customer.ID.String(), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"email":      customer.Email,
	})
	return customer, nil
}

// duplicateCustomer names the unique key a concurrent create won on. It runs
// after the failed transaction has rolled back.
func (s *CustomerService) duplicateCustomer(ctx context.Context, email, cpf string, cause error) error {
	taken, err := s.Repo.CustomerEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return newErr(ErrEmailExists, "Email already registered: %s", email)
	}
	taken, err = s.Repo.CustomerCPFExists(ctx, cpf)
	if err != nil {
		return err
	}
	if taken {
		return newErr(ErrCPFExists, "CPF already registered: %s", cpf)
	}
	return cause
}

func (s *CustomerService) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newErr(ErrNotFound, "Customer not found")
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) FindAll(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.Repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, newErr(ErrNotFound, "Customers not found")
	}
	return customers, nil
}

// Update overwrites name, phone and address. Email and CPF never change.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req transport.UpdateCustomerRequest) (*models.Customer, error) {
	var customer *models.Customer
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		var err error
		customer, err = tx.GetCustomer(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Customer not found")
			}
			return err
		}

		customer.Name = req.Name
		customer.Phone = req.Phone
		customer.Address = req.Address
		return tx.SaveCustomer(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCustomer, customer.ID.String(), map[string]any{
		"type":       "customer_updated",
		"customerID": customer.ID,
	})
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetCustomer(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Customer not found")
			}
			return err
		}

		orders, err := tx.CountCustomerOrders(ctx, id)
		if err != nil {
			return err
		}
		if orders > 0 {
			return newErr(ErrBusiness, "Customer has orders and cannot be deleted")
		}
		if err := tx.DeleteCustomerCart(ctx, id); err != nil {
			return err
		}

		return mapDeleteErr(tx.DeleteCustomer(ctx, id), "Customer not found", "Customer is still referenced")
	})
	if err != nil {
		return err
	}

	publish(ctx, s.Events, events.TopicCustomer, id.String(), map[string]any{
		"type":       "customer_deleted",
		"customerID": id,
	})
	return nil
}

func mapDeleteErr(err error, notFound, inUse string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newErr(ErrNotFound, "%s", notFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return newErr(ErrBusiness, "%s", inUse)
	default:
		return err
	}
}
