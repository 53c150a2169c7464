package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/metrics"
	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/events"
)

type ProductService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.ShopMetrics
}

func validateProduct(req transport.ProductRequest) error {
	if req.Price == nil {
		return newErr(ErrValidation, "Invalid field 'price': must not be blank")
	}
	if req.Price.IsNegative() {
		return newErr(ErrValidation, "Invalid field 'price': must be greater than or equal to 0")
	}
	if req.Stock == nil {
		return newErr(ErrValidation, "Invalid field 'stock': must not be blank")
	}
	if *req.Stock < 0 {
		return newErr(ErrValidation, "Invalid field 'stock': must be greater than or equal to 0")
	}
	return nil
}

func applyProduct(p *models.Product, req transport.ProductRequest, category *models.Category) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price.Round(2)
	p.Stock = *req.Stock
	p.ImageURL = req.ImageURL
	p.CategoryID = category.ID
	p.Category = *category
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{}
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		category, err := tx.GetCategory(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Category not found")
			}
			return err
		}

		applyProduct(product, req, category)
		return tx.CreateProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.RecordProductCreated()
	publish(ctx, s.Events, events.TopicCatalog, product.ID.String(), map[string]any{
		"type":       "product_created",
		"productID":  product.ID,
		"name":       product.Name,
		"price":      product.Price.StringFixed(2),
		"categoryID": product.CategoryID,
	})
	return product, nil
}

func (s *ProductService) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newErr(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, newErr(ErrNotFound, "Products not found")
	}
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	var product *models.Product
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		var err error
		product, err = tx.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Product not found")
			}
			return err
		}

		category, err := tx.GetCategory(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Category not found")
			}
			return err
		}

		applyProduct(product, req, category)
		return tx.SaveProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCatalog, product.ID.String(), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
		"price":     product.Price.StringFixed(2),
		"stock":     product.Stock,
	})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetProduct(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Product not found")
			}
			return err
		}

		refs, err := tx.CountProductReferences(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return newErr(ErrBusiness, "Product is referenced by carts or orders and cannot be deleted")
		}

		return mapDeleteErr(tx.DeleteProduct(ctx, id), "Product not found", "Product is still referenced")
	})
	if err != nil {
		return err
	}

	publish(ctx, s.Events, events.TopicCatalog, id.String(), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return nil
}
