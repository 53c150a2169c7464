package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/internal/repo"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
	"github.com/Skotchmaster/ecommerce_api/pkg/events"
)

type CategoryService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *CategoryService) Create(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name, Description: req.Description}

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := ensureCategoryNameFree(ctx, tx, req.Name, uuid.Nil); err != nil {
			return err
		}
		if err := tx.CreateCategory(ctx, category); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newErr(ErrBusiness, "Category with name %s already exists", req.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCatalog, category.ID.String(), map[string]any{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})
	return category, nil
}

func (s *CategoryService) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newErr(ErrNotFound, "Category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, newErr(ErrNotFound, "Categories not found")
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req transport.CategoryRequest) (*models.Category, error) {
	var category *models.Category
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		var err error
		category, err = tx.GetCategory(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Category not found")
			}
			return err
		}
		if err := ensureCategoryNameFree(ctx, tx, req.Name, id); err != nil {
			return err
		}

		category.Name = req.Name
		category.Description = req.Description
		return tx.SaveCategory(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicCatalog, category.ID.String(), map[string]any{
		"type":       "category_updated",
		"categoryID": category.ID,
		"name":       category.Name,
	})
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetCategory(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newErr(ErrNotFound, "Category not found")
			}
			return err
		}

		products, err := tx.CountCategoryProducts(ctx, id)
		if err != nil {
			return err
		}
		if products > 0 {
			return newErr(ErrBusiness, "Category has products and cannot be deleted")
		}

		return mapDeleteErr(tx.DeleteCategory(ctx, id), "Category not found", "Category is still referenced")
	})
	if err != nil {
		return err
	}

	publish(ctx, s.Events, events.TopicCatalog, id.String(), map[string]any{
		"type":       "category_deleted",
		"categoryID": id,
	})
	return nil
}

func ensureCategoryNameFree(ctx context.Context, tx *repo.GormRepo, name string, self uuid.UUID) error {
	taken, err := tx.CategoryNameTaken(ctx, name, self)
	if err != nil {
		return err
	}
	if taken {
		return newErr(ErrBusiness, "Category with name %s already exists", name)
	}
	return nil
}
