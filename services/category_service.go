package services

import (
	"context"
	"errors"
	"fmt"

	"newsportal/models"
	"newsportal/repositories"

	log "github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

type CategoryService interface {
	ListPublic(ctx context.Context) ([]models.CategorySummary, error)
	ListAdmin(ctx context.Context, actor models.Identity) ([]models.CategorySummary, error)
	GetBySlug(ctx context.Context, slug string) (*models.CategorySummary, error)
	Create(ctx context.Context, actor models.Identity, req models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, actor models.Identity, id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, actor models.Identity, id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, validate *validator.Validate) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		validate:     validate,
	}
}

var errCategoryConflict = models.ErrorConflict{Message: "A category with this name or slug already exists"}

// ListPublic returns every category with its number of published articles.
func (s *categoryService) ListPublic(ctx context.Context) ([]models.CategorySummary, error) {
	published := models.StatusPublished
	categories, err := s.categoryRepo.ListWithArticleCounts(ctx, &published)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListAdmin returns every category with its total number of articles.
func (s *categoryService) ListAdmin(ctx context.Context, actor models.Identity) ([]models.CategorySummary, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListWithArticleCounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.CategorySummary, error) {
	if err := requireSlug(slug); err != nil {
		return nil, err
	}
	published := models.StatusPublished
	category, err := s.categoryRepo.GetSummaryBySlug(ctx, slug, &published)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, actor models.Identity, req models.CreateCategoryRequest) (*models.Category, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, req); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, req.Name, req.Slug, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errCategoryConflict
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	log.WithFields(log.Fields{
		"category_id": category.ID,
		"slug":        category.Slug,
		"actor_id":    actor.ID,
	}).Info("category created")
	return category, nil
}

// Update applies only the supplied fields.
func (s *categoryService) Update(ctx context.Context, actor models.Identity, id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, req); err != nil {
		return nil, err
	}

	existing, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	var name, slug string
	if req.Name != nil && *req.Name != existing.Name {
		name = *req.Name
		fields["name"] = name
	}
	if req.Slug != nil && *req.Slug != existing.Slug {
		slug = *req.Slug
		fields["slug"] = slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if name != "" || slug != "" {
		if err := s.ensureUnique(ctx, name, slug, id); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errCategoryConflict
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	log.WithFields(log.Fields{"category_id": id, "actor_id": actor.ID}).Info("category updated")
	return s.getByID(ctx, id)
}

// Delete removes a category that no article references.
func (s *categoryService) Delete(ctx context.Context, actor models.Identity, id uint) error {
	if err := authorize(actor); err != nil {
		return err
	}

	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("count category articles: %w", err)
	}
	if count > 0 {
		log.WithFields(log.Fields{"category_id": id, "articles": count}).Warn("category deletion blocked")
		return models.ErrorPreconditionFailed{Message: "Cannot delete category with existing articles"}
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	log.WithFields(log.Fields{"category_id": id, "actor_id": actor.ID}).Info("category deleted")
	return nil
}

func (s *categoryService) getByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// ensureUnique fails with a conflict when another category already uses
// name or slug.
func (s *categoryService) ensureUnique(ctx context.Context, name, slug string, excludeID uint) error {
	_, err := s.categoryRepo.FindByNameOrSlug(ctx, name, slug, excludeID)
	if err == nil {
		return errCategoryConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check category uniqueness: %w", err)
	}
	return nil
}
