package repositories

import (
	"context"

	"newsportal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByNameOrSlug(ctx context.Context, name, slug string, excludeID uint) (*models.Category, error)
	ListWithArticleCounts(ctx context.Context, status *models.ArticleStatus) ([]models.CategorySummary, error)
	GetSummaryBySlug(ctx context.Context, slug string, status *models.ArticleStatus) (*models.CategorySummary, error)
	CountArticles(ctx context.Context, categoryID uint) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	return &category, err
}

// FindByNameOrSlug returns any category other than excludeID whose name or
// slug matches. Empty arguments never match.
func (r *categoryRepository) FindByNameOrSlug(ctx context.Context, name, slug string, excludeID uint) (*models.Category, error) {
	var category models.Category
	query := r.db.WithContext(ctx).Where("(name = ? OR slug = ?)", name, slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	return &category, err
}

// summaries counts articles per category through a left join so empty
// categories report zero. A nil status counts every article.
func (r *categoryRepository) summaries(ctx context.Context, status *models.ArticleStatus) *gorm.DB {
	join := "LEFT JOIN articles ON articles.category_id = categories.id"
	args := []interface{}{}
	if status != nil {
		join += " AND articles.status = ?"
		args = append(args, *status)
	}

	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.*, COUNT(articles.id) AS article_count").
		Joins(join, args...).
		Group("categories.id")
}

func (r *categoryRepository) ListWithArticleCounts(ctx context.Context, status *models.ArticleStatus) ([]models.CategorySummary, error) {
	var categories []models.CategorySummary
	err := r.summaries(ctx, status).
		Order("categories.name ASC").
		Scan(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetSummaryBySlug(ctx context.Context, slug string, status *models.ArticleStatus) (*models.CategorySummary, error) {
	var categories []models.CategorySummary
	err := r.summaries(ctx, status).
		Where("categories.slug = ?", slug).
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &categories[0], nil
}

func (r *categoryRepository) CountArticles(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *categoryRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Category{ID: id}).Updates(fields).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, id).Error
}
