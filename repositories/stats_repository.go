package repositories

import (
	"context"

	"newsportal/models"

	"gorm.io/gorm"
)

type StatsRepository interface {
	CountArticles(ctx context.Context, status *models.ArticleStatus) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	CategoryDistribution(ctx context.Context) ([]models.CategoryDistribution, error)
	RecentArticles(ctx context.Context, limit int) ([]models.Article, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountArticles(ctx context.Context, status *models.ArticleStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Article{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

// CategoryDistribution counts articles of every status per category, largest first.
func (r *statsRepository) CategoryDistribution(ctx context.Context) ([]models.CategoryDistribution, error) {
	var rows []models.CategoryDistribution
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Select("categories.name AS name, COUNT(articles.id) AS count").
		Joins("LEFT JOIN articles ON articles.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("COUNT(articles.id) DESC").
		Order("categories.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) RecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Scopes(withRelations).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}
