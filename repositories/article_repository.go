package repositories

import (
	"context"
	"errors"
	"strings"

	"newsportal/models"

	"gorm.io/gorm"
)

// ErrInvalidCursor is returned when a pagination cursor does not name an
// article that carries the ordering column.
var ErrInvalidCursor = errors.New("invalid cursor")

type ArticleOrder int

const (
	// OrderByPublishedAt sorts by publication time, newest first.
	OrderByPublishedAt ArticleOrder = iota
	// OrderByCreatedAt sorts by creation time, newest first.
	OrderByCreatedAt
)

// ArticleQuery describes one keyset-paginated read. Rows are ordered by the
// chosen timestamp then id, both descending; Cursor names the first row to
// return. Limit is the number of rows fetched.
type ArticleQuery struct {
	Status     *models.ArticleStatus
	CategoryID *uint
	ExcludeID  *uint
	Search     string
	Cursor     *uint
	Limit      int
	Order      ArticleOrder
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	ViewPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	List(ctx context.Context, query ArticleQuery) ([]models.Article, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// withRelations loads the category and the author's public fields.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		})
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Scopes(withRelations).First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	return &article, err
}

// ViewPublishedBySlug increments the view counter of a published article and
// returns it, counter included, in one transaction.
func (r *articleRepository) ViewPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Article{}).
			Where("slug = ? AND status = ?", slug, models.StatusPublished).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Scopes(withRelations).Where("slug = ?", slug).First(&article).Error
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	column := "published_at"
	if q.Order == OrderByCreatedAt {
		column = "created_at"
	}

	query := r.db.WithContext(ctx).Model(&models.Article{}).Scopes(withRelations)

	if q.Status != nil {
		query = query.Where("articles.status = ?", *q.Status)
	}
	if q.CategoryID != nil {
		query = query.Where("articles.category_id = ?", *q.CategoryID)
	}
	if q.ExcludeID != nil {
		query = query.Where("articles.id <> ?", *q.ExcludeID)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		query = query.Where(`(LOWER(articles.title) LIKE ? ESCAPE '\' OR LOWER(articles.summary) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if q.Cursor != nil {
		var anchors int64
		err := r.db.WithContext(ctx).Model(&models.Article{}).
			Where("id = ? AND "+column+" IS NOT NULL", *q.Cursor).
			Count(&anchors).Error
		if err != nil {
			return nil, err
		}
		if anchors == 0 {
			return nil, ErrInvalidCursor
		}

		anchor := r.db.Model(&models.Article{}).Select(column).Where("id = ?", *q.Cursor)
		query = query.Where(
			"(articles."+column+" < (?) OR (articles."+column+" = (?) AND articles.id <= ?))",
			anchor, anchor, *q.Cursor,
		)
	}

	var articles []models.Article
	err := query.
		Order("articles." + column + " DESC").
		Order("articles.id DESC").
		Limit(q.Limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Article{ID: id}).Updates(fields).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
