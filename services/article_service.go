package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsportal/helper"
	"newsportal/metrics"
	"newsportal/models"
	"newsportal/repositories"

	log "github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

type ArticleService interface {
	// Public reads, restricted to published articles.
	GetLatest(ctx context.Context, params models.PageParams) (*models.ArticlePage, error)
	GetByCategory(ctx context.Context, categorySlug string, params models.PageParams) (*models.CategoryArticlePage, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetRelated(ctx context.Context, params models.RelatedParams) ([]models.Article, error)
	Search(ctx context.Context, params models.SearchParams) ([]models.Article, error)

	// Admin operations.
	GetAll(ctx context.Context, actor models.Identity, params models.AdminArticleListParams) (*models.ArticlePage, error)
	GetByID(ctx context.Context, actor models.Identity, id uint) (*models.Article, error)
	Create(ctx context.Context, actor models.Identity, req models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, actor models.Identity, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, actor models.Identity, id uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	validate     *validator.Validate
	now          func() time.Time
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, validate *validator.Validate) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		validate:     validate,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

var (
	errArticleNotFound = models.ErrorNotFound{Message: "Article not found"}
	errSlugTaken       = models.ErrorConflict{Message: "An article with this slug already exists"}
)

func (s *articleService) GetLatest(ctx context.Context, params models.PageParams) (*models.ArticlePage, error) {
	if err := validateInput(s.validate, params); err != nil {
		return nil, err
	}

	published := models.StatusPublished
	return s.page(ctx, repositories.ArticleQuery{
		Status: &published,
		Cursor: params.Cursor,
		Limit:  params.Limit,
		Order:  repositories.OrderByPublishedAt,
	})
}

func (s *articleService) GetByCategory(ctx context.Context, categorySlug string, params models.PageParams) (*models.CategoryArticlePage, error) {
	if err := requireSlug(categorySlug); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, params); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	published := models.StatusPublished
	page, err := s.page(ctx, repositories.ArticleQuery{
		Status:     &published,
		CategoryID: &category.ID,
		Cursor:     params.Cursor,
		Limit:      params.Limit,
		Order:      repositories.OrderByPublishedAt,
	})
	if err != nil {
		return nil, err
	}
	return &models.CategoryArticlePage{ArticlePage: *page, Category: *category}, nil
}

// GetBySlug returns a published article and counts the fetch as one view.
// Every call counts; there is no per-caller deduplication.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if err := requireSlug(slug); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.ViewPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errArticleNotFound
		}
		return nil, fmt.Errorf("view article: %w", err)
	}

	metrics.ArticleViews.Inc()
	return article, nil
}

func (s *articleService) GetRelated(ctx context.Context, params models.RelatedParams) ([]models.Article, error) {
	if err := validateInput(s.validate, params); err != nil {
		return nil, err
	}

	published := models.StatusPublished
	articles, err := s.articleRepo.List(ctx, repositories.ArticleQuery{
		Status:     &published,
		CategoryID: &params.CategoryID,
		ExcludeID:  &params.ArticleID,
		Limit:      params.Limit,
		Order:      repositories.OrderByPublishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("list related articles: %w", err)
	}
	return nonNil(articles), nil
}

// Search matches the query against title and summary, case-insensitively.
// Results are ordered by publication time; there is no relevance ranking.
func (s *articleService) Search(ctx context.Context, params models.SearchParams) ([]models.Article, error) {
	if err := validateInput(s.validate, params); err != nil {
		return nil, err
	}

	published := models.StatusPublished
	articles, err := s.articleRepo.List(ctx, repositories.ArticleQuery{
		Status: &published,
		Search: params.Query,
		Limit:  params.Limit,
		Order:  repositories.OrderByPublishedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return nonNil(articles), nil
}

func (s *articleService) GetAll(ctx context.Context, actor models.Identity, params models.AdminArticleListParams) (*models.ArticlePage, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, params); err != nil {
		return nil, err
	}

	return s.page(ctx, repositories.ArticleQuery{
		Status: params.Status,
		Cursor: params.Cursor,
		Limit:  params.Limit,
		Order:  repositories.OrderByCreatedAt,
	})
}

func (s *articleService) GetByID(ctx context.Context, actor models.Identity, id uint) (*models.Article, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	return s.getByID(ctx, id)
}

func (s *articleService) Create(ctx context.Context, actor models.Identity, req models.CreateArticleRequest) (*models.Article, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = models.StatusDraft
	}
	if err := validateInput(s.validate, req); err != nil {
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, req.Slug); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Content:       helper.SanitizeHTML(req.Content),
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		CategoryID:    req.CategoryID,
		AuthorID:      actor.ID,
	}
	if article.IsPublished() {
		publishedAt := s.now()
		article.PublishedAt = &publishedAt
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errSlugTaken
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	if article.IsPublished() {
		metrics.ArticlePublications.Inc()
	}
	log.WithFields(log.Fields{
		"article_id": article.ID,
		"slug":       article.Slug,
		"status":     article.Status,
		"actor_id":   actor.ID,
	}).Info("article created")

	return s.getByID(ctx, article.ID)
}

// Update applies only the supplied fields. publishedAt is stamped on the
// transition into PUBLISHED and is never cleared afterwards.
func (s *articleService) Update(ctx context.Context, actor models.Identity, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
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
	if req.Slug != nil && *req.Slug != existing.Slug {
		if err := s.ensureSlugFree(ctx, *req.Slug); err != nil {
			return nil, err
		}
		fields["slug"] = *req.Slug
	}
	if req.CategoryID != nil && *req.CategoryID != existing.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *req.CategoryID
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.Content != nil {
		fields["content"] = helper.SanitizeHTML(*req.Content)
	}
	if req.FeaturedImage != nil {
		fields["featured_image"] = *req.FeaturedImage
	}

	publishing := false
	if req.Status != nil {
		fields["status"] = *req.Status
		if *req.Status == models.StatusPublished && !existing.IsPublished() {
			fields["published_at"] = s.now()
			publishing = true
		}
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.articleRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errSlugTaken
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	entry := log.WithFields(log.Fields{"article_id": id, "actor_id": actor.ID})
	if publishing {
		metrics.ArticlePublications.Inc()
		entry.Info("article published")
	} else {
		entry.Info("article updated")
	}

	return s.getByID(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, actor models.Identity, id uint) error {
	if err := authorize(actor); err != nil {
		return err
	}

	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	log.WithFields(log.Fields{"article_id": id, "actor_id": actor.ID}).Info("article deleted")
	return nil
}

// page fetches one row more than requested to learn whether another page follows.
func (s *articleService) page(ctx context.Context, query repositories.ArticleQuery) (*models.ArticlePage, error) {
	limit := query.Limit
	query.Limit = limit + 1

	articles, err := s.articleRepo.List(ctx, query)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCursor) {
			return nil, models.ErrorBadRequest{Message: "Invalid cursor"}
		}
		return nil, fmt.Errorf("list articles: %w", err)
	}

	page := paginate(articles, limit)
	return &page, nil
}

func (s *articleService) getByID(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

func (s *articleService) ensureSlugFree(ctx context.Context, slug string) error {
	_, err := s.articleRepo.GetBySlug(ctx, slug)
	if err == nil {
		return errSlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check article slug: %w", err)
	}
	return nil
}

func (s *articleService) ensureCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Category not found"}
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}

func nonNil(articles []models.Article) []models.Article {
	if articles == nil {
		return []models.Article{}
	}
	return articles
}
