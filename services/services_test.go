package services

import (
	"context"
	"testing"
	"time"

	"newsportal/helper"
	"newsportal/models"
	"newsportal/repositories"
	"newsportal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture wires every service against a fresh in-memory database.
type fixture struct {
	ctx        context.Context
	db         *gorm.DB
	categories CategoryService
	articles   *articleService
	stats      StatsService
	auth       AuthService
	admin      models.Identity
	editor     models.Identity
	reader     models.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	validate, _, err := helper.NewValidator()
	require.NoError(t, err)
	categoryRepo := repositories.NewCategoryRepository(db)

	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)
	editor := testutil.CreateUser(t, db, "editor@example.com", models.RoleEditor)
	reader := testutil.CreateUser(t, db, "reader@example.com", models.RoleUser)

	articles, ok := NewArticleService(repositories.NewArticleRepository(db), categoryRepo, validate).(*articleService)
	require.True(t, ok)

	return &fixture{
		ctx:        context.Background(),
		db:         db,
		categories: NewCategoryService(categoryRepo, validate),
		articles:   articles,
		stats:      NewStatsService(repositories.NewStatsRepository(db)),
		auth:       NewAuthService(repositories.NewUserRepository(db), validate, []byte("test-secret"), time.Hour),
		admin:      models.Identity{ID: admin.ID, Role: admin.Role},
		editor:     models.Identity{ID: editor.ID, Role: editor.Role},
		reader:     models.Identity{ID: reader.ID, Role: reader.Role},
	}
}

// clock makes the article service hand out strictly increasing timestamps.
func (f *fixture) clock(start time.Time) {
	current := start
	f.articles.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func (f *fixture) category(t *testing.T, name, slug string) *models.Category {
	t.Helper()
	category, err := f.categories.Create(f.ctx, f.admin, models.CreateCategoryRequest{Name: name, Slug: slug})
	require.NoError(t, err)
	return category
}

func (f *fixture) article(t *testing.T, slug string, categoryID uint, status models.ArticleStatus) *models.Article {
	t.Helper()
	article, err := f.articles.Create(f.ctx, f.editor, models.CreateArticleRequest{
		Title:      "Title " + slug,
		Slug:       slug,
		Summary:    "Summary " + slug,
		Content:    "<p>Body " + slug + "</p>",
		CategoryID: categoryID,
		Status:     status,
	})
	require.NoError(t, err)
	return article
}

func strPtr(s string) *string { return &s }
