package repositories

import (
	"context"
	"testing"
	"time"

	"newsportal/models"
	"newsportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryArticleCounts(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)
	sports := testutil.CreateCategory(t, db, "Sports", "sports")
	testutil.CreateCategory(t, db, "Business", "business")
	now := time.Now().UTC()
	testutil.CreateArticle(t, db, "match", models.StatusPublished, sports.ID, author.ID, &now)
	testutil.CreateArticle(t, db, "draft", models.StatusDraft, sports.ID, author.ID, nil)

	published := models.StatusPublished
	public, err := repo.ListWithArticleCounts(ctx, &published)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Business", public[0].Name)
	assert.Equal(t, int64(0), public[0].ArticleCount)
	assert.Equal(t, "Sports", public[1].Name)
	assert.Equal(t, int64(1), public[1].ArticleCount)

	all, err := repo.ListWithArticleCounts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all[1].ArticleCount)

	summary, err := repo.GetSummaryBySlug(ctx, "sports", &published)
	require.NoError(t, err)
	assert.Equal(t, sports.ID, summary.ID)
	assert.Equal(t, int64(1), summary.ArticleCount)

	_, err = repo.GetSummaryBySlug(ctx, "missing", &published)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := repo.CountArticles(ctx, sports.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCategoryFindByNameOrSlug(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	sports := testutil.CreateCategory(t, db, "Sports", "sports")

	found, err := repo.FindByNameOrSlug(ctx, "Sports", "other", 0)
	require.NoError(t, err)
	assert.Equal(t, sports.ID, found.ID)

	found, err = repo.FindByNameOrSlug(ctx, "Other", "sports", 0)
	require.NoError(t, err)
	assert.Equal(t, sports.ID, found.ID)

	_, err = repo.FindByNameOrSlug(ctx, "Sports", "sports", sports.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
