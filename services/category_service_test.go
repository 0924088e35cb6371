package services

import (
	"testing"

	"newsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateConflicts(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Sports", "sports")

	_, err := f.categories.Create(f.ctx, f.admin, models.CreateCategoryRequest{Name: "Sports", Slug: "sports-2"})
	assert.IsType(t, models.ErrorConflict{}, err)

	_, err = f.categories.Create(f.ctx, f.admin, models.CreateCategoryRequest{Name: "Athletics", Slug: "sports"})
	assert.IsType(t, models.ErrorConflict{}, err)

	var count int64
	require.NoError(t, f.db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCategoryCreateValidatesSlug(t *testing.T) {
	f := newFixture(t)

	_, err := f.categories.Create(f.ctx, f.admin, models.CreateCategoryRequest{Name: "Sports", Slug: "Sports News"})
	var badRequest models.ErrorBadRequest
	require.ErrorAs(t, err, &badRequest)
	assert.NotNil(t, badRequest.Cause)
}

func TestCategoryAuthorization(t *testing.T) {
	f := newFixture(t)
	req := models.CreateCategoryRequest{Name: "Sports", Slug: "sports"}

	_, err := f.categories.Create(f.ctx, models.Identity{}, req)
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = f.categories.Create(f.ctx, f.reader, req)
	assert.IsType(t, models.ErrorForbidden{}, err)

	_, err = f.categories.ListAdmin(f.ctx, f.reader)
	assert.IsType(t, models.ErrorForbidden{}, err)

	_, err = f.categories.Create(f.ctx, f.editor, req)
	assert.NoError(t, err)
}

func TestCategoryPartialUpdate(t *testing.T) {
	f := newFixture(t)
	sports := f.category(t, "Sports", "sports")
	f.category(t, "Business", "business")

	updated, err := f.categories.Update(f.ctx, f.editor, sports.ID, models.UpdateCategoryRequest{Description: strPtr("All the games")})
	require.NoError(t, err)
	assert.Equal(t, "Sports", updated.Name)
	assert.Equal(t, "sports", updated.Slug)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "All the games", *updated.Description)

	updated, err = f.categories.Update(f.ctx, f.editor, sports.ID, models.UpdateCategoryRequest{Name: strPtr("Sport"), Slug: strPtr("sport")})
	require.NoError(t, err)
	assert.Equal(t, "Sport", updated.Name)
	assert.Equal(t, "sport", updated.Slug)

	// Keeping its own slug is not a conflict.
	_, err = f.categories.Update(f.ctx, f.editor, sports.ID, models.UpdateCategoryRequest{Slug: strPtr("sport")})
	assert.NoError(t, err)

	_, err = f.categories.Update(f.ctx, f.editor, sports.ID, models.UpdateCategoryRequest{Slug: strPtr("business")})
	assert.IsType(t, models.ErrorConflict{}, err)

	_, err = f.categories.Update(f.ctx, f.editor, 9999, models.UpdateCategoryRequest{Name: strPtr("Ghost")})
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestCategoryDeleteRequiresNoArticles(t *testing.T) {
	f := newFixture(t)
	sports := f.category(t, "Sports", "sports")
	other := f.category(t, "Other", "other")
	story := f.article(t, "draft-story", sports.ID, models.StatusDraft)

	err := f.categories.Delete(f.ctx, f.admin, sports.ID)
	assert.IsType(t, models.ErrorPreconditionFailed{}, err)

	_, err = f.articles.Update(f.ctx, f.editor, story.ID, models.UpdateArticleRequest{CategoryID: &other.ID})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(f.ctx, f.admin, sports.ID))

	err = f.categories.Delete(f.ctx, f.admin, sports.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestCategoryPublicCountsOnlyPublished(t *testing.T) {
	f := newFixture(t)
	sports := f.category(t, "Sports", "sports")
	f.article(t, "published-story", sports.ID, models.StatusPublished)
	f.article(t, "draft-story", sports.ID, models.StatusDraft)

	public, err := f.categories.ListPublic(f.ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, int64(1), public[0].ArticleCount)

	admin, err := f.categories.ListAdmin(f.ctx, f.editor)
	require.NoError(t, err)
	require.Len(t, admin, 1)
	assert.Equal(t, int64(2), admin[0].ArticleCount)

	summary, err := f.categories.GetBySlug(f.ctx, "sports")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ArticleCount)

	_, err = f.categories.GetBySlug(f.ctx, "missing")
	assert.IsType(t, models.ErrorNotFound{}, err)

	_, err = f.categories.GetBySlug(f.ctx, "")
	assert.IsType(t, models.ErrorBadRequest{}, err)
}
