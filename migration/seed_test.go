package migration

import (
	"context"
	"testing"

	"newsportal/models"
	"newsportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	result, err := Seed(ctx, db, "admin@newsportal.com", "admin123")
	require.NoError(t, err)
	assert.True(t, result.AdminCreated)
	assert.Equal(t, len(seedCategories), result.Categories)
	assert.Equal(t, len(seedArticles), result.Articles)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@newsportal.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	var article models.Article
	require.NoError(t, db.Where("slug = ?", "stock-markets-reach-all-time-high").First(&article).Error)
	assert.Equal(t, models.StatusPublished, article.Status)
	assert.NotNil(t, article.PublishedAt)
	assert.Equal(t, admin.ID, article.AuthorID)

	again, err := Seed(ctx, db, "admin@newsportal.com", "admin123")
	require.NoError(t, err)
	assert.False(t, again.AdminCreated)
	assert.Zero(t, again.Categories)
	assert.Zero(t, again.Articles)

	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedArticles)), count)
}
