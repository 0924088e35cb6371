package repositories

import (
	"context"
	"testing"
	"time"

	"newsportal/models"
	"newsportal/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     ArticleRepository
	ctx      context.Context
	author   *models.User
	category *models.Category
	base     time.Time
}

func (s *ArticleRepositoryTestSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.repo = NewArticleRepository(s.db)
	s.ctx = context.Background()
	s.author = testutil.CreateUser(s.T(), s.db, "editor@example.com", models.RoleEditor)
	s.category = testutil.CreateCategory(s.T(), s.db, "Sports", "sports")
	s.base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ArticleRepositoryTestSuite) publish(slug string, offset time.Duration) *models.Article {
	return testutil.CreateArticle(s.T(), s.db, slug, models.StatusPublished, s.category.ID, s.author.ID, testutil.TimePtr(s.base.Add(offset)))
}

func slugs(articles []models.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Slug)
	}
	return out
}

func (s *ArticleRepositoryTestSuite) TestListOrdersByPublishedAtThenID() {
	s.publish("oldest", 0)
	tieA := s.publish("tie-a", time.Hour)
	tieB := s.publish("tie-b", time.Hour)
	s.publish("newest", 2*time.Hour)
	testutil.CreateArticle(s.T(), s.db, "draft", models.StatusDraft, s.category.ID, s.author.ID, nil)

	published := models.StatusPublished
	articles, err := s.repo.List(s.ctx, ArticleQuery{Status: &published, Limit: 10})
	s.Require().NoError(err)

	s.Require().Greater(tieB.ID, tieA.ID)
	s.Equal([]string{"newest", "tie-b", "tie-a", "oldest"}, slugs(articles))
	s.Require().NotNil(articles[0].Category)
	s.Equal("sports", articles[0].Category.Slug)
	s.Require().NotNil(articles[0].Author)
	s.Equal("Test EDITOR", articles[0].Author.Name)
	s.Empty(articles[0].Author.Email)
}

func (s *ArticleRepositoryTestSuite) TestListCursorIsInclusiveAcrossTies() {
	s.publish("oldest", 0)
	tieA := s.publish("tie-a", time.Hour)
	s.publish("tie-b", time.Hour)
	s.publish("newest", 2*time.Hour)

	published := models.StatusPublished
	articles, err := s.repo.List(s.ctx, ArticleQuery{Status: &published, Cursor: &tieA.ID, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]string{"tie-a", "oldest"}, slugs(articles))
}

func (s *ArticleRepositoryTestSuite) TestListRejectsUnknownCursor() {
	s.publish("only", 0)
	draft := testutil.CreateArticle(s.T(), s.db, "draft", models.StatusDraft, s.category.ID, s.author.ID, nil)

	missing := uint(9999)
	_, err := s.repo.List(s.ctx, ArticleQuery{Cursor: &missing, Limit: 10})
	s.ErrorIs(err, ErrInvalidCursor)

	// A draft has no publication time to anchor on.
	_, err = s.repo.List(s.ctx, ArticleQuery{Cursor: &draft.ID, Limit: 10})
	s.ErrorIs(err, ErrInvalidCursor)
}

func (s *ArticleRepositoryTestSuite) TestListByCreatedAtIncludesDrafts() {
	s.publish("published", 0)
	testutil.CreateArticle(s.T(), s.db, "draft", models.StatusDraft, s.category.ID, s.author.ID, nil)

	articles, err := s.repo.List(s.ctx, ArticleQuery{Order: OrderByCreatedAt, Limit: 10})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"published", "draft"}, slugs(articles))

	draft := models.StatusDraft
	articles, err = s.repo.List(s.ctx, ArticleQuery{Status: &draft, Order: OrderByCreatedAt, Limit: 10})
	s.Require().NoError(err)
	s.Equal([]string{"draft"}, slugs(articles))
}

func (s *ArticleRepositoryTestSuite) TestListFiltersCategoryAndExclusion() {
	other := testutil.CreateCategory(s.T(), s.db, "Politics", "politics")
	first := s.publish("first", 0)
	s.publish("second", time.Hour)
	testutil.CreateArticle(s.T(), s.db, "elsewhere", models.StatusPublished, other.ID, s.author.ID, testutil.TimePtr(s.base))

	published := models.StatusPublished
	articles, err := s.repo.List(s.ctx, ArticleQuery{
		Status:     &published,
		CategoryID: &s.category.ID,
		ExcludeID:  &first.ID,
		Limit:      10,
	})
	s.Require().NoError(err)
	s.Equal([]string{"second"}, slugs(articles))
}

func (s *ArticleRepositoryTestSuite) TestListSearchIsCaseInsensitiveAndLiteral() {
	a := s.publish("markets", 0)
	s.Require().NoError(s.db.Model(a).Update("title", "Stock Markets Reach 100% High").Error)
	b := s.publish("summary-match", time.Hour)
	s.Require().NoError(s.db.Model(b).Update("summary", "Markets rallied today").Error)
	s.publish("unrelated", 2*time.Hour)

	published := models.StatusPublished
	articles, err := s.repo.List(s.ctx, ArticleQuery{Status: &published, Search: "MARKETS", Limit: 10})
	s.Require().NoError(err)
	s.Equal([]string{"summary-match", "markets"}, slugs(articles))

	articles, err = s.repo.List(s.ctx, ArticleQuery{Status: &published, Search: "100%", Limit: 10})
	s.Require().NoError(err)
	s.Equal([]string{"markets"}, slugs(articles))

	articles, err = s.repo.List(s.ctx, ArticleQuery{Status: &published, Search: "_", Limit: 10})
	s.Require().NoError(err)
	s.Empty(articles)
}

func (s *ArticleRepositoryTestSuite) TestViewPublishedBySlugIncrements() {
	s.publish("story", 0)

	article, err := s.repo.ViewPublishedBySlug(s.ctx, "story")
	s.Require().NoError(err)
	s.Equal(int64(1), article.Views)

	article, err = s.repo.ViewPublishedBySlug(s.ctx, "story")
	s.Require().NoError(err)
	s.Equal(int64(2), article.Views)
	s.NotNil(article.Category)
}

func (s *ArticleRepositoryTestSuite) TestViewPublishedBySlugSkipsDrafts() {
	draft := testutil.CreateArticle(s.T(), s.db, "draft", models.StatusDraft, s.category.ID, s.author.ID, nil)

	_, err := s.repo.ViewPublishedBySlug(s.ctx, "draft")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	reloaded, err := s.repo.GetByID(s.ctx, draft.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), reloaded.Views)

	_, err = s.repo.ViewPublishedBySlug(s.ctx, "missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ArticleRepositoryTestSuite) TestUpdateAndDelete() {
	article := s.publish("story", 0)

	s.Require().NoError(s.repo.Update(s.ctx, article.ID, map[string]interface{}{"title": "New title"}))
	reloaded, err := s.repo.GetByID(s.ctx, article.ID)
	s.Require().NoError(err)
	s.Equal("New title", reloaded.Title)

	s.Require().NoError(s.repo.Delete(s.ctx, article.ID))
	_, err = s.repo.GetByID(s.ctx, article.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestArticleRepository(t *testing.T) {
	suite.Run(t, new(ArticleRepositoryTestSuite))
}
