// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"newsportal/config"
	"newsportal/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the portal schema.
// The database lives as long as its single connection, which is closed
// when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), config.GormConfig(false))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, model := range []interface{}{&models.User{}, &models.Category{}, &models.Article{}} {
		if err := db.AutoMigrate(model); err != nil {
			t.Fatalf("migrate %T: %v", model, err)
		}
	}
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t testing.TB, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Email: email, Password: string(hash), Name: "Test " + string(role), Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func CreateCategory(t testing.TB, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

// CreateArticle inserts an article directly, bypassing the service rules.
// A published article gets publishedAt when it is non-nil.
func CreateArticle(t testing.TB, db *gorm.DB, slug string, status models.ArticleStatus, categoryID, authorID uint, publishedAt *time.Time) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:       "Title " + slug,
		Slug:        slug,
		Summary:     "Summary " + slug,
		Content:     "<p>Content " + slug + "</p>",
		Status:      status,
		PublishedAt: publishedAt,
		CategoryID:  categoryID,
		AuthorID:    authorID,
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("create article: %v", err)
	}
	return article
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
