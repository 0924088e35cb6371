package models

import (
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategorySummary is a category annotated with the number of articles
// matched by the listing (published only on public listings).
type CategorySummary struct {
	Category
	ArticleCount int64 `json:"article_count"`
}
