package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
)

type Article struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	Title         string        `json:"title" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Summary       string        `json:"summary" gorm:"type:text;not null"`
	Content       string        `json:"content" gorm:"type:text;not null"`
	FeaturedImage *string       `json:"featured_image"`
	Status        ArticleStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Views         int64         `json:"views" gorm:"not null;default:0"`
	PublishedAt   *time.Time    `json:"published_at" gorm:"index"`
	CategoryID    uint          `json:"category_id" gorm:"not null;index"`
	Category      *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID      uint          `json:"author_id" gorm:"not null;index"`
	Author        *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt     time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsPublished reports whether the article is publicly visible.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
