package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Slug        string  `json:"slug" validate:"required,min=1,max=100,slug"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest carries a partial update: nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=100,slug"`
	Description *string `json:"description"`
}

type CreateArticleRequest struct {
	Title         string        `json:"title" validate:"required,min=1,max=255"`
	Slug          string        `json:"slug" validate:"required,min=1,max=255,slug"`
	Summary       string        `json:"summary" validate:"required,min=1"`
	Content       string        `json:"content" validate:"required,min=1"`
	FeaturedImage *string       `json:"featured_image" validate:"omitempty,url"`
	CategoryID    uint          `json:"category_id" validate:"required"`
	Status        ArticleStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

// UpdateArticleRequest carries a partial update: nil fields are left untouched.
type UpdateArticleRequest struct {
	Title         *string        `json:"title" validate:"omitempty,min=1,max=255"`
	Slug          *string        `json:"slug" validate:"omitempty,min=1,max=255,slug"`
	Summary       *string        `json:"summary" validate:"omitempty,min=1"`
	Content       *string        `json:"content" validate:"omitempty,min=1"`
	FeaturedImage *string        `json:"featured_image" validate:"omitempty,url"`
	CategoryID    *uint          `json:"category_id" validate:"omitempty,min=1"`
	Status        *ArticleStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

// PageParams drives the public cursor-paginated listings.
type PageParams struct {
	Limit  int   `form:"limit,default=10" validate:"min=1,max=50"`
	Cursor *uint `form:"cursor" validate:"omitempty,min=1"`
}

// AdminArticleListParams drives the admin article listing.
type AdminArticleListParams struct {
	Limit  int            `form:"limit,default=20" validate:"min=1,max=100"`
	Cursor *uint          `form:"cursor" validate:"omitempty,min=1"`
	Status *ArticleStatus `form:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

type RelatedParams struct {
	ArticleID  uint `form:"article_id" validate:"required"`
	CategoryID uint `form:"category_id" validate:"required"`
	Limit      int  `form:"limit,default=4" validate:"min=1,max=10"`
}

type SearchParams struct {
	Query string `form:"q" validate:"required,min=1"`
	Limit int    `form:"limit,default=10" validate:"min=1,max=50"`
}

// ArticlePage is one page of a cursor-paginated listing. A nil NextCursor
// marks the end of the stream.
type ArticlePage struct {
	Articles   []Article `json:"articles"`
	NextCursor *uint     `json:"next_cursor,omitempty"`
}

type CategoryArticlePage struct {
	ArticlePage
	Category Category `json:"category"`
}

type MediaUploadResponse struct {
	URL string `json:"url"`
}
