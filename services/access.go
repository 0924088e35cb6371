package services

import (
	"newsportal/models"

	"gopkg.in/go-playground/validator.v9"
)

// authorize gates admin operations: the caller must be authenticated and
// hold the ADMIN or EDITOR role.
func authorize(actor models.Identity) error {
	if actor.ID == 0 {
		return models.ErrorUnauthorized{Message: "Authentication required"}
	}
	if !actor.Role.CanManageContent() {
		return models.ErrorForbidden{Message: "Insufficient permissions"}
	}
	return nil
}

func validateInput(validate *validator.Validate, input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return models.ErrorBadRequest{Message: "Invalid input", Cause: err}
	}
	return nil
}

func requireSlug(slug string) error {
	if slug == "" {
		return models.ErrorBadRequest{Message: "Slug is required"}
	}
	return nil
}

// paginate trims a limit+1 fetch to limit rows. The extra row, when present,
// opens the next page and its id becomes the cursor.
func paginate(articles []models.Article, limit int) models.ArticlePage {
	if articles == nil {
		articles = []models.Article{}
	}
	if len(articles) <= limit {
		return models.ArticlePage{Articles: articles}
	}
	next := articles[limit].ID
	return models.ArticlePage{Articles: articles[:limit], NextCursor: &next}
}
