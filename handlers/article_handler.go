package handlers

import (
	"newsportal/helper"
	"newsportal/models"
	"newsportal/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) pageResponse(c *gin.Context, limit int, page *models.ArticlePage) gin.H {
	response := gin.H{
		"articles": page.Articles,
		"paging":   h.Helper.GeneratePaging(c, limit, page.NextCursor),
	}
	if page.NextCursor != nil {
		response["next_cursor"] = *page.NextCursor
	}
	return response
}

func (h *ArticleHandler) GetLatest(c *gin.Context) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	page, err := h.articleService.GetLatest(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", h.pageResponse(c, params.Limit, page))
}

func (h *ArticleHandler) GetByCategory(c *gin.Context) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	page, err := h.articleService.GetByCategory(c.Request.Context(), c.Param("slug"), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	response := h.pageResponse(c, params.Limit, &page.ArticlePage)
	response["category"] = page.Category
	h.Helper.SendSuccess(c, "Articles loaded", response)
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) GetRelated(c *gin.Context) {
	var params models.RelatedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	articles, err := h.articleService.GetRelated(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Related articles loaded", articles)
}

func (h *ArticleHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	articles, err := h.articleService.Search(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Search results loaded", articles)
}

func (h *ArticleHandler) GetAll(c *gin.Context) {
	var params models.AdminArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	page, err := h.articleService.GetAll(c.Request.Context(), identity(c), params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", h.pageResponse(c, params.Limit, page))
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), identity(c), id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), identity(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created successfully", article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body: "+err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), identity(c), id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated successfully", article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), identity(c), id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted successfully", gin.H{"success": true})
}
