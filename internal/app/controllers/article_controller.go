package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/models/dto"
	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// ArticleController handles article routes
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// ListArticles returns every article
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} models.Article
// @Failure 404 {object} dto.MessageResponse "No articles found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/listArticles [get]
func (ac *ArticleController) ListArticles(c *gin.Context) {
	articles, err := ac.articleService.ListArticles(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ViewArticle returns one article
// @Summary View article
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Article id"
// @Success 200 {object} models.Article
// @Failure 400 {object} dto.MessageResponse "Article id is required"
// @Failure 404 {object} dto.MessageResponse "No article found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/viewArticle [post]
func (ac *ArticleController) ViewArticle(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	article, err := ac.articleService.ViewArticle(c.Request.Context(), req.ID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// AddArticle publishes an article
// @Summary Add article
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ArticleRequest true "Article"
// @Success 201 {object} dto.ArticleEnvelope
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/addArticle [post]
func (ac *ArticleController) AddArticle(c *gin.Context) {
	var req dto.ArticleRequest
	if !bindBody(c, &req) {
		return
	}

	article, err := ac.articleService.AddArticle(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error adding article")
		return
	}
	c.JSON(http.StatusCreated, dto.ArticleEnvelope{Message: "Article added successfully", Article: article})
}

// UpdateArticle edits an article, keeping stored values for omitted optional fields
// @Summary Update article
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.ArticleRequest true "Article"
// @Success 200 {object} dto.ArticleEnvelope
// @Failure 400 {object} dto.MessageResponse "All required fields must be provided"
// @Failure 404 {object} dto.MessageResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/updateArticle [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	var req dto.ArticleRequest
	if !bindBody(c, &req) {
		return
	}

	article, err := ac.articleService.UpdateArticle(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error updating article")
		return
	}
	c.JSON(http.StatusOK, dto.ArticleEnvelope{Message: "Article updated successfully", Article: article})
}

// LikeArticle adds one like
// @Summary Like article
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Article id"
// @Success 200 {object} dto.ArticleEnvelope
// @Failure 404 {object} dto.MessageResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/likeArticle [put]
func (ac *ArticleController) LikeArticle(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	article, err := ac.articleService.LikeArticle(c.Request.Context(), req.ID)
	if err != nil {
		middleware.HandleAPIError(c, err, "Error liking article")
		return
	}
	c.JSON(http.StatusOK, dto.ArticleEnvelope{Message: "Article liked", Article: article})
}

// DeleteArticle removes an article by id
// @Summary Delete article
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.IDRequest true "Article id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Article id is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/deleteArticle [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	var req dto.IDRequest
	if !bindBody(c, &req) {
		return
	}

	if err := ac.articleService.DeleteArticle(c.Request.Context(), req.ID); err != nil {
		middleware.HandleAPIError(c, err, "Error deleting article")
		return
	}
	deleted(c, "Article deleted successfully")
}
