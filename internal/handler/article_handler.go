package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/flash"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// ArticleHandler serves the article listing, detail, and author mutations.
type ArticleHandler struct {
	articles service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type articleListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Snippet   string    `json:"snippet"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /articles. Each entry carries the body snippet, not the
// full body.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	items := make([]articleListItem, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		items = append(items, articleListItem{
			ID:        a.ID,
			Title:     a.Title,
			Snippet:   a.Snippet(),
			AuthorID:  a.AuthorID,
			CreatedAt: a.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"articles": items})
}

// Get handles GET /articles/:id. The response includes the article, its
// comments, and any pending flash messages from a redirected comment attempt.
func (h *ArticleHandler) Get(c *gin.Context) {
	view, err := h.articles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"article":  view.Article,
		"comments": view.Comments,
	}
	if messages := flash.Take(c); len(messages) > 0 {
		resp["messages"] = messages
	}

	c.JSON(http.StatusOK, resp)
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var form domain.ArticleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articles.Create(c.Request.Context(), actor, form)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /articles/:id. Author only.
func (h *ArticleHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var form domain.ArticleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articles.Update(c.Request.Context(), actor, c.Param("id"), form)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /articles/:id. Author only.
func (h *ArticleHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.articles.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
