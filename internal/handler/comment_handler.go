package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/flash"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// CommentHandler serves comment submission.
type CommentHandler struct {
	comments service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create handles POST /articles/:id/comments. Business rule rejections carry
// a user-visible message in a flash cookie and redirect back to the article;
// the article and author always come from the route and session.
func (h *CommentHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	articleID := c.Param("id")

	var form domain.CommentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.comments.Create(c.Request.Context(), actor, articleID, form)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnArticle):
			flash.Add(c, domain.MsgCannotCommentOwnPost)
			c.Redirect(http.StatusFound, "/articles/"+articleID)
		case errors.Is(err, domain.ErrDuplicateComment):
			flash.Add(c, domain.MsgAlreadyCommented)
			c.Redirect(http.StatusFound, "/articles/"+articleID)
		default:
			writeError(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/articles/"+articleID)
}
