package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
)

func commentRouter(svc *fakeCommentService, actor *domain.User) *gin.Engine {
	router := gin.New()
	router.Use(actorInjector(actor))
	router.POST("/articles/:id/comments", NewCommentHandler(svc).Create)
	return router
}

func postComment(t *testing.T, router *gin.Engine, articleID, body string) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(domain.CommentForm{Body: body})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles/"+articleID+"/comments", bytes.NewReader(payload))
	router.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_Create(t *testing.T) {
	actor := &domain.User{ID: "u2", Username: "reader", Active: true}

	t.Run("success redirects to the article", func(t *testing.T) {
		svc := &fakeCommentService{
			createFn: func(_ context.Context, a *domain.User, articleID string, form domain.CommentForm) (*domain.Comment, error) {
				return &domain.Comment{ID: "c1", Body: form.Body, ArticleID: articleID, AuthorID: a.ID}, nil
			},
		}

		w := postComment(t, commentRouter(svc, actor), "a1", "Nice post")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/articles/a1", w.Header().Get("Location"))
		assert.Empty(t, flashCookie(w), "no flash on success")
	})

	t.Run("own article sets flash and redirects", func(t *testing.T) {
		svc := &fakeCommentService{
			createFn: func(context.Context, *domain.User, string, domain.CommentForm) (*domain.Comment, error) {
				return nil, domain.ErrOwnArticle
			},
		}

		w := postComment(t, commentRouter(svc, actor), "a1", "Self praise")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/articles/a1", w.Header().Get("Location"))
		assert.NotEmpty(t, flashCookie(w))
	})

	t.Run("duplicate sets flash and redirects", func(t *testing.T) {
		svc := &fakeCommentService{
			createFn: func(context.Context, *domain.User, string, domain.CommentForm) (*domain.Comment, error) {
				return nil, domain.ErrDuplicateComment
			},
		}

		w := postComment(t, commentRouter(svc, actor), "a1", "Again")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/articles/a1", w.Header().Get("Location"))
		assert.NotEmpty(t, flashCookie(w))
	})

	t.Run("validation failure returns field errors", func(t *testing.T) {
		svc := &fakeCommentService{
			createFn: func(context.Context, *domain.User, string, domain.CommentForm) (*domain.Comment, error) {
				return nil, validation.Errors{
					"body": validation.NewError("required", domain.MsgFieldRequired),
				}
			},
		}

		w := postComment(t, commentRouter(svc, actor), "a1", "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.MsgFieldRequired, resp.Errors["body"])
	})

	t.Run("unknown article returns 404", func(t *testing.T) {
		svc := &fakeCommentService{
			createFn: func(context.Context, *domain.User, string, domain.CommentForm) (*domain.Comment, error) {
				return nil, domain.ErrNotFound
			},
		}

		w := postComment(t, commentRouter(svc, actor), "missing", "Hi")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func flashCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" {
			return c.Value
		}
	}
	return ""
}
