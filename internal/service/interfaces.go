// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"io"
	"time"

	"blog-service/internal/domain"
)

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, form domain.RegistrationForm) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// AccountService handles profile reads and updates and account removal.
type AccountService interface {
	Profile(ctx context.Context, userID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID string, form domain.ProfileForm) (*domain.User, error)
	RemoveUser(ctx context.Context, actor *domain.User, userID string) error
}

// ArticleService handles article reads and author-gated mutations.
type ArticleService interface {
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*ArticleView, error)
	Create(ctx context.Context, actor *domain.User, form domain.ArticleForm) (*domain.Article, error)
	Update(ctx context.Context, actor *domain.User, id string, form domain.ArticleForm) (*domain.Article, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}

// CommentService handles comment submission.
type CommentService interface {
	Create(ctx context.Context, actor *domain.User, articleID string, form domain.CommentForm) (*domain.Comment, error)
}

// ExportService streams the full article set in a serialized format.
type ExportService interface {
	StreamArticles(ctx context.Context, format string, w io.Writer) error
}

// ProfileView is a user profile together with its derived date fields.
type ProfileView struct {
	User       *domain.User `json:"user"`
	Age        *int         `json:"age"`
	IsBirthday bool         `json:"is_birthday"`
}

// ArticleView is an article together with its comments.
type ArticleView struct {
	Article  *domain.Article  `json:"article"`
	Comments []domain.Comment `json:"comments"`
}

// Clock supplies the current time. Extracted so date-derived fields are
// testable with a fixed date.
type Clock func() time.Time

// SystemClock returns the current time.
func SystemClock() time.Time {
	return time.Now()
}
