package repository

import (
	"context"
	"time"

	"blog-service/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName string, dateOfBirth *time.Time) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	Update(ctx context.Context, id, title, body string) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	StreamAll(ctx context.Context, callback func(domain.Article) error) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ExistsByArticleAndAuthor(ctx context.Context, articleID, authorID string) (bool, error)
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	CountByArticle(ctx context.Context, articleID string) (int, error)
}
