package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"blog-service/internal/cache"
	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/validator"
)

type articleService struct {
	articles  repository.ArticleRepository
	comments  repository.CommentRepository
	cache     *cache.ArticleCache
	validator *validator.Validator
	group     singleflight.Group
}

// NewArticleService creates a new ArticleService. The cache is optional; a
// nil cache means every list goes to the database.
func NewArticleService(
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
	articleCache *cache.ArticleCache,
	v *validator.Validator,
) ArticleService {
	return &articleService{
		articles:  articles,
		comments:  comments,
		cache:     articleCache,
		validator: v,
	}
}

// List returns all articles ordered newest first. The listing is served from
// cache when possible; concurrent misses collapse into a single database
// query via singleflight.
func (s *articleService) List(ctx context.Context) ([]domain.Article, error) {
	if s.cache == nil {
		return s.articles.List(ctx)
	}

	cached, err := s.cache.GetList(ctx)
	if err != nil {
		logger.Warn("article cache read failed", "error", err)
	}
	if cached != nil {
		metrics.ObserveCacheLookup(true)
		return cached, nil
	}
	metrics.ObserveCacheLookup(false)

	v, err, _ := s.group.Do("articles:list", func() (interface{}, error) {
		list, err := s.articles.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetList(ctx, list); err != nil {
			logger.Warn("article cache write failed", "error", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return v.([]domain.Article), nil
}

// Get returns an article with its comments ordered oldest first.
func (s *articleService) Get(ctx context.Context, id string) (*ArticleView, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &ArticleView{Article: article, Comments: comments}, nil
}

// Create validates the form and stores a new article authored by the actor.
func (s *articleService) Create(ctx context.Context, actor *domain.User, form domain.ArticleForm) (*domain.Article, error) {
	if err := s.validator.ValidateArticle(&form); err != nil {
		metrics.ObserveArticleWrite("create", "invalid")
		return nil, err
	}

	article := &domain.Article{
		ID:       uuid.New().String(),
		Title:    form.Title,
		Body:     form.Body,
		AuthorID: actor.ID,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		metrics.ObserveArticleWrite("create", "error")
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.invalidate(ctx)
	metrics.ObserveArticleWrite("create", "success")
	logger.Info("article created", "article_id", article.ID, "author_id", actor.ID)

	return article, nil
}

// Update applies edits to an article. Only the author may edit.
func (s *articleService) Update(ctx context.Context, actor *domain.User, id string, form domain.ArticleForm) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanMutateArticle(actor, article) {
		metrics.ObserveArticleWrite("update", "forbidden")
		return nil, domain.ErrForbidden
	}

	if err := s.validator.ValidateArticle(&form); err != nil {
		metrics.ObserveArticleWrite("update", "invalid")
		return nil, err
	}

	updated, err := s.articles.Update(ctx, id, form.Title, form.Body)
	if err != nil {
		metrics.ObserveArticleWrite("update", "error")
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.invalidate(ctx)
	metrics.ObserveArticleWrite("update", "success")

	return updated, nil
}

// Delete removes an article. Only the author may delete; comments go with it
// via the database cascade.
func (s *articleService) Delete(ctx context.Context, actor *domain.User, id string) error {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutateArticle(actor, article) {
		metrics.ObserveArticleWrite("delete", "forbidden")
		return domain.ErrForbidden
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		metrics.ObserveArticleWrite("delete", "error")
		return fmt.Errorf("delete article: %w", err)
	}

	s.invalidate(ctx)
	metrics.ObserveArticleWrite("delete", "success")
	logger.Info("article deleted", "article_id", id, "actor_id", actor.ID)

	return nil
}

func (s *articleService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("article cache invalidation failed", "error", err)
	}
}
