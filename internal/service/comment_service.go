package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/validator"
)

type commentService struct {
	comments  repository.CommentRepository
	articles  repository.ArticleRepository
	validator *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	articles repository.ArticleRepository,
	v *validator.Validator,
) CommentService {
	return &commentService{
		comments:  comments,
		articles:  articles,
		validator: v,
	}
}

// Create submits a comment on an article. Checks run in order: authors cannot
// comment on their own article, each user gets one comment per article, then
// the body is validated. The duplicate pre-check is advisory; the unique
// constraint on (article_id, author_id) is the authoritative guard under
// concurrency.
func (s *commentService) Create(ctx context.Context, actor *domain.User, articleID string, form domain.CommentForm) (*domain.Comment, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if article.AuthorID == actor.ID {
		metrics.ObserveComment(metrics.CommentResultOwnPost)
		return nil, domain.ErrOwnArticle
	}

	exists, err := s.comments.ExistsByArticleAndAuthor(ctx, articleID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing comment: %w", err)
	}
	if exists {
		metrics.ObserveComment(metrics.CommentResultDuplicate)
		return nil, domain.ErrDuplicateComment
	}

	if err := s.validator.ValidateComment(&form); err != nil {
		metrics.ObserveComment(metrics.CommentResultInvalid)
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Body:      form.Body,
		ArticleID: articleID,
		AuthorID:  actor.ID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, domain.ErrDuplicateComment) {
			metrics.ObserveComment(metrics.CommentResultDuplicate)
			return nil, err
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.ObserveComment(metrics.CommentResultCreated)
	logger.Info("comment created", "comment_id", comment.ID, "article_id", articleID, "author_id", actor.ID)

	return comment, nil
}
