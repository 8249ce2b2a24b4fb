package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
)

const foreignKeyViolation = "23503"

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a new comment. The UNIQUE(article_id, author_id) constraint
// is the authoritative duplicate guard: a violation maps to
// domain.ErrDuplicateComment even when two submissions race past the
// application-level pre-check. A vanished article or author maps to
// domain.ErrNotFound.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (id, body, article_id, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, comment.ID, comment.Body, comment.ArticleID, comment.AuthorID,
	).Scan(&comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return fmt.Errorf("insert comment: %w", domain.ErrDuplicateComment)
			case foreignKeyViolation:
				return fmt.Errorf("insert comment: %w", domain.ErrNotFound)
			}
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ExistsByArticleAndAuthor reports whether the author already commented on
// the article.
func (r *PostgresCommentRepository) ExistsByArticleAndAuthor(ctx context.Context, articleID, authorID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM comments WHERE article_id = $1 AND author_id = $2)
	`, articleID, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query comment existence: %w", err)
	}
	return exists, nil
}

// ListByArticle returns the article's comments, oldest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, body, article_id, author_id, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.ArticleID, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CountByArticle returns the number of comments on the article.
func (r *PostgresCommentRepository) CountByArticle(ctx context.Context, articleID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
