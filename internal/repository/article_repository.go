package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, title, body, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, article.ID, article.Title, article.Body, article.AuthorID,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID returns the article with the given ID, or domain.ErrNotFound.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, body, author_id, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("query article: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query article: %w", err)
	}
	return &a, nil
}

// List returns all articles, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, body, author_id, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Update sets the article's title and body and refreshes updated_at.
func (r *PostgresArticleRepository) Update(ctx context.Context, id, title, body string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, body = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, body, author_id, created_at, updated_at
	`, id, title, body,
	).Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update article: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &a, nil
}

// Delete removes an article and, via cascade, its comments.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete article: %w", domain.ErrNotFound)
	}
	return nil
}

// CountByAuthor returns the number of articles owned by the given author.
func (r *PostgresArticleRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE author_id = $1`, authorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// StreamAll streams all articles for export with O(1) memory, newest first.
func (r *PostgresArticleRepository) StreamAll(ctx context.Context, callback func(domain.Article) error) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, body, author_id, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return fmt.Errorf("scan article: %w", err)
		}
		if err := callback(a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return rows.Err()
}
