package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
	"blog-service/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	ctx := context.Background()
	users := repository.NewPostgresUserRepository(tdb.Pool)
	articles := repository.NewPostgresArticleRepository(tdb.Pool)
	comments := repository.NewPostgresCommentRepository(tdb.Pool)

	author := newTestUser("writer")
	reader := newTestUser("commenter")
	require.NoError(t, users.Create(ctx, author))
	require.NoError(t, users.Create(ctx, reader))

	article := &domain.Article{
		ID:       uuid.New().String(),
		Title:    "Commented",
		Body:     "Body",
		AuthorID: author.ID,
	}
	require.NoError(t, articles.Create(ctx, article))

	newComment := func(authorID, body string) *domain.Comment {
		return &domain.Comment{
			ID:        uuid.New().String(),
			Body:      body,
			ArticleID: article.ID,
			AuthorID:  authorID,
		}
	}

	t.Run("create and list", func(t *testing.T) {
		tdb.TruncateTables(t, "comments")

		require.NoError(t, comments.Create(ctx, newComment(reader.ID, "First!")))

		list, err := comments.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "First!", list[0].Body)
		assert.Equal(t, reader.ID, list[0].AuthorID)
	})

	t.Run("unique constraint holds the one-comment rule", func(t *testing.T) {
		tdb.TruncateTables(t, "comments")

		require.NoError(t, comments.Create(ctx, newComment(reader.ID, "First take")))

		err := comments.Create(ctx, newComment(reader.ID, "Second take"))
		assert.ErrorIs(t, err, domain.ErrDuplicateComment)

		n, err := comments.CountByArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("exists by article and author", func(t *testing.T) {
		tdb.TruncateTables(t, "comments")

		exists, err := comments.ExistsByArticleAndAuthor(ctx, article.ID, reader.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, comments.Create(ctx, newComment(reader.ID, "Here")))

		exists, err = comments.ExistsByArticleAndAuthor(ctx, article.ID, reader.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown article maps to not found", func(t *testing.T) {
		tdb.TruncateTables(t, "comments")

		c := newComment(reader.ID, "Orphan")
		c.ArticleID = uuid.New().String()
		err := comments.Create(ctx, c)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("comments go with the article", func(t *testing.T) {
		tdb.TruncateTables(t, "comments", "articles")

		doomed := &domain.Article{
			ID:       uuid.New().String(),
			Title:    "Doomed",
			Body:     "Body",
			AuthorID: author.ID,
		}
		require.NoError(t, articles.Create(ctx, doomed))
		require.NoError(t, comments.Create(ctx, &domain.Comment{
			ID:        uuid.New().String(),
			Body:      "On doomed",
			ArticleID: doomed.ID,
			AuthorID:  reader.ID,
		}))

		require.NoError(t, articles.Delete(ctx, doomed.ID))

		n, err := comments.CountByArticle(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
