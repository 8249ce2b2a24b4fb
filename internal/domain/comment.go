package domain

import "time"

// Comment represents a single authored reply to an article. At most one
// comment may exist per (article, author) pair, and authors may not comment
// on their own articles.
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	ArticleID string    `json:"article_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
