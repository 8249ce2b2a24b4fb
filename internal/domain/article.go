package domain

import (
	"strings"
	"time"
)

// SnippetWords is the number of leading words kept in an article preview.
const SnippetWords = 5

// Article represents an authored article. Articles are listed newest first
// and may only be mutated by their author.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snippet returns a preview of the article body: the first five
// whitespace-separated words rejoined by single spaces, with a trailing
// ellipsis appended unconditionally. An empty body yields "...".
func (a *Article) Snippet() string {
	words := strings.Fields(a.Body)
	if len(words) > SnippetWords {
		words = words[:SnippetWords]
	}
	return strings.Join(words, " ") + "..."
}
