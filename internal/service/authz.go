package service

import "blog-service/internal/domain"

// CanMutateArticle reports whether the actor may edit or delete the article.
// Only the article's author may mutate it, regardless of staff or superuser
// status.
func CanMutateArticle(actor *domain.User, article *domain.Article) bool {
	if actor == nil || article == nil {
		return false
	}
	return actor.ID == article.AuthorID
}
