package service

import (
	"context"
	"sort"
	"time"

	"blog-service/internal/domain"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	cp := *user
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id, firstName, lastName string, dob *time.Time) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.DateOfBirth = dob
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeArticleRepo struct {
	articles map[string]*domain.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]*domain.Article)}
}

func (r *fakeArticleRepo) Create(_ context.Context, article *domain.Article) error {
	cp := *article
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.articles[article.ID] = &cp
	article.CreatedAt = cp.CreatedAt
	article.UpdatedAt = cp.UpdatedAt
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	if a, ok := r.articles[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeArticleRepo) List(_ context.Context) ([]domain.Article, error) {
	out := make([]domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeArticleRepo) Update(_ context.Context, id, title, body string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Title = title
	a.Body = body
	a.UpdatedAt = time.Now()
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) CountByAuthor(_ context.Context, authorID string) (int, error) {
	n := 0
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeArticleRepo) StreamAll(ctx context.Context, callback func(domain.Article) error) error {
	list, _ := r.List(ctx)
	for _, a := range list {
		if err := callback(a); err != nil {
			return err
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	for _, c := range r.comments {
		if c.ArticleID == comment.ArticleID && c.AuthorID == comment.AuthorID {
			return domain.ErrDuplicateComment
		}
	}
	cp := *comment
	cp.CreatedAt = time.Now()
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) ExistsByArticleAndAuthor(_ context.Context, articleID, authorID string) (bool, error) {
	for _, c := range r.comments {
		if c.ArticleID == articleID && c.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) ListByArticle(_ context.Context, articleID string) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeCommentRepo) CountByArticle(_ context.Context, articleID string) (int, error) {
	list, _ := r.ListByArticle(context.Background(), articleID)
	return len(list), nil
}
