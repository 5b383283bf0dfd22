// internal/repository/article.go
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
)

type ArticleRepositoryIface interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	FindAll(ctx context.Context) ([]*model.Article, error)
}

// ArticleRepository holds the seeded resource-center content. Articles are
// written once at startup and read-only afterwards.
type ArticleRepository struct {
	mu       sync.RWMutex
	articles map[int64]*model.Article
	seq      *idSequence
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{
		articles: make(map[int64]*model.Article),
		seq:      newIDSequence(),
	}
}

func (r *ArticleRepository) Create(ctx context.Context, article *model.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID == 0 {
		article.ID = r.seq.Reserve()
	} else {
		r.seq.Observe(article.ID)
	}
	cloned := *article
	r.articles[article.ID] = &cloned
	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	cloned := *article
	return &cloned, nil
}

func (r *ArticleRepository) FindAll(ctx context.Context) ([]*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articles := make([]*model.Article, 0, len(r.articles))
	for _, article := range r.articles {
		cloned := *article
		articles = append(articles, &cloned)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles, nil
}
