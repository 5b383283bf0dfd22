// internal/service/article.go
package service

import (
	"context"

	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// ArticleService reads the seeded resource-center content.
type ArticleService struct {
	repo repository.ArticleRepositoryIface
}

func NewArticleService(repo repository.ArticleRepositoryIface) *ArticleService {
	return &ArticleService{repo: repo}
}

// List returns the articles for a category filter. An empty or "ALL" filter
// returns everything; otherwise articles of the category plus the GENERAL
// ones, which show up under every filter.
func (s *ArticleService) List(ctx context.Context, category string) ([]*model.Article, error) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" || category == "ALL" {
		return articles, nil
	}

	filtered := make([]*model.Article, 0, len(articles))
	for _, article := range articles {
		if string(article.Category) == category || article.Category == model.CategoryGeneral {
			filtered = append(filtered, article)
		}
	}
	return filtered, nil
}

// Get returns one article by id.
func (s *ArticleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	return s.repo.FindByID(ctx, id)
}
