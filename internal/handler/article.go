// internal/handler/article.go
package handler

import (
	"net/http"

	"github.com/garasilabs/maganghub/internal/service"
)

type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListHandler returns the resource-center articles, optionally narrowed to a
// category; GENERAL articles show up under every filter.
func (h *ArticleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, articles)
}

func (h *ArticleHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articleService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, article)
}
