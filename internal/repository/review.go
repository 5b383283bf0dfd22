// internal/repository/review.go
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/garasilabs/maganghub/internal/model"
)

type ReviewRepositoryIface interface {
	Create(ctx context.Context, review *model.Review) error
	FindByCompany(ctx context.Context, companyID int64) ([]*model.Review, error)
	FindAll(ctx context.Context) ([]*model.Review, error)
}

// ReviewRepository is append-only: reviews are never edited or deleted.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[int64]*model.Review
	seq     *idSequence
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		reviews: make(map[int64]*model.Review),
		seq:     newIDSequence(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == 0 {
		review.ID = r.seq.Reserve()
	} else {
		r.seq.Observe(review.ID)
	}
	cloned := *review
	r.reviews[review.ID] = &cloned
	return nil
}

func (r *ReviewRepository) FindByCompany(ctx context.Context, companyID int64) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reviews []*model.Review
	for _, review := range r.reviews {
		if review.CompanyID == companyID {
			cloned := *review
			reviews = append(reviews, &cloned)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*model.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		cloned := *review
		reviews = append(reviews, &cloned)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}
