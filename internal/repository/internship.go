// internal/repository/internship.go
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
)

type InternshipRepositoryIface interface {
	Create(ctx context.Context, internship *model.Internship) error
	FindByID(ctx context.Context, id int64) (*model.Internship, error)
	FindAll(ctx context.Context) ([]*model.Internship, error)
	FindByCompany(ctx context.Context, companyID int64) ([]*model.Internship, error)
	Delete(ctx context.Context, id int64) error
}

type InternshipRepository struct {
	mu          sync.RWMutex
	internships map[int64]*model.Internship
	seq         *idSequence
}

func NewInternshipRepository() *InternshipRepository {
	return &InternshipRepository{
		internships: make(map[int64]*model.Internship),
		seq:         newIDSequence(),
	}
}

func (r *InternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if internship.ID == 0 {
		internship.ID = r.seq.Reserve()
	} else {
		r.seq.Observe(internship.ID)
	}
	r.internships[internship.ID] = cloneInternship(internship)
	return nil
}

func (r *InternshipRepository) FindByID(ctx context.Context, id int64) (*model.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	internship, ok := r.internships[id]
	if !ok {
		return nil, domain.ErrInternshipNotFound
	}
	return cloneInternship(internship), nil
}

func (r *InternshipRepository) FindAll(ctx context.Context) ([]*model.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	internships := make([]*model.Internship, 0, len(r.internships))
	for _, internship := range r.internships {
		internships = append(internships, cloneInternship(internship))
	}
	sort.Slice(internships, func(i, j int) bool { return internships[i].ID < internships[j].ID })
	return internships, nil
}

func (r *InternshipRepository) FindByCompany(ctx context.Context, companyID int64) ([]*model.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var internships []*model.Internship
	for _, internship := range r.internships {
		if internship.CompanyID == companyID {
			internships = append(internships, cloneInternship(internship))
		}
	}
	sort.Slice(internships, func(i, j int) bool { return internships[i].ID < internships[j].ID })
	return internships, nil
}

func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.internships[id]; !ok {
		return domain.ErrInternshipNotFound
	}
	delete(r.internships, id)
	return nil
}

func cloneInternship(i *model.Internship) *model.Internship {
	c := *i
	c.Requirements = append([]string(nil), i.Requirements...)
	return &c
}
