// internal/repository/application.go
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
)

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id int64) (*model.Application, error)
	FindAll(ctx context.Context) ([]*model.Application, error)
	FindByStudent(ctx context.Context, studentID int64) ([]*model.Application, error)
	FindByInternship(ctx context.Context, internshipID int64) ([]*model.Application, error)
	ExistsForStudentAndInternship(ctx context.Context, studentID, internshipID int64) (bool, error)
	Update(ctx context.Context, application *model.Application) error
	Delete(ctx context.Context, id int64) error
	DeleteByInternship(ctx context.Context, internshipID int64) (int, error)
}

type ApplicationRepository struct {
	mu           sync.RWMutex
	applications map[int64]*model.Application
	seq          *idSequence
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{
		applications: make(map[int64]*model.Application),
		seq:          newIDSequence(),
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if application.ID == 0 {
		application.ID = r.seq.Reserve()
	} else {
		r.seq.Observe(application.ID)
	}
	r.applications[application.ID] = cloneApplication(application)
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*model.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	application, ok := r.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return cloneApplication(application), nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*model.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applications := make([]*model.Application, 0, len(r.applications))
	for _, application := range r.applications {
		applications = append(applications, cloneApplication(application))
	}
	sortApplications(applications)
	return applications, nil
}

func (r *ApplicationRepository) FindByStudent(ctx context.Context, studentID int64) ([]*model.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var applications []*model.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			applications = append(applications, cloneApplication(application))
		}
	}
	sortApplications(applications)
	return applications, nil
}

func (r *ApplicationRepository) FindByInternship(ctx context.Context, internshipID int64) ([]*model.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var applications []*model.Application
	for _, application := range r.applications {
		if application.InternshipID == internshipID {
			applications = append(applications, cloneApplication(application))
		}
	}
	sortApplications(applications)
	return applications, nil
}

func (r *ApplicationRepository) ExistsForStudentAndInternship(ctx context.Context, studentID, internshipID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, application := range r.applications {
		if application.StudentID == studentID && application.InternshipID == internshipID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, application *model.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[application.ID]; !ok {
		return domain.ErrApplicationNotFound
	}
	r.applications[application.ID] = cloneApplication(application)
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[id]; !ok {
		return domain.ErrApplicationNotFound
	}
	delete(r.applications, id)
	return nil
}

// DeleteByInternship removes every application referencing the internship and
// returns how many were removed. Used by the cascade when a posting is deleted.
func (r *ApplicationRepository) DeleteByInternship(ctx context.Context, internshipID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, application := range r.applications {
		if application.InternshipID == internshipID {
			delete(r.applications, id)
			removed++
		}
	}
	return removed, nil
}

func sortApplications(applications []*model.Application) {
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
}

func cloneApplication(a *model.Application) *model.Application {
	c := *a
	c.MainSkills = append([]string(nil), a.MainSkills...)
	c.SoftwareTools = append([]string(nil), a.SoftwareTools...)
	c.Languages = append([]string(nil), a.Languages...)
	return &c
}
