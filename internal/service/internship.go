// internal/service/internship.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// InternshipService owns the posting collection of the domain store.
type InternshipService struct {
	repo            repository.InternshipRepositoryIface
	userRepo        repository.UserRepositoryIface
	applicationRepo repository.ApplicationRepositoryIface
	validate        *validator.Validate
}

func NewInternshipService(
	repo repository.InternshipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	applicationRepo repository.ApplicationRepositoryIface,
) *InternshipService {
	return &InternshipService{
		repo:            repo,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		validate:        validator.New(),
	}
}

type CreateInternshipInput struct {
	Title        string        `json:"title" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	Location     string        `json:"location" validate:"required"`
	Duration     string        `json:"duration" validate:"required"`
	JobType      model.JobType `json:"job_type" validate:"required"`
	PostedDate   time.Time     `json:"posted_date" validate:"required"`
	ClosingDate  time.Time     `json:"closing_date" validate:"required"`
	Requirements []string      `json:"requirements"`
	Field        string        `json:"field" validate:"required"`
}

// Create adds a posting owned by companyID. The owner must exist and hold the
// company role; an unknown owner fails loudly with domain.ErrCompanyNotFound
// instead of silently dropping the posting. The company display name is
// denormalized at this instant and deliberately left stale across later
// renames.
func (s *InternshipService) Create(ctx context.Context, input CreateInternshipInput, companyID int64) (*model.Internship, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.userRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	if !company.IsCompany() {
		return nil, domain.ErrCompanyNotFound
	}

	if !input.ClosingDate.After(input.PostedDate) {
		return nil, domain.ErrInvalidSchedule
	}

	internship := &model.Internship{
		CompanyID:    companyID,
		CompanyName:  company.Name,
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Duration:     input.Duration,
		JobType:      input.JobType,
		PostedDate:   input.PostedDate,
		ClosingDate:  input.ClosingDate,
		Requirements: input.Requirements,
		Field:        input.Field,
	}

	if err := s.repo.Create(ctx, internship); err != nil {
		return nil, fmt.Errorf("creating internship: %w", err)
	}
	return internship, nil
}

// Delete removes a posting and cascades to every application referencing it.
// Only the owning company (or an admin) may delete.
func (s *InternshipService) Delete(ctx context.Context, internshipID int64, actor *model.User) error {
	internship, err := s.repo.FindByID(ctx, internshipID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && internship.CompanyID != actor.ID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, internshipID); err != nil {
		return err
	}

	// Referential integrity by hand: drop the orphaned applications too.
	if _, err := s.applicationRepo.DeleteByInternship(ctx, internshipID); err != nil {
		return fmt.Errorf("cascading application delete: %w", err)
	}
	return nil
}

// Get returns a single posting by id.
func (s *InternshipService) Get(ctx context.Context, id int64) (*model.Internship, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every posting.
func (s *InternshipService) List(ctx context.Context) ([]*model.Internship, error) {
	return s.repo.FindAll(ctx)
}

// ListByCompany returns the postings owned by one company.
func (s *InternshipService) ListByCompany(ctx context.Context, companyID int64) ([]*model.Internship, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

type InternshipFilter struct {
	Query    string        `json:"query"`
	Location string        `json:"location"`
	JobType  model.JobType `json:"job_type"`
	Field    string        `json:"field"`
}

// Filter narrows the posting list with the search page's semantics:
// case-insensitive substring match of Query against title or company name,
// substring match on location and field, exact match on job type. Empty
// filter values match everything.
func (s *InternshipService) Filter(ctx context.Context, filter InternshipFilter) ([]*model.Internship, error) {
	internships, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Internship, 0, len(internships))
	for _, internship := range internships {
		if !matchesFilter(internship, filter) {
			continue
		}
		matched = append(matched, internship)
	}
	return matched, nil
}

func matchesFilter(internship *model.Internship, filter InternshipFilter) bool {
	if q := strings.ToLower(filter.Query); q != "" {
		title := strings.ToLower(internship.Title)
		company := strings.ToLower(internship.CompanyName)
		if !strings.Contains(title, q) && !strings.Contains(company, q) {
			return false
		}
	}
	if loc := strings.ToLower(filter.Location); loc != "" {
		if !strings.Contains(strings.ToLower(internship.Location), loc) {
			return false
		}
	}
	if filter.JobType != "" && internship.JobType != filter.JobType {
		return false
	}
	if f := strings.ToLower(filter.Field); f != "" {
		if !strings.Contains(strings.ToLower(internship.Field), f) {
			return false
		}
	}
	return true
}

// Locations returns the distinct posting locations, sorted, for the search
// page's dropdown.
func (s *InternshipService) Locations(ctx context.Context) ([]string, error) {
	internships, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var locations []string
	for _, internship := range internships {
		if _, ok := seen[internship.Location]; ok {
			continue
		}
		seen[internship.Location] = struct{}{}
		locations = append(locations, internship.Location)
	}
	sort.Strings(locations)
	return locations, nil
}
