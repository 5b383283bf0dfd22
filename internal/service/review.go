// internal/service/review.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// ReviewService owns the append-only company review collection.
type ReviewService struct {
	repo     repository.ReviewRepositoryIface
	userRepo repository.UserRepositoryIface
	validate *validator.Validate
}

func NewReviewService(repo repository.ReviewRepositoryIface, userRepo repository.UserRepositoryIface) *ReviewService {
	return &ReviewService{
		repo:     repo,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

type AddReviewInput struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

// Add appends a review by the given student. Rating must be in [1,5] and the
// comment non-empty; the reviewed company must exist. There is no requirement
// that the student completed an internship at the company.
func (s *ReviewService) Add(ctx context.Context, studentID int64, input AddReviewInput) (*model.Review, error) {
	if err := s.validate.Struct(input); err != nil {
		if input.Rating < 1 || input.Rating > 5 {
			return nil, domain.ErrInvalidRating
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, domain.ErrForbidden
	}

	company, err := s.userRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	if !company.IsCompany() {
		return nil, domain.ErrCompanyNotFound
	}

	review := &model.Review{
		CompanyID:   input.CompanyID,
		StudentID:   studentID,
		StudentName: student.Name,
		Rating:      input.Rating,
		Comment:     input.Comment,
		Date:        time.Now(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}
	return review, nil
}

// ForCompany returns a company's reviews in insertion order.
func (s *ReviewService) ForCompany(ctx context.Context, companyID int64) ([]*model.Review, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

// AverageRating computes the arithmetic mean of a company's ratings, 0 when
// the company has no reviews.
func (s *ReviewService) AverageRating(ctx context.Context, companyID int64) (float64, error) {
	reviews, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

// CountAll reports the total number of reviews, for the admin dashboard.
func (s *ReviewService) CountAll(ctx context.Context) (int, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(reviews), nil
}
