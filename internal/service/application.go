// internal/service/application.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/email"
	"github.com/garasilabs/maganghub/internal/email/mailer"
	"github.com/garasilabs/maganghub/internal/form"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// ApplicationService owns the application collection. The at-most-one
// application per (student, posting) rule lives here, not in the callers, so
// no submission path can bypass it.
type ApplicationService struct {
	repo           repository.ApplicationRepositoryIface
	internshipRepo repository.InternshipRepositoryIface
	userRepo       repository.UserRepositoryIface
	emailService   *email.Service
}

func NewApplicationService(
	repo repository.ApplicationRepositoryIface,
	internshipRepo repository.InternshipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	emailService *email.Service,
) *ApplicationService {
	return &ApplicationService{
		repo:           repo,
		internshipRepo: internshipRepo,
		userRepo:       userRepo,
		emailService:   emailService,
	}
}

// FormError carries the wizard's per-field failures up to the transport.
type FormError struct {
	Fields form.Errors
}

func (e *FormError) Error() string {
	return fmt.Sprintf("application form has %d invalid fields", len(e.Fields))
}

type SubmitApplicationInput struct {
	InternshipID int64 `json:"internship_id"`
	form.Data
}

// Submit validates the whole form, enforces the duplicate rule, and appends
// the application with status Applied and the submission time stamped now.
func (s *ApplicationService) Submit(ctx context.Context, studentID int64, input SubmitApplicationInput) (*model.Application, error) {
	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, domain.ErrForbidden
	}

	internship, err := s.internshipRepo.FindByID(ctx, input.InternshipID)
	if err != nil {
		return nil, err
	}

	if errs := form.ValidateAll(&input.Data); len(errs) > 0 {
		return nil, &FormError{Fields: errs}
	}

	exists, err := s.repo.ExistsForStudentAndInternship(ctx, studentID, internship.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateApplication
	}

	application := &model.Application{
		InternshipID:    internship.ID,
		StudentID:       studentID,
		Status:          model.StatusApplied,
		ApplicationDate: time.Now(),

		FullName:        input.FullName,
		StudentIDNumber: input.StudentIDNumber,
		University:      input.University,
		Major:           input.Major,
		ActiveEmail:     input.ActiveEmail,
		CurrentSemester: input.CurrentSemester,
		Gender:          input.Gender,
		DateOfBirth:     input.DateOfBirth,
		PhoneNumber:     input.PhoneNumber,
		Address:         input.Address,

		ProfilePictureFileName:       input.ProfilePictureFileName,
		CVFileName:                   input.CVFileName,
		TranscriptFileName:           input.TranscriptFileName,
		RecommendationLetterFileName: input.RecommendationLetterFileName,
		PortfolioFileNameOrLink:      input.PortfolioFileNameOrLink,
		CertificatesFileName:         input.CertificatesFileName,

		GPA:                      input.GPA,
		MainSkills:               input.MainSkills,
		SoftwareTools:            input.SoftwareTools,
		Languages:                input.Languages,
		OrganizationalExperience: input.OrganizationalExperience,

		ReasonForApplying:   input.ReasonForApplying,
		InternshipStartDate: input.InternshipStartDate,
		InternshipEndDate:   input.InternshipEndDate,
		PreferredWorkType:   input.PreferredWorkType,

		DataAuthenticityConfirmation: input.DataAuthenticityConfirmation,
		DataProcessingConsent:        input.DataProcessingConsent,
		ESignature:                   input.ESignature,
	}

	if err := s.repo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return application, nil
}

// UpdateStatus replaces an application's status. Only the company owning the
// referenced posting may do so. Any status may follow any other, including
// re-opening a rejected application.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, status model.ApplicationStatus, actor *model.User) (*model.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	application, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.FindByID(ctx, application.InternshipID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && internship.CompanyID != actor.ID {
		return nil, domain.ErrForbidden
	}

	application.Status = status
	if err := s.repo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	s.notifyStatusChange(ctx, application, internship)
	return application, nil
}

// notifyStatusChange mails the student about the new status. Best effort:
// the status change has already been stored.
func (s *ApplicationService) notifyStatusChange(ctx context.Context, application *model.Application, internship *model.Internship) {
	if s.emailService == nil {
		return
	}

	student, err := s.userRepo.FindByID(ctx, application.StudentID)
	if err != nil {
		slog.WarnContext(ctx, "status notification skipped, student lookup failed", "error", err, "student_id", application.StudentID)
		return
	}

	if err := mailer.SendApplicationStatusEmail(s.emailService, student.Email, application, internship, student.Name); err != nil {
		slog.WarnContext(ctx, "sending status notification failed", "error", err, "application_id", application.ID)
	}
}

// Cancel lets a student withdraw their own application while it is still
// pending; accepted or rejected applications stay on record.
func (s *ApplicationService) Cancel(ctx context.Context, applicationID, studentID int64) error {
	application, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.StudentID != studentID {
		return domain.ErrForbidden
	}
	if application.Status != model.StatusApplied {
		return domain.ErrNotCancellable
	}
	return s.repo.Delete(ctx, applicationID)
}

// CompanyApplication joins an application with the applying student and with
// the posting it targets, for the company's review table.
type CompanyApplication struct {
	*model.Application
	Student    *model.User       `json:"student"`
	Internship *model.Internship `json:"internship"`
}

// ForCompany returns every application against the company's postings, with
// student and posting records joined in.
func (s *ApplicationService) ForCompany(ctx context.Context, companyID int64) ([]*CompanyApplication, error) {
	internships, err := s.internshipRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var joined []*CompanyApplication
	for _, internship := range internships {
		applications, err := s.repo.FindByInternship(ctx, internship.ID)
		if err != nil {
			return nil, err
		}
		for _, application := range applications {
			entry := &CompanyApplication{Application: application, Internship: internship}
			if student, err := s.userRepo.FindByID(ctx, application.StudentID); err == nil {
				entry.Student = student
			}
			joined = append(joined, entry)
		}
	}
	return joined, nil
}

// StudentApplication joins an application with the posting it targets.
type StudentApplication struct {
	*model.Application
	Internship *model.Internship `json:"internship"`
}

// ForStudent returns the student's applications with the posting joined in.
func (s *ApplicationService) ForStudent(ctx context.Context, studentID int64) ([]*StudentApplication, error) {
	applications, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	joined := make([]*StudentApplication, 0, len(applications))
	for _, application := range applications {
		entry := &StudentApplication{Application: application}
		if internship, err := s.internshipRepo.FindByID(ctx, application.InternshipID); err == nil {
			entry.Internship = internship
		}
		joined = append(joined, entry)
	}
	return joined, nil
}

// CountAll reports the total number of applications, for the admin dashboard.
func (s *ApplicationService) CountAll(ctx context.Context) (int, error) {
	applications, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(applications), nil
}
