// internal/service/application_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/form"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
	"github.com/garasilabs/maganghub/internal/service"
)

type applicationFixture struct {
	svc        *service.ApplicationService
	userRepo   repository.UserRepositoryIface
	student    *model.User
	company    *model.User
	internship *model.Internship
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := repository.NewUserRepository()
	internshipRepo := repository.NewInternshipRepository()
	applicationRepo := repository.NewApplicationRepository()

	student := &model.User{Name: "Jane Doe", Email: "jane@student.example.com", Role: model.RoleStudent}
	company := &model.User{Name: "TechNova", Email: "hr@technova.example.com", Role: model.RoleCompany}
	require.NoError(t, userRepo.Create(ctx, student))
	require.NoError(t, userRepo.Create(ctx, company))

	internship := &model.Internship{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Title:       "Backend Intern",
		Location:    "Jakarta",
		JobType:     model.JobTypeOnSite,
		PostedDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ClosingDate: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, internshipRepo.Create(ctx, internship))

	return &applicationFixture{
		svc:        service.NewApplicationService(applicationRepo, internshipRepo, userRepo, nil),
		userRepo:   userRepo,
		student:    student,
		company:    company,
		internship: internship,
	}
}

func validSubmission(internshipID int64) service.SubmitApplicationInput {
	return service.SubmitApplicationInput{
		InternshipID: internshipID,
		Data: form.Data{
			FullName:        "Jane Doe",
			StudentIDNumber: "2110512345",
			DateOfBirth:     "2002-05-14",
			PhoneNumber:     "+6281234567890",
			Address:         "Jl. Merdeka 1, Jakarta",

			CVFileName:         "cv.pdf",
			TranscriptFileName: "transcript.pdf",

			GPA: 3.6,

			ReasonForApplying:   "I want hands-on backend experience.",
			InternshipStartDate: "2026-10-05",
			InternshipEndDate:   "2027-03-26",

			DataAuthenticityConfirmation: true,
			DataProcessingConsent:        true,
			ESignature:                   "Jane Doe",
		},
	}
}

func TestApplicationSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("complete form is stored as applied", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		assert.NotZero(t, application.ID)
		assert.Equal(t, model.StatusApplied, application.Status)
		assert.Equal(t, f.internship.ID, application.InternshipID)
		assert.Equal(t, f.student.ID, application.StudentID)
		assert.WithinDuration(t, time.Now(), application.ApplicationDate, 5*time.Second)
	})

	t.Run("second submission to the same posting is rejected", func(t *testing.T) {
		f := newApplicationFixture(t)

		_, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		_, err = f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

		mine, err := f.svc.ForStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("invalid form reports fields and stores nothing", func(t *testing.T) {
		f := newApplicationFixture(t)

		input := validSubmission(f.internship.ID)
		input.GPA = 0
		input.ESignature = ""

		_, err := f.svc.Submit(ctx, f.student.ID, input)

		var formErr *service.FormError
		require.ErrorAs(t, err, &formErr)
		assert.Contains(t, formErr.Fields, "gpa")
		assert.Contains(t, formErr.Fields, "e_signature")

		mine, err := f.svc.ForStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("unknown posting", func(t *testing.T) {
		f := newApplicationFixture(t)

		_, err := f.svc.Submit(ctx, f.student.ID, validSubmission(404))
		assert.ErrorIs(t, err, domain.ErrInternshipNotFound)
	})

	t.Run("companies cannot apply", func(t *testing.T) {
		f := newApplicationFixture(t)

		_, err := f.svc.Submit(ctx, f.company.ID, validSubmission(f.internship.ID))
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestApplicationUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("owning company may move status freely", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		updated, err := f.svc.UpdateStatus(ctx, application.ID, model.StatusAccepted, f.company)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, updated.Status)

		// Any status may follow any other, including re-opening.
		updated, err = f.svc.UpdateStatus(ctx, application.ID, model.StatusApplied, f.company)
		require.NoError(t, err)
		assert.Equal(t, model.StatusApplied, updated.Status)
	})

	t.Run("a rival company is forbidden", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		rival := &model.User{Name: "Rival Corp", Email: "rival@example.com", Role: model.RoleCompany}
		require.NoError(t, f.userRepo.Create(ctx, rival))

		_, err = f.svc.UpdateStatus(ctx, application.ID, model.StatusRejected, rival)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown status string", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		_, err = f.svc.UpdateStatus(ctx, application.ID, model.ApplicationStatus("Shortlisted"), f.company)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestApplicationCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("pending application can be withdrawn", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		require.NoError(t, f.svc.Cancel(ctx, application.ID, f.student.ID))

		mine, err := f.svc.ForStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("decided application stays on record", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		_, err = f.svc.UpdateStatus(ctx, application.ID, model.StatusRejected, f.company)
		require.NoError(t, err)

		err = f.svc.Cancel(ctx, application.ID, f.student.ID)
		assert.ErrorIs(t, err, domain.ErrNotCancellable)
	})

	t.Run("only the applicant may withdraw", func(t *testing.T) {
		f := newApplicationFixture(t)

		application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
		require.NoError(t, err)

		err = f.svc.Cancel(ctx, application.ID, f.student.ID+100)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestApplicationJoins(t *testing.T) {
	ctx := context.Background()
	f := newApplicationFixture(t)

	application, err := f.svc.Submit(ctx, f.student.ID, validSubmission(f.internship.ID))
	require.NoError(t, err)

	t.Run("company inbox joins student and posting", func(t *testing.T) {
		inbox, err := f.svc.ForCompany(ctx, f.company.ID)
		require.NoError(t, err)
		require.Len(t, inbox, 1)

		assert.Equal(t, application.ID, inbox[0].ID)
		require.NotNil(t, inbox[0].Student)
		assert.Equal(t, "Jane Doe", inbox[0].Student.Name)
		require.NotNil(t, inbox[0].Internship)
		assert.Equal(t, "Backend Intern", inbox[0].Internship.Title)
	})

	t.Run("student view joins the posting", func(t *testing.T) {
		mine, err := f.svc.ForStudent(ctx, f.student.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		require.NotNil(t, mine[0].Internship)
		assert.Equal(t, "Backend Intern", mine[0].Internship.Title)
	})
}
