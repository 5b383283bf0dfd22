// internal/service/user_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/identity"
	"github.com/garasilabs/maganghub/internal/mocks"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
	"github.com/garasilabs/maganghub/internal/service"
)

func newUserService(t *testing.T, verifier identity.Verifier) (*service.UserService, repository.UserRepositoryIface) {
	t.Helper()
	repo := repository.NewUserRepository()
	svc := service.NewUserService(
		repo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		verifier,
		nil,
	)
	return svc, repo
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUserService(t, identity.NewInsecureVerifier())

	t.Run("student gets role defaults and a token", func(t *testing.T) {
		out, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Jane Doe",
			Email:    "jane@student.example.com",
			Password: "password123",
			Role:     model.RoleStudent,
		})
		require.NoError(t, err)
		require.NotNil(t, out)

		assert.NotEmpty(t, out.Token)
		assert.Equal(t, model.RoleStudent, out.User.Role)
		assert.Equal(t, time.Now().Year()+4, out.User.GraduationYear)
		assert.NotNil(t, out.User.Skills)

		stored, err := repo.FindByEmail(ctx, "jane@student.example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.PasswordHash, "password must never be stored in the clear")
		assert.Contains(t, stored.PasswordHash, "$argon2id$")
	})

	t.Run("company gets a size default", func(t *testing.T) {
		out, err := svc.Register(ctx, service.RegisterInput{
			Name:     "TechNova",
			Email:    "hr@technova.example.com",
			Password: "password123",
			Role:     model.RoleCompany,
		})
		require.NoError(t, err)
		assert.Equal(t, "1-10 employees", out.User.CompanySize)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Second Jane",
			Email:    "jane@student.example.com",
			Password: "password456",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2, "a rejected registration must append nothing")
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "password123",
			Role:     model.RoleAdmin,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, service.RegisterInput{
			Name:     "Shorty",
			Email:    "shorty@example.com",
			Password: "short",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, identity.NewInsecureVerifier())

	_, err := svc.Register(ctx, service.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@student.example.com",
		Password: "password123",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	t.Run("matching triple succeeds", func(t *testing.T) {
		out, err := svc.Login(ctx, service.LoginInput{
			Email:    "jane@student.example.com",
			Password: "password123",
			Role:     model.RoleStudent,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "Jane Doe", out.User.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, service.LoginInput{
			Email:    "jane@student.example.com",
			Password: "wrong_password",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := svc.Login(ctx, service.LoginInput{
			Email:    "jane@student.example.com",
			Password: "password123",
			Role:     model.RoleCompany,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, service.LoginInput{
			Email:    "ghost@example.com",
			Password: "password123",
			Role:     model.RoleStudent,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestExternalAuth(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("register then login through the verifier", func(t *testing.T) {
		verifier := mocks.NewMockVerifier(ctrl)
		verifier.EXPECT().
			Verify(gomock.Any(), "provider-token").
			Return(&identity.Identity{Email: "oauth@student.example.com", Name: "OAuth Jane"}, nil).
			Times(2)

		svc, _ := newUserService(t, verifier)

		out, err := svc.ExternalRegister(ctx, model.RoleStudent, "provider-token")
		require.NoError(t, err)
		assert.Equal(t, "OAuth Jane", out.User.Name)
		assert.Equal(t, model.RoleStudent, out.User.Role)

		again, err := svc.ExternalLogin(ctx, model.RoleStudent, "provider-token")
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, again.User.ID)
	})

	t.Run("login without an account", func(t *testing.T) {
		verifier := mocks.NewMockVerifier(ctrl)
		verifier.EXPECT().
			Verify(gomock.Any(), "provider-token").
			Return(&identity.Identity{Email: "nobody@example.com"}, nil)

		svc, _ := newUserService(t, verifier)

		_, err := svc.ExternalLogin(ctx, model.RoleStudent, "provider-token")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("name falls back to the email local part", func(t *testing.T) {
		verifier := mocks.NewMockVerifier(ctrl)
		verifier.EXPECT().
			Verify(gomock.Any(), "provider-token").
			Return(&identity.Identity{Email: "budi@campus.example.com"}, nil)

		svc, _ := newUserService(t, verifier)

		out, err := svc.ExternalRegister(ctx, model.RoleStudent, "provider-token")
		require.NoError(t, err)
		assert.Equal(t, "budi", out.User.Name)
	})

	t.Run("rejected provider token", func(t *testing.T) {
		verifier := mocks.NewMockVerifier(ctrl)
		verifier.EXPECT().
			Verify(gomock.Any(), "bad-token").
			Return(nil, domain.ErrInvalidIdentity)

		svc, _ := newUserService(t, verifier)

		_, err := svc.ExternalLogin(ctx, model.RoleStudent, "bad-token")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentity)
	})
}

func TestUpdateProfiles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, identity.NewInsecureVerifier())

	student, err := svc.Register(ctx, service.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@student.example.com",
		Password: "password123",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	company, err := svc.Register(ctx, service.RegisterInput{
		Name:     "TechNova",
		Email:    "hr@technova.example.com",
		Password: "password123",
		Role:     model.RoleCompany,
	})
	require.NoError(t, err)

	t.Run("student merge keeps untouched fields", func(t *testing.T) {
		major := "Computer Science"
		skills := []string{"Go", "SQL"}
		updated, err := svc.UpdateStudentProfile(ctx, student.User.ID, service.UpdateStudentProfileInput{
			Major:  &major,
			Skills: &skills,
		})
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", updated.Major)
		assert.Equal(t, []string{"Go", "SQL"}, updated.Skills)
		assert.Equal(t, "Jane Doe", updated.Name)
	})

	t.Run("company cannot use the student path", func(t *testing.T) {
		major := "Business"
		_, err := svc.UpdateStudentProfile(ctx, company.User.ID, service.UpdateStudentProfileInput{Major: &major})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("student cannot use the company path", func(t *testing.T) {
		field := "Fintech"
		_, err := svc.UpdateCompanyProfile(ctx, student.User.ID, service.UpdateCompanyProfileInput{Field: &field})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("company merge", func(t *testing.T) {
		location := "Bandung"
		size := "51-200 employees"
		updated, err := svc.UpdateCompanyProfile(ctx, company.User.ID, service.UpdateCompanyProfileInput{
			Location:    &location,
			CompanySize: &size,
		})
		require.NoError(t, err)
		assert.Equal(t, "Bandung", updated.Location)
		assert.Equal(t, "51-200 employees", updated.CompanySize)
	})
}
