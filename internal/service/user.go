// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/email"
	"github.com/garasilabs/maganghub/internal/email/mailer"
	"github.com/garasilabs/maganghub/internal/identity"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// UserService is the identity store: it authenticates, registers, and updates
// principals. The authenticated principal is carried by the JWT issued on
// login, so the service itself holds no session state.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	verifier       identity.Verifier
	emailService   *email.Service
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	verifier identity.Verifier,
	emailService *email.Service,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		verifier:       verifier,
		emailService:   emailService,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login checks the (email, password, role) triple and returns the principal
// with a session token. Any mismatch in the triple yields
// domain.ErrInvalidCredentials and leaves nothing mutated.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, input.Role)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// The role is part of the credential triple: a student's email/password
	// pair presented on the company form does not log in.
	if user.Role != input.Role {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type RegisterInput struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     model.Role `json:"role" validate:"required"`
}

// Register creates a new principal with role-appropriate blank defaults. A
// duplicate email aborts the registration and appends nothing.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if input.Role != model.RoleStudent && input.Role != model.RoleCompany {
		return nil, fmt.Errorf("%w: cannot self-register role %q", domain.ErrInvalidInput, input.Role)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch input.Role {
	case model.RoleStudent:
		user.Skills = []string{}
		user.GraduationYear = now.Year() + 4
	case model.RoleCompany:
		user.TechStack = []string{}
		user.CompanySize = "1-10 employees"
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	// Welcome mail is best effort: a delivery problem must not undo a
	// registration that already happened.
	if s.emailService != nil {
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.Name, string(user.Role)); err != nil {
			slog.WarnContext(ctx, "sending welcome email failed", "error", err, "email", user.Email)
		}
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// ExternalLogin resolves a provider token to an identity and logs in the
// matching user of the requested role. Missing accounts are reported as
// domain.ErrUserNotFound so the caller can suggest registration instead.
func (s *UserService) ExternalLogin(ctx context.Context, role model.Role, providerToken string) (*LoginOutput, error) {
	ident, err := s.verifier.Verify(ctx, providerToken)
	if err != nil {
		return nil, fmt.Errorf("verifying identity: %w", err)
	}

	user, err := s.repo.FindByEmail(ctx, ident.Email)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, domain.ErrUserNotFound
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// ExternalRegister resolves a provider token to an identity and registers it
// through the regular path, with a generated credential placeholder since the
// provider owns the real credential.
func (s *UserService) ExternalRegister(ctx context.Context, role model.Role, providerToken string) (*LoginOutput, error) {
	ident, err := s.verifier.Verify(ctx, providerToken)
	if err != nil {
		return nil, fmt.Errorf("verifying identity: %w", err)
	}

	name := ident.Name
	if name == "" {
		name, _, _ = strings.Cut(ident.Email, "@")
	}

	return s.Register(ctx, RegisterInput{
		Name:     name,
		Email:    ident.Email,
		Password: "ext-" + uuid.NewString(),
		Role:     role,
	})
}

type UpdateStudentProfileInput struct {
	Name              *string   `json:"name,omitempty"`
	Major             *string   `json:"major,omitempty"`
	Skills            *[]string `json:"skills,omitempty"`
	CVLink            *string   `json:"cv_link,omitempty"`
	University        *string   `json:"university,omitempty"`
	GraduationYear    *int      `json:"graduation_year,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	PortfolioLink     *string   `json:"portfolio_link,omitempty"`
	LinkedinProfile   *string   `json:"linkedin_profile,omitempty"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
}

// UpdateStudentProfile shallow-merges the provided fields into the caller's
// record. It only applies when the caller actually holds the student role.
func (s *UserService) UpdateStudentProfile(ctx context.Context, userID int64, input UpdateStudentProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsStudent() {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Major != nil {
		user.Major = *input.Major
	}
	if input.Skills != nil {
		user.Skills = *input.Skills
	}
	if input.CVLink != nil {
		user.CVLink = *input.CVLink
	}
	if input.University != nil {
		user.University = *input.University
	}
	if input.GraduationYear != nil {
		user.GraduationYear = *input.GraduationYear
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.PortfolioLink != nil {
		user.PortfolioLink = *input.PortfolioLink
	}
	if input.LinkedinProfile != nil {
		user.LinkedinProfile = *input.LinkedinProfile
	}
	if input.ProfilePictureURL != nil {
		user.ProfilePictureURL = *input.ProfilePictureURL
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

type UpdateCompanyProfileInput struct {
	Name        *string   `json:"name,omitempty"`
	Field       *string   `json:"field,omitempty"`
	Description *string   `json:"description,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CompanySize *string   `json:"company_size,omitempty"`
	TechStack   *[]string `json:"tech_stack,omitempty"`
}

// UpdateCompanyProfile is the company-scoped counterpart of
// UpdateStudentProfile. Renaming a company does not touch the company name
// already denormalized onto its postings.
func (s *UserService) UpdateCompanyProfile(ctx context.Context, userID int64, input UpdateCompanyProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsCompany() {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Field != nil {
		user.Field = *input.Field
	}
	if input.Description != nil {
		user.Description = *input.Description
	}
	if input.LogoURL != nil {
		user.LogoURL = *input.LogoURL
	}
	if input.Website != nil {
		user.Website = *input.Website
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.CompanySize != nil {
		user.CompanySize = *input.CompanySize
	}
	if input.TechStack != nil {
		user.TechStack = *input.TechStack
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

// GetUser returns a single principal by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListUsers returns every principal, for the admin dashboard.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAll(ctx)
}

// ListCompanies returns every company principal.
func (s *UserService) ListCompanies(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindByRole(ctx, model.RoleCompany)
}
