// internal/seed/seed_test.go
package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
	"github.com/garasilabs/maganghub/internal/seed"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	stores := seed.Stores{
		Users:        repository.NewUserRepository(),
		Internships:  repository.NewInternshipRepository(),
		Applications: repository.NewApplicationRepository(),
		Reviews:      repository.NewReviewRepository(),
		Articles:     repository.NewArticleRepository(),
	}

	hasher := auth.NewPasswordHasher()
	require.NoError(t, seed.Load(ctx, stores, hasher))

	users, err := stores.Users.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	t.Run("passwords are hashed, never stored in the clear", func(t *testing.T) {
		for _, user := range users {
			assert.Contains(t, user.PasswordHash, "$argon2id$", "user %s", user.Email)
		}
	})

	t.Run("seeded student can authenticate", func(t *testing.T) {
		student, err := stores.Users.FindByEmail(ctx, "johndoe@email.com")
		require.NoError(t, err)
		assert.Equal(t, model.RoleStudent, student.Role)

		ok, err := hasher.Verify("password", student.PasswordHash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("new records continue past the seeded ids", func(t *testing.T) {
		extra := &model.User{Name: "Late Arrival", Email: "late@example.com", Role: model.RoleStudent}
		require.NoError(t, stores.Users.Create(ctx, extra))
		assert.Equal(t, int64(6), extra.ID)
	})

	internships, err := stores.Internships.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, internships, 3)

	applications, err := stores.Applications.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, applications, 3)

	reviews, err := stores.Reviews.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	articles, err := stores.Articles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 4)
}
