// internal/repository/repository_test.go
package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

func TestUserRepositoryIDs(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository()

	t.Run("assigns sequential ids starting at one", func(t *testing.T) {
		first := &model.User{Name: "Alpha", Email: "alpha@example.com", Role: model.RoleStudent}
		second := &model.User{Name: "Beta", Email: "beta@example.com", Role: model.RoleStudent}

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("continues past explicitly assigned ids", func(t *testing.T) {
		seeded := &model.User{ID: 10, Name: "Seeded", Email: "seeded@example.com", Role: model.RoleCompany}
		require.NoError(t, repo.Create(ctx, seeded))

		next := &model.User{Name: "Next", Email: "next@example.com", Role: model.RoleStudent}
		require.NoError(t, repo.Create(ctx, next))

		assert.Equal(t, int64(11), next.ID)
	})
}

func TestInternshipRepositoryIDReuse(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInternshipRepository()

	first := &model.Internship{CompanyID: 1, Title: "First"}
	second := &model.Internship{CompanyID: 1, Title: "Second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Deleting the newest record must not hand its id to the next insert.
	require.NoError(t, repo.Delete(ctx, second.ID))

	third := &model.Internship{CompanyID: 1, Title: "Third"}
	require.NoError(t, repo.Create(ctx, third))

	assert.Greater(t, third.ID, second.ID)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository()

	user := &model.User{Name: "Casey", Email: "Casey@Example.com", Role: model.RoleStudent}
	require.NoError(t, repo.Create(ctx, user))

	t.Run("matches case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "casey@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepositoryCloneIsolation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository()

	user := &model.User{Name: "Dana", Email: "dana@example.com", Role: model.RoleStudent, Skills: []string{"Go"}}
	require.NoError(t, repo.Create(ctx, user))

	// Mutating a returned record must not leak into the store.
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	found.Name = "Mutated"
	found.Skills[0] = "Mutated"

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", again.Name)
	assert.Equal(t, []string{"Go"}, again.Skills)
}

func TestApplicationRepositoryQueries(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewApplicationRepository()

	require.NoError(t, repo.Create(ctx, &model.Application{InternshipID: 1, StudentID: 1, Status: model.StatusApplied}))
	require.NoError(t, repo.Create(ctx, &model.Application{InternshipID: 1, StudentID: 2, Status: model.StatusApplied}))
	require.NoError(t, repo.Create(ctx, &model.Application{InternshipID: 2, StudentID: 1, Status: model.StatusAccepted}))

	t.Run("exists for student and internship", func(t *testing.T) {
		exists, err := repo.ExistsForStudentAndInternship(ctx, 1, 1)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsForStudentAndInternship(ctx, 2, 2)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("find by student", func(t *testing.T) {
		apps, err := repo.FindByStudent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, apps, 2)
	})

	t.Run("delete by internship", func(t *testing.T) {
		deleted, err := repo.DeleteByInternship(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		remaining, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, int64(2), remaining[0].InternshipID)
	})
}
