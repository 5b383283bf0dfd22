// internal/repository/user.go
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/garasilabs/maganghub/internal/domain"
	"github.com/garasilabs/maganghub/internal/model"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByRole(ctx context.Context, role model.Role) ([]*model.User, error)
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[int64]*model.User
	seq   *idSequence
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int64]*model.User),
		seq:   newIDSequence(),
	}
}

// Create stores the user. A zero ID is replaced with the next id in the
// sequence; a preset id (seed data) is kept and the sequence advanced past it.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.seq.Reserve()
	} else {
		r.seq.Observe(user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// FindByEmail matches case-insensitively, mirroring how mail addresses are
// commonly normalized.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*model.User
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, cloneUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Skills = append([]string(nil), u.Skills...)
	c.TechStack = append([]string(nil), u.TechStack...)
	return &c
}
