package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gnomesuite/petstore-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}

type memUserRepo struct {
	mu    sync.Mutex
	users []model.User
}

func NewUserRepository(seed []model.User) UserRepository {
	return &memUserRepo{users: append([]model.User(nil), seed...)}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = nextID(len(r.users), func(i int) int64 { return r.users[i].ID })
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = nil
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByUsername matches exactly, case-sensitive.
func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmail matches exactly, case-sensitive.
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return paginate(r.users, limit, offset), nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
