package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexushq/talent-registry/pkg/auth"
)

// UserRepository implements auth.UserRepository with an in-process map.
// A single mutex serializes every read-modify-write, so a pair of callers
// racing to consume the same one-time token resolve to one winner and one
// ErrNotFound. Used as the dev/test storage backend.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]auth.User)}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return auth.ErrUserAlreadyExists
		}
	}
	if _, ok := r.users[user.ID]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.users[user.ID] = user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]auth.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Email < out[j].Email
	})
	return out, nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status auth.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	u.Status = status
	r.users[id] = u
	return nil
}

func (r *UserRepository) ToggleVerified(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return auth.ErrNotFound
	}
	u.IsVerified = !u.IsVerified
	r.users[id] = u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return auth.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) ConsumeVerificationToken(ctx context.Context, token string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			u.IsVerified = true
			u.VerificationToken = ""
			r.users[id] = u
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(email)
	for id, u := range r.users {
		if u.Email == email {
			u.ResetPasswordToken = token
			u.ResetPasswordExpires = expires
			r.users[id] = u
			return nil
		}
	}
	return auth.ErrNotFound
}

func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, newHash string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for id, u := range r.users {
		if u.ResetPasswordToken != "" && u.ResetPasswordToken == token && u.ResetPasswordExpires.After(now) {
			u.PasswordHash = newHash
			u.ResetPasswordToken = ""
			u.ResetPasswordExpires = time.Time{}
			r.users[id] = u
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}
