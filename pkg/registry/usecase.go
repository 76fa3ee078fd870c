package registry

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nexushq/talent-registry/pkg/auth"
)

// UseCase exposes the administrative registry operations: status transitions,
// verification toggling, deletion and the dashboard views. Each mutator is a
// single credential-store call; no cross-field validation is performed
// (rejecting an unverified candidate is permitted).
type UseCase interface {
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	ResetToPending(ctx context.Context, id uuid.UUID) error
	ToggleVerification(ctx context.Context, id uuid.UUID) error
	Remove(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, f Filter) ([]auth.User, error)
	Stats(ctx context.Context) (Stats, error)
}

// Filter narrows the candidate listing. Search matches name or skill,
// case-insensitively. Status empty means all statuses.
type Filter struct {
	Search string
	Status auth.Status
	Limit  int
	Offset int
}

// Stats aggregates the dashboard counters. Admin accounts are excluded from
// every counter.
type Stats struct {
	Total    int                 `json:"total"`
	Approved int                 `json:"approved"`
	Pending  int                 `json:"pending"`
	Rejected int                 `json:"rejected"`
	ByDomain map[auth.Domain]int `json:"byDomain"`
	Unvetted int                 `json:"unvetted"`
	Verified int                 `json:"verified"`
}

type service struct {
	repo auth.UserRepository
}

func NewService(repo auth.UserRepository) UseCase { return &service{repo: repo} }

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, auth.StatusApproved)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, auth.StatusRejected)
}

func (s *service) ResetToPending(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, auth.StatusPending)
}

func (s *service) ToggleVerification(ctx context.Context, id uuid.UUID) error {
	return s.repo.ToggleVerified(ctx, id)
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, f Filter) ([]auth.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]auth.User, 0, len(users))
	for _, u := range users {
		if u.Role == auth.RoleAdmin {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Skill), needle) {
			continue
		}
		out = append(out, u)
	}
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []auth.User{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{ByDomain: map[auth.Domain]int{}}
	for _, u := range users {
		if u.Role == auth.RoleAdmin {
			continue
		}
		st.Total++
		switch u.Status {
		case auth.StatusApproved:
			st.Approved++
		case auth.StatusPending:
			st.Pending++
		case auth.StatusRejected:
			st.Rejected++
		}
		if u.IsVerified {
			st.Verified++
		}
		st.ByDomain[u.Domain]++
	}
	st.Unvetted = st.Total - st.Approved
	return st, nil
}
