package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nexushq/talent-registry/pkg/auth"
)

func newUser(email string) auth.User {
	return auth.User{
		ID:        uuid.New(),
		Name:      "Test",
		Email:     email,
		Role:      auth.RoleCandidate,
		Status:    auth.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), newUser("t@x.com")))
	require.ErrorIs(t, repo.Create(context.Background(), newUser("T@X.com")), auth.ErrUserAlreadyExists)
}

func TestGetByEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	u := newUser("Mixed@Case.com")
	require.NoError(t, repo.Create(context.Background(), u))

	got, err := repo.GetByEmail(context.Background(), "mixed@case.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestConsumeVerificationTokenRace(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	u := newUser("t@x.com")
	u.VerificationToken = "race-token"
	require.NoError(t, repo.Create(context.Background(), u))

	const workers = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.ConsumeVerificationToken(context.Background(), "race-token"); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, got.IsVerified)
	require.Empty(t, got.VerificationToken)
}

func TestConsumeResetTokenRace(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	u := newUser("t@x.com")
	require.NoError(t, repo.Create(context.Background(), u))
	require.NoError(t, repo.SetResetToken(context.Background(), "t@x.com", "reset-token", time.Now().UTC().Add(time.Hour)))

	const workers = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			hash := "hash-" + string(rune('a'+i%26))
			if _, err := repo.ConsumeResetToken(context.Background(), "reset-token", hash); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Empty(t, got.ResetPasswordToken)
	require.True(t, got.ResetPasswordExpires.IsZero())
}

func TestConsumeResetTokenExpired(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	u := newUser("t@x.com")
	u.PasswordHash = "old-hash"
	require.NoError(t, repo.Create(context.Background(), u))
	require.NoError(t, repo.SetResetToken(context.Background(), "t@x.com", "stale", time.Now().UTC().Add(-time.Second)))

	_, err := repo.ConsumeResetToken(context.Background(), "stale", "new-hash")
	require.ErrorIs(t, err, auth.ErrNotFound)

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "old-hash", got.PasswordHash, "failed consume must not mutate")
}

func TestMutatorsReportNotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	unknown := uuid.New()

	require.ErrorIs(t, repo.UpdateStatus(context.Background(), unknown, auth.StatusApproved), auth.ErrNotFound)
	require.ErrorIs(t, repo.ToggleVerified(context.Background(), unknown), auth.ErrNotFound)
	require.ErrorIs(t, repo.Delete(context.Background(), unknown), auth.ErrNotFound)
	require.ErrorIs(t, repo.SetResetToken(context.Background(), "nobody@x.com", "t", time.Now()), auth.ErrNotFound)
	_, err := repo.ConsumeVerificationToken(context.Background(), "missing")
	require.ErrorIs(t, err, auth.ErrNotFound)
}

func TestListIsOrderedByCreation(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	base := time.Now().UTC()
	for i, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		u := newUser(email)
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(context.Background(), u))
	}

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "c@x.com", users[0].Email)
	require.Equal(t, "b@x.com", users[2].Email)
}
