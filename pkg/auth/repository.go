package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
//
// Every mutator is an atomic read-modify-write over the collection. Unmatched
// ids/emails/tokens leave the collection unchanged and report ErrNotFound;
// nothing here ever returns a partial update. The consume operations are
// single atomic check-and-clear steps, so two callers racing on the same
// one-time token resolve to at most one winner.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ToggleVerified(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ConsumeVerificationToken marks the matching user verified and clears the
	// token in one step.
	ConsumeVerificationToken(ctx context.Context, token string) (User, error)

	// SetResetToken attaches a reset token with an absolute expiry to the user
	// matching email.
	SetResetToken(ctx context.Context, email, token string, expires time.Time) error

	// ConsumeResetToken replaces the password hash and clears both reset
	// fields, but only while the token is unexpired.
	ConsumeResetToken(ctx context.Context, token, newHash string) (User, error)
}
