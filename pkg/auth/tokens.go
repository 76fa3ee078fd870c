package auth

import "context"

// TokenGenerator abstracts session token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// PasswordHasher abstracts the one-way password hash primitive. Hashing is
// deliberately slow, so use cases call it before entering any store
// transaction.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
