package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes the credential lifecycle workflows: registration with
// email verification, login, and the forgot/reset password pair.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	VerifyEmail(ctx context.Context, token string) (User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, id uuid.UUID) (User, error)
}

// RegisterInput carries the self-service registration payload.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Domain     Domain
	Skill      string
	Experience string
	Summary    string
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo     UserRepository
	hasher   PasswordHasher
	tokens   TokenGenerator
	resetTTL time.Duration

	// decoy digest compared against when the email lookup misses, so the
	// unknown-email and wrong-password branches cost the same.
	decoy string
}

// NewAuthService returns the default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenGenerator, resetTTL time.Duration) AuthUseCase {
	decoy, _ := hasher.Hash(newOpaqueToken())
	return &authService{repo: repo, hasher: hasher, tokens: tokens, resetTTL: resetTTL, decoy: decoy}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return User{}, ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:                uuid.New(),
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      passwordHash,
		Role:              RoleCandidate,
		Domain:            in.Domain,
		Skill:             in.Skill,
		Experience:        in.Experience,
		Summary:           in.Summary,
		Status:            StatusPending,
		IsVerified:        false,
		VerificationToken: newOpaqueToken(),
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user.PasswordHash == "" {
		// burn a compare anyway; the caller must not be able to tell
		// "no such user" from "wrong password"
		s.hasher.Verify(password, s.decoy)
		return AuthResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrInvalidToken
	}
	user, err := s.repo.ConsumeVerificationToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrInvalidToken
	}
	return user, err
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.repo.GetByEmail(ctx, email); err != nil {
		return "", err
	}
	token := newOpaqueToken()
	expires := time.Now().UTC().Add(s.resetTTL)
	if err := s.repo.SetResetToken(ctx, email, token, expires); err != nil {
		return "", err
	}
	return token, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrInvalidToken
	}
	// hash outside the store transaction, bcrypt is slow on purpose
	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if _, err := s.repo.ConsumeResetToken(ctx, token, newHash); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

func (s *authService) Profile(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// newOpaqueToken returns a random value whose only contract is equality
// comparison; it stands in for an email-delivered verification/reset link.
func newOpaqueToken() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
