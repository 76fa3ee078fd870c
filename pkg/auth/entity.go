package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role separates the administrator account from self-registered candidates.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCandidate Role = "CANDIDATE"
)

// Status is the vetting state of a candidate, mutated only by admin actions.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Domain classifies a candidate's core area. It has no behavioral effect on
// the credential lifecycle; the dashboard groups statistics by it.
type Domain string

const (
	DomainAI        Domain = "AI"
	DomainDeveloper Domain = "Developer"
	DomainHardware  Domain = "Hardware"
)

// User is the registry's single persisted entity. Credential material never
// leaves the store/hasher boundary: sensitive fields are excluded from JSON,
// and workflows that hand a one-time token back to the caller add it to the
// response payload explicitly.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Domain     Domain    `json:"domain"`
	Skill      string    `json:"skill"`
	Experience string    `json:"experience"`
	Summary    string    `json:"summary,omitempty"`
	Status     Status    `json:"status"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`

	PasswordHash         string    `json:"-"`
	VerificationToken    string    `json:"-"`
	ResetPasswordToken   string    `json:"-"`
	ResetPasswordExpires time.Time `json:"-"`
}
