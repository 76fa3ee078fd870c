package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeedUsers is the fixture set written once into an empty store: one
// pre-approved administrator and a few pre-verified candidates. The password
// digests are fixed bcrypt values; the admin account logs in with
// admin@123gmail.com / admin@123.
var SeedUsers = []User{
	{
		ID:           uuid.MustParse("6a1f6f0e-9d2c-4f9e-8b41-0c2f2f1a7a01"),
		Name:         "Arjun Mehta",
		Email:        "arjun@mumbai.tech",
		PasswordHash: "$2a$10$TKh8H1.PfQx37YgCzwiKb.KjNyWgaHb9cbcoQgdIVFlYg7B77UdFm",
		Role:         RoleCandidate,
		Domain:       DomainDeveloper,
		Skill:        "Java, Spring Boot, Microservices, React",
		Experience:   "4 years",
		Status:       StatusApproved,
		IsVerified:   true,
	},
	{
		ID:           uuid.MustParse("6a1f6f0e-9d2c-4f9e-8b41-0c2f2f1a7a02"),
		Name:         "Priyanka Sharma",
		Email:        "priyanka@bangalore.ai",
		PasswordHash: "$2a$10$TKh8H1.PfQx37YgCzwiKb.KjNyWgaHb9cbcoQgdIVFlYg7B77UdFm",
		Role:         RoleCandidate,
		Domain:       DomainAI,
		Skill:        "Python, TensorFlow, NLP, LangChain",
		Experience:   "2 years",
		Status:       StatusPending,
		IsVerified:   true,
	},
	{
		ID:           uuid.MustParse("6a1f6f0e-9d2c-4f9e-8b41-0c2f2f1a7a03"),
		Name:         "Rohan Das",
		Email:        "rohan@pune.dev",
		PasswordHash: "$2a$10$TKh8H1.PfQx37YgCzwiKb.KjNyWgaHb9cbcoQgdIVFlYg7B77UdFm",
		Role:         RoleCandidate,
		Domain:       DomainDeveloper,
		Skill:        "Node.js, Express, MongoDB, Flutter",
		Experience:   "3 years",
		Status:       StatusApproved,
		IsVerified:   true,
	},
	{
		ID:           uuid.MustParse("6a1f6f0e-9d2c-4f9e-8b41-0c2f2f1a7aff"),
		Name:         "System Admin",
		Email:        "admin@123gmail.com",
		PasswordHash: "$2a$10$EozD2p77fUvP1Z9B69.HaehE2OQ/N8YVvQn8YfF9u9i3N/T6Yv2Q6",
		Role:         RoleAdmin,
		Domain:       DomainAI,
		Skill:        "Cloud Infrastructure, Scalability",
		Experience:   "12 years",
		Status:       StatusApproved,
		IsVerified:   true,
	},
}

// Bootstrap writes the seed fixtures if the store holds no prior state.
func Bootstrap(ctx context.Context, repo UserRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, u := range SeedUsers {
		u.CreatedAt = now
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
