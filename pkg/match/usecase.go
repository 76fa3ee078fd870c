package match

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nexushq/talent-registry/pkg/auth"
	"github.com/nexushq/talent-registry/pkg/llm"
)

const (
	insightFallback = "AI analysis unavailable."
	insightEmpty    = "No AI insight available."
)

// UseCase consumes the external correlation/insight collaborator. Both
// operations degrade gracefully: a collaborator failure yields an empty
// ranking or a fixed fallback string, never an error to the caller.
type UseCase interface {
	Correlate(ctx context.Context, requirement string, candidates []auth.User) []Match
	Insight(ctx context.Context, candidate auth.User) string
}

type service struct {
	llm       llm.ChatModel
	modelName string
}

func NewService(model llm.ChatModel, modelName string) UseCase {
	return &service{llm: model, modelName: modelName}
}

func (s *service) Correlate(ctx context.Context, requirement string, candidates []auth.User) []Match {
	requirement = strings.TrimSpace(requirement)
	if requirement == "" || len(candidates) == 0 || s.llm == nil {
		return []Match{}
	}

	summaries := make([]candidateSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, candidateSummary{
			ID:         c.ID.String(),
			Name:       c.Name,
			Domain:     string(c.Domain),
			Skills:     c.Skill,
			Experience: c.Experience,
		})
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		return []Match{}
	}

	system := "Act as a recruitment engine. Reply STRICTLY with a JSON array (no markdown, no prose). Every entry has the fields id (string), matchScore (number 0-100) and reason (short string). Rank only candidates worth ranking."
	user := fmt.Sprintf(
		"Correlate the following project requirement with the candidate list.\nRequirement: %q\nCandidates: %s\n\nRank them by eligibility.",
		requirement, data,
	)

	raw, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return []Match{}
	}
	return parseMatches(raw)
}

func (s *service) Insight(ctx context.Context, candidate auth.User) string {
	if s.llm == nil {
		return insightFallback
	}
	system := "You are a technical recruiter. Provide a professional, concise \"AI Insight\" summary (max 3 sentences). Plain text only."
	user := fmt.Sprintf(
		"Analyze this candidate's profile for a technical role:\nName: %s\nDomain: %s\nSkills: %s\nExperience: %s",
		candidate.Name, candidate.Domain, candidate.Skill, candidate.Experience,
	)
	raw, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return insightFallback
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return insightEmpty
	}
	return raw
}

// parseMatches tolerates markdown fences and stray prose around the JSON
// array, and drops malformed entries instead of failing the ranking.
func parseMatches(raw string) []Match {
	raw = strings.TrimSpace(raw)
	i := strings.Index(raw, "[")
	j := strings.LastIndex(raw, "]")
	if i < 0 || j <= i {
		return []Match{}
	}
	var parsed []Match
	if err := json.Unmarshal([]byte(raw[i:j+1]), &parsed); err != nil {
		return []Match{}
	}
	out := make([]Match, 0, len(parsed))
	for _, m := range parsed {
		if strings.TrimSpace(m.ID) == "" {
			continue
		}
		if m.MatchScore < 0 {
			m.MatchScore = 0
		}
		if m.MatchScore > 100 {
			m.MatchScore = 100
		}
		out = append(out, m)
	}
	return out
}
