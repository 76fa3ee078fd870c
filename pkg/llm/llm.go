package llm

import "context"

// ChatModel is the minimal port to the external text-completion collaborator.
// Consumers treat it as versionless and unreliable: replies are validated
// defensively and a failing call is never surfaced to the enclosing request.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
