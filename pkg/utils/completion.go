package utils

import (
	"context"
	"strings"
)

// ChatMessage is one turn of a completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CleanJSONReply strips markdown fences some models wrap around JSON.
func CleanJSONReply(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// CompletionClientInterface is the capability boundary to the external LLM.
// Implementations must return a JSON object as the raw completion text.
// Orchestrators depend on this interface so tests can swap in fakes.
type CompletionClientInterface interface {
	CompleteJSON(ctx context.Context, messages []ChatMessage) (string, error)
}
