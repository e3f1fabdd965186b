// Package llm wraps hosted chat-completion APIs behind a minimal client
// interface. Replies are returned as raw text; callers own validation.
package llm

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Client performs a single, non-streaming completion request.
type Client interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}
