package provider

import (
	"context"

	"github.com/nunajera/assistant-relay/internal"
	"github.com/nunajera/assistant-relay/internal/config"
)

// ChatProvider answers a chat request with an HTTP status and an envelope.
// Implementations never return an error: every failure is an envelope.
type ChatProvider interface {
	Name() string
	Reply(ctx context.Context, req internal.ChatRequest) (int, internal.Envelope)
}

// Upstream is a chat-completions endpoint plus the key used to call it.
type Upstream struct {
	Name     string
	APIKey   string
	Endpoint string
}

func (u Upstream) Configured() bool { return u.APIKey != "" }

// Choose prefers groq when its key is set and falls back to openai.
// The returned upstream has no key when neither is configured.
func Choose(cfg *config.Config) Upstream {
	if cfg.GroqAPIKey != "" {
		return Upstream{Name: "groq", APIKey: cfg.GroqAPIKey, Endpoint: cfg.GroqEndpoint}
	}
	return Upstream{Name: "openai", APIKey: cfg.OpenAIAPIKey, Endpoint: cfg.OpenAIEndpoint}
}
