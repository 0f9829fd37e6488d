package internal

import "encoding/json"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/assistant.
type ChatRequest struct {
	Messages  []Message `json:"messages"`
	Model     string    `json:"model,omitempty"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// UpstreamResult is the outcome of one call to the completion API.
// A transport failure leaves Status at 0 and fills Err.
type UpstreamResult struct {
	OK     bool
	Status int
	Text   string
	JSON   json.RawMessage
	Err    string
}

// Envelope is the uniform response of the assistant endpoint.
type Envelope struct {
	OK    bool
	Reply string
	Raw   json.RawMessage
	Error string
}

func Success(reply string, raw json.RawMessage) Envelope {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	return Envelope{OK: true, Reply: reply, Raw: raw}
}

func Failure(msg string) Envelope {
	return Envelope{Error: msg}
}

// MarshalJSON writes {ok, reply, raw} on success and {ok, error} otherwise.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if !e.OK {
		return json.Marshal(struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}{false, e.Error})
	}
	raw := e.Raw
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	return json.Marshal(struct {
		OK    bool            `json:"ok"`
		Reply string          `json:"reply"`
		Raw   json.RawMessage `json:"raw"`
	}{true, e.Reply, raw})
}
