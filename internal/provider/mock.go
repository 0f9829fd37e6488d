package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nunajera/assistant-relay/internal"
)

// Mock answers without any network call, for offline development of the
// circuit editor. Replies carry "ACTION:" lines the client executes.
type Mock struct{}

func (Mock) Name() string { return "mock" }

func (m Mock) Reply(_ context.Context, req internal.ChatRequest) (status int, env internal.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			status, env = http.StatusInternalServerError, internal.Failure(fmt.Sprint(r))
		}
	}()
	return http.StatusOK, internal.Success(MockReply(req.Messages), nil)
}

// MockReply picks a canned script from the latest user message.
func MockReply(messages []internal.Message) string {
	prompt := strings.ToLower(lastUserContent(messages))

	switch {
	case strings.Contains(prompt, "switch") && strings.Contains(prompt, "led"):
		return strings.Join([]string{
			"Sure, I'll add a switch and an LED, and wire them so you can toggle the light.",
			"ACTION: add_switch_at 200 200",
			"ACTION: add_led_at 360 200",
			"ACTION: connect_last_two",
		}, "\n")
	case strings.Contains(prompt, "dff") && strings.Contains(prompt, "chain"):
		return strings.Join([]string{
			"Okay, placing a chain of 4 D flip-flops horizontally.",
			"ACTION: place_chain dff 4 200 180 140",
		}, "\n")
	default:
		return "I can help with that. Tell me what components to add (example: add a switch and an LED)."
	}
}

func lastUserContent(messages []internal.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == internal.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
