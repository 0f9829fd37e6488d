// Package relay forwards chat requests to the configured upstream and
// normalizes whatever comes back into an Envelope.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"unicode/utf8"

	"github.com/tidwall/sjson"

	"github.com/nunajera/assistant-relay/internal"
	"github.com/nunajera/assistant-relay/internal/config"
	"github.com/nunajera/assistant-relay/internal/diag"
	"github.com/nunajera/assistant-relay/internal/provider"
)

const (
	errNoAPIKey     = "No API key configured on server (GROQ_API_KEY or OPENAI_API_KEY)"
	errUpstream     = "Upstream error"
	maxSnippetBytes = 800
	maxStackBytes   = 1000
)

// Relay implements provider.ChatProvider against a real completion API.
type Relay struct {
	upstream    provider.Upstream
	client      *provider.Client
	log         diag.Logger
	model       string
	maxTokens   int
	temperature float64
}

var _ provider.ChatProvider = (*Relay)(nil)

func New(cfg *config.Config, client *provider.Client, log diag.Logger) *Relay {
	return &Relay{
		upstream:    provider.Choose(cfg),
		client:      client,
		log:         diag.Safe(log),
		model:       cfg.DefaultModel,
		maxTokens:   cfg.DefaultMaxTokens,
		temperature: cfg.Temperature,
	}
}

func (r *Relay) Name() string { return r.upstream.Name }

func (r *Relay) DefaultModel() string { return r.model }

type completionRequest struct {
	Model       string             `json:"model"`
	Messages    []internal.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

func (r *Relay) shape(req internal.ChatRequest) completionRequest {
	out := completionRequest{
		Model:       req.Model,
		Messages:    make([]internal.Message, 0, len(req.Messages)),
		MaxTokens:   req.MaxTokens,
		Temperature: r.temperature,
	}
	if out.Model == "" {
		out.Model = r.model
	}
	if out.MaxTokens <= 0 {
		out.MaxTokens = r.maxTokens
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, internal.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// Reply never panics: anything unexpected becomes a 500 envelope.
func (r *Relay) Reply(ctx context.Context, req internal.ChatRequest) (status int, env internal.Envelope) {
	tag := "[proxy]"
	if id := diag.RequestID(ctx); id != "" {
		tag = "[proxy " + id + "]"
	}
	defer func() {
		if rec := recover(); rec != nil {
			stack := string(debug.Stack())
			if len(stack) > maxStackBytes {
				stack = stack[:maxStackBytes]
			}
			r.log.Log(tag, "handler exception:", fmt.Sprint(rec), stack)
			status, env = http.StatusInternalServerError, internal.Failure(fmt.Sprint(rec))
		}
	}()

	if !r.upstream.Configured() {
		r.log.Log(tag, "no API key configured")
		return http.StatusInternalServerError, internal.Failure(errNoAPIKey)
	}

	call := r.shape(req)
	r.log.Log(tag, "incoming request provider=", r.upstream.Name, "model=", call.Model, "messages=", len(call.Messages))
	if len(call.Messages) > 0 {
		r.log.Log(tag, "first message snippet:", snippet(call.Messages[0].Content))
	}

	payload, err := json.Marshal(call)
	if err != nil {
		r.log.Log(tag, "encode request:", err)
		return http.StatusInternalServerError, internal.Failure(err.Error())
	}

	// Only the timeout may cancel an upstream call.
	ctx = context.WithoutCancel(ctx)

	result := r.client.Complete(ctx, r.upstream, payload)
	r.log.Log(tag, "upstream result status=", result.Status, "ok=", result.OK)

	if !result.OK && result.Status == http.StatusNotFound {
		result = r.tryVariants(ctx, tag, call.Model, payload, result)
	}

	if !result.OK {
		r.log.Log(tag, "upstream final failure:", result.Status, firstNonEmpty(result.Err, result.Text))
		code := result.Status
		if code == 0 {
			code = http.StatusInternalServerError
		}
		return code, internal.Failure(firstNonEmpty(result.Text, result.Err, errUpstream))
	}

	reply := ExtractReply(result.JSON)
	r.log.Log(tag, "reply length:", len(reply))
	return http.StatusOK, internal.Success(reply, result.JSON)
}

// tryVariants walks ModelVariants once. It returns on the first success or
// the first outcome that is not a 404.
func (r *Relay) tryVariants(ctx context.Context, tag, model string, payload []byte, last internal.UpstreamResult) internal.UpstreamResult {
	r.log.Log(tag, "model not found, trying variants for", model)

	tried := map[string]bool{model: true}
	for _, v := range ModelVariants(model) {
		if v == "" || tried[v] {
			continue
		}
		tried[v] = true

		body, err := sjson.SetBytes(payload, "model", v)
		if err != nil {
			r.log.Log(tag, "rewrite model:", err)
			return last
		}

		r.log.Log(tag, "trying variant:", v)
		last = r.client.Complete(ctx, r.upstream, body)
		r.log.Log(tag, "variant", v, "status=", last.Status, "ok=", last.OK)

		if last.OK || last.Status != http.StatusNotFound {
			return last
		}
	}
	return last
}

func snippet(s string) string {
	if len(s) <= maxSnippetBytes {
		return s
	}
	s = s[:maxSnippetBytes]
	// don't cut a UTF-8 rune in half
	for !utf8.ValidString(s) && len(s) > 0 {
		s = s[:len(s)-1]
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
