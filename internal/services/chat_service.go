package services

import (
	"context"
	"errors"
	"net/http"

	"mascot-chat/internal/openai"
)

const systemPrompt = "You are a helpful, concise, friendly, safe assistant."

// Fixed caller-facing replies. Upstream error detail never leaves the server.
const (
	ReplyNotConfigured = "⚠️ Server not configured with OPENAI_API_KEY."
	ReplyQuotaReached  = "⚠️ Demo usage limit reached. Please try again later."
	ReplyUpstreamDown  = "⚠️ Sorry, I had trouble reaching the AI service. Please try again."
	ReplyEmptyChoice   = "Sorry, I could not come up with a reply."
)

// UpstreamClient is the outbound surface of the OpenAI client. Tests supply
// a counting stub.
type UpstreamClient interface {
	Configured() bool
	Complete(ctx context.Context, messages []openai.Message) (string, error)
	CountModels(ctx context.Context) (int, error)
}

type ChatService struct {
	client UpstreamClient
}

func NewChatService(client UpstreamClient) *ChatService {
	return &ChatService{client: client}
}

func (s *ChatService) Configured() bool {
	return s.client.Configured()
}

// Reply sends one completion for the user message and returns the assistant
// text. The persona and sampling settings are fixed; an upstream answer with
// no usable choice falls back to a canned apology.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	reply, err := s.client.Complete(ctx, []openai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		return "", err
	}
	if reply == "" {
		return ReplyEmptyChoice, nil
	}
	return reply, nil
}

// CountModels proxies the upstream model listing for the ping diagnostic.
func (s *ChatService) CountModels(ctx context.Context) (int, error) {
	return s.client.CountModels(ctx)
}

// FriendlyReply maps an upstream failure to the HTTP status and the fixed
// reply shown to the caller. Pure over the error value: quota exhaustion
// (status 429 or code insufficient_quota) gets its own message, everything
// else the generic one; the status mirrors the upstream when known and
// defaults to 502.
func FriendlyReply(err error) (int, string) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == "insufficient_quota" {
			return status, ReplyQuotaReached
		}
		return status, ReplyUpstreamDown
	}
	return http.StatusBadGateway, ReplyUpstreamDown
}
