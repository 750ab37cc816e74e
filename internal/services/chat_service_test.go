package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mascot-chat/internal/openai"
)

type stubUpstream struct {
	configured    bool
	reply         string
	err           error
	completeCalls int
	modelCount    int
}

func (s *stubUpstream) Configured() bool { return s.configured }

func (s *stubUpstream) Complete(_ context.Context, _ []openai.Message) (string, error) {
	s.completeCalls++
	return s.reply, s.err
}

func (s *stubUpstream) CountModels(_ context.Context) (int, error) {
	return s.modelCount, s.err
}

func TestReplyReturnsUpstreamContent(t *testing.T) {
	stub := &stubUpstream{configured: true, reply: "Hi there!"}
	svc := NewChatService(stub)

	reply, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)
	assert.Equal(t, 1, stub.completeCalls)
}

func TestReplySubstitutesApologyForEmptyChoice(t *testing.T) {
	stub := &stubUpstream{configured: true, reply: ""}
	svc := NewChatService(stub)

	reply, err := svc.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ReplyEmptyChoice, reply)
}

func TestFriendlyReply(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReply  string
	}{
		{
			name:       "quota by status",
			err:        &openai.APIError{StatusCode: http.StatusTooManyRequests, Detail: "rate limited"},
			wantStatus: http.StatusTooManyRequests,
			wantReply:  ReplyQuotaReached,
		},
		{
			name:       "quota by code",
			err:        &openai.APIError{StatusCode: http.StatusForbidden, Code: "insufficient_quota", Detail: "quota"},
			wantStatus: http.StatusForbidden,
			wantReply:  ReplyQuotaReached,
		},
		{
			name:       "upstream 500",
			err:        &openai.APIError{StatusCode: http.StatusInternalServerError, Detail: "boom"},
			wantStatus: http.StatusInternalServerError,
			wantReply:  ReplyUpstreamDown,
		},
		{
			name:       "transport failure defaults to 502",
			err:        &openai.APIError{Detail: "connection refused"},
			wantStatus: http.StatusBadGateway,
			wantReply:  ReplyUpstreamDown,
		},
		{
			name:       "plain error defaults to 502",
			err:        errors.New("context deadline exceeded"),
			wantStatus: http.StatusBadGateway,
			wantReply:  ReplyUpstreamDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reply := FriendlyReply(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantReply, reply)
		})
	}
}
