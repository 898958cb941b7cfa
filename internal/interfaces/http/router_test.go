package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/infrastructure/config"
	"github.com/katalon/insights/internal/infrastructure/repository"
	sharedConfig "github.com/katalon/insights/internal/shared/config"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	conversations []*conversation.Conversation
	messages      []*conversation.Message
	feedback      []*conversation.Feedback
}

func (s *stubSource) ListConversations(context.Context) ([]*conversation.Conversation, error) {
	return s.conversations, nil
}

func (s *stubSource) ListMessages(context.Context) ([]*conversation.Message, error) {
	return s.messages, nil
}

func (s *stubSource) ListMessagesByConversation(_ context.Context, id string) ([]*conversation.Message, error) {
	var out []*conversation.Message
	for _, m := range s.messages {
		if m.ConversationID == id {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubSource) GetMessage(_ context.Context, id string) (*conversation.Message, error) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("message %s: %w", id, conversation.ErrNotFound)
}

func (s *stubSource) ListFeedback(context.Context) ([]*conversation.Feedback, error) {
	return s.feedback, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			WriteRateLimit: 2,
		},
		Dashboard: sharedConfig.DashboardConfig{DefaultTimeRange: "week"},
	}
}

func newTestRouter(t *testing.T, redisClient *redis.Client) *gin.Engine {
	t.Helper()
	ts := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	source := &stubSource{
		conversations: []*conversation.Conversation{{ID: "c1", Title: "Login help", CreatedAt: ts}},
		messages: []*conversation.Message{
			{ID: "m1", ConversationID: "c1", Role: conversation.RoleUser, Content: "How do I log in?", Timestamp: ts},
			{ID: "m2", ConversationID: "c1", Role: conversation.RoleAssistant, Model: "gpt-4o", Content: "Use **SSO**.", Timestamp: ts.Add(time.Minute)},
		},
		feedback: []*conversation.Feedback{{ID: "f1", MessageID: "m2", Type: conversation.FeedbackGood, CreatedAt: ts.Add(2 * time.Minute)}},
	}

	r := NewRouter(Dependencies{
		Source:    source,
		Tickets:   repository.NewMemoryTicketRepository(),
		TicketIDs: ticket.LengthIDGenerator{},
		Redis:     redisClient,
	}, testConfig(), logger.NewNop())
	r.SetupRoutes()
	return r.GetEngine()
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Routes(t *testing.T) {
	engine := newTestRouter(t, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		contains string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK, contains: "healthy"},
		{name: "conversations", method: http.MethodGet, path: "/api/conversations", wantCode: http.StatusOK, contains: `"c1"`},
		{name: "conversation view", method: http.MethodGet, path: "/api/conversations/view?search=login", wantCode: http.StatusOK, contains: `"total":1`},
		{name: "conversation detail", method: http.MethodGet, path: "/api/conversations/c1", wantCode: http.StatusOK, contains: "contentHtml"},
		{name: "unknown conversation", method: http.MethodGet, path: "/api/conversations/zz", wantCode: http.StatusNotFound},
		{name: "messages", method: http.MethodGet, path: "/api/messages", wantCode: http.StatusOK, contains: `"m2"`},
		{name: "messages of conversation", method: http.MethodGet, path: "/api/messages/conversation?conversationId=c1", wantCode: http.StatusOK, contains: `"m1"`},
		{name: "messages without conversation", method: http.MethodGet, path: "/api/messages/conversation", wantCode: http.StatusBadRequest, contains: constants.ErrMsgMissingConversation},
		{name: "message", method: http.MethodGet, path: "/api/messages/m1", wantCode: http.StatusOK},
		{name: "unknown message", method: http.MethodGet, path: "/api/messages/nope", wantCode: http.StatusNotFound, contains: constants.ErrMsgNotFound},
		{name: "feedback", method: http.MethodGet, path: "/api/feedbacks", wantCode: http.StatusOK, contains: `"f1"`},
		{name: "feedback view", method: http.MethodGet, path: "/api/feedbacks/view?type=good", wantCode: http.StatusOK, contains: `"gpt-4o"`},
		{name: "stats", method: http.MethodGet, path: "/api/dashboard/stats?timeRange=all", wantCode: http.StatusOK, contains: "totalQuestions"},
		{name: "stats bad range", method: http.MethodGet, path: "/api/dashboard/stats?timeRange=decade", wantCode: http.StatusBadRequest},
		{name: "ticket options", method: http.MethodGet, path: "/api/tickets/options", wantCode: http.StatusOK, contains: "products"},
		{name: "ticket view", method: http.MethodGet, path: "/api/tickets/view", wantCode: http.StatusOK, contains: `"items":[]`},
		{name: "navigation", method: http.MethodPost, path: "/api/navigation/reduce", body: `{"event":{"type":"select","kind":"feedback","id":"f1"}}`, wantCode: http.StatusOK, contains: `"f1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(engine, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
			assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))
		})
	}
}

func TestRouter_TicketLifecycle(t *testing.T) {
	engine := newTestRouter(t, nil)

	w := do(engine, http.MethodPost, "/api/tickets", `{"title":"Login fails","description":"SSO loop"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"id":"TICK-001"`)

	w = do(engine, http.MethodPut, "/api/tickets/TICK-001", `{"product":"TestOps"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"product":"TestOps"`)
	assert.Contains(t, w.Body.String(), `"subject":"Login fails"`)

	w = do(engine, http.MethodGet, "/api/tickets", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TICK-001")

	w = do(engine, http.MethodDelete, "/api/tickets/TICK-001", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(engine, http.MethodGet, "/api/tickets/TICK-001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(engine, http.MethodPost, "/api/tickets", `{"subject":"no description"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_TicketWritesAreRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	engine := newTestRouter(t, client)

	for i := 0; i < 2; i++ {
		w := do(engine, http.MethodPost, "/api/tickets", `{"subject":"s","description":"d"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(engine, http.MethodPost, "/api/tickets", `{"subject":"s","description":"d"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// reads are never limited
	w = do(engine, http.MethodGet, "/api/tickets", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
