package usecases

import (
	"context"
	"time"

	"github.com/katalon/insights/internal/domain/conversation"
)

type mockSource struct {
	ListConversationsFunc          func(ctx context.Context) ([]*conversation.Conversation, error)
	ListMessagesFunc               func(ctx context.Context) ([]*conversation.Message, error)
	ListMessagesByConversationFunc func(ctx context.Context, conversationID string) ([]*conversation.Message, error)
	GetMessageFunc                 func(ctx context.Context, id string) (*conversation.Message, error)
	ListFeedbackFunc               func(ctx context.Context) ([]*conversation.Feedback, error)
}

func (m *mockSource) ListConversations(ctx context.Context) ([]*conversation.Conversation, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) ListMessages(ctx context.Context) ([]*conversation.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) ListMessagesByConversation(ctx context.Context, conversationID string) ([]*conversation.Message, error) {
	if m.ListMessagesByConversationFunc != nil {
		return m.ListMessagesByConversationFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockSource) GetMessage(ctx context.Context, id string) (*conversation.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(ctx, id)
	}
	return nil, conversation.ErrNotFound
}

func (m *mockSource) ListFeedback(ctx context.Context) ([]*conversation.Feedback, error) {
	if m.ListFeedbackFunc != nil {
		return m.ListFeedbackFunc(ctx)
	}
	return nil, nil
}

type mockRenderer struct {
	RenderFunc func(content string) (string, error)
	calls      int
}

func (m *mockRenderer) Render(content string) (string, error) {
	m.calls++
	if m.RenderFunc != nil {
		return m.RenderFunc(content)
	}
	return "<p>" + content + "</p>", nil
}

func minute(n int) time.Time {
	return time.Date(2024, 1, 15, 10, n, 0, 0, time.UTC)
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC)
}
