package conversation

import "context"

// Source is the read-only collection store behind the dashboard. GetMessage
// returns an error wrapping ErrNotFound for unknown ids.
type Source interface {
	ListConversations(ctx context.Context) ([]*Conversation, error)
	ListMessages(ctx context.Context) ([]*Message, error)
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]*Message, error)
	GetMessage(ctx context.Context, id string) (*Message, error)
	ListFeedback(ctx context.Context) ([]*Feedback, error)
}
