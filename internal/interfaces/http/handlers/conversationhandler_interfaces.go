package handlers

import (
	"context"

	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/application/conversation/usecases"
	"github.com/katalon/insights/internal/domain/conversation"
)

// Use case interfaces for ConversationHandler and FeedbackHandler - enable unit testing with mocks.

type listConversationsUseCase interface {
	Execute(ctx context.Context) ([]*conversation.Conversation, error)
}

type listConversationViewUseCase interface {
	Execute(ctx context.Context, q usecases.ConversationViewQuery) (*dto.ConversationViewDTO, error)
}

type getConversationDetailUseCase interface {
	Execute(ctx context.Context, q usecases.GetConversationDetailQuery) (*dto.ConversationDetailDTO, error)
}

type messagesUseCase interface {
	List(ctx context.Context) ([]*conversation.Message, error)
	ListByConversation(ctx context.Context, conversationID string) ([]*conversation.Message, error)
	Get(ctx context.Context, id string) (*conversation.Message, error)
}

type listFeedbackUseCase interface {
	Execute(ctx context.Context) ([]*conversation.Feedback, error)
}

type listFeedbackViewUseCase interface {
	Execute(ctx context.Context, q usecases.FeedbackViewQuery) (*dto.FeedbackViewDTO, error)
}
