package usecases

import (
	"context"
	"strings"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
)

// MessagesUseCase serves the raw message endpoints.
type MessagesUseCase struct {
	source conversation.Source
	logger logger.Interface
}

func NewMessagesUseCase(source conversation.Source, logger logger.Interface) *MessagesUseCase {
	return &MessagesUseCase{source: source, logger: logger}
}

func (uc *MessagesUseCase) List(ctx context.Context) ([]*conversation.Message, error) {
	messages, err := uc.source.ListMessages(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load messages", "error", err)
		return nil, loadFailed(err)
	}
	return messages, nil
}

// ListByConversation returns the conversation's messages in source order.
func (uc *MessagesUseCase) ListByConversation(ctx context.Context, conversationID string) ([]*conversation.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, errors.NewValidationError(constants.ErrMsgMissingConversation)
	}
	messages, err := uc.source.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		uc.logger.Errorw("failed to load conversation messages", "conversation_id", conversationID, "error", err)
		return nil, loadFailed(err)
	}
	return messages, nil
}

func (uc *MessagesUseCase) Get(ctx context.Context, id string) (*conversation.Message, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError(constants.ErrMsgMissingID)
	}
	m, err := uc.source.GetMessage(ctx, id)
	if err != nil {
		uc.logger.Warnw("failed to get message", "message_id", id, "error", err)
		return nil, lookupFailed(err)
	}
	return m, nil
}
