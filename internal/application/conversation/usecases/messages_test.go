package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
)

func TestMessagesUseCase_ListByConversation(t *testing.T) {
	var gotID string
	src := &mockSource{
		ListMessagesByConversationFunc: func(ctx context.Context, id string) ([]*conversation.Message, error) {
			gotID = id
			return []*conversation.Message{{ID: "M1", ConversationID: id}}, nil
		},
	}
	uc := NewMessagesUseCase(src, logger.NewNop())

	msgs, err := uc.ListByConversation(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "C1", gotID)
	assert.Len(t, msgs, 1)

	_, err = uc.ListByConversation(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, constants.ErrMsgMissingConversation, errors.GetAppError(err).Message)
}

func TestMessagesUseCase_Get(t *testing.T) {
	src := &mockSource{
		GetMessageFunc: func(ctx context.Context, id string) (*conversation.Message, error) {
			switch id {
			case "M1":
				return &conversation.Message{ID: "M1"}, nil
			case "BROKEN":
				return nil, stderrors.New("access denied")
			default:
				return nil, fmt.Errorf("message %s: %w", id, conversation.ErrNotFound)
			}
		},
	}
	uc := NewMessagesUseCase(src, logger.NewNop())

	m, err := uc.Get(context.Background(), "M1")
	require.NoError(t, err)
	assert.Equal(t, "M1", m.ID)

	_, err = uc.Get(context.Background(), "M404")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, constants.ErrMsgNotFound, errors.GetAppError(err).Message)

	_, err = uc.Get(context.Background(), "BROKEN")
	assert.True(t, errors.IsUpstreamError(err))
}

func TestMessagesUseCase_List_Error(t *testing.T) {
	src := &mockSource{
		ListMessagesFunc: func(ctx context.Context) ([]*conversation.Message, error) {
			return nil, stderrors.New("boom")
		},
	}

	_, err := NewMessagesUseCase(src, logger.NewNop()).List(context.Background())
	assert.True(t, errors.IsUpstreamError(err))
}
