package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/query"
)

// tenConversations are C1..C10 created on 1..10 January.
func tenConversations() *mockSource {
	return &mockSource{
		ListConversationsFunc: func(ctx context.Context) ([]*conversation.Conversation, error) {
			out := make([]*conversation.Conversation, 0, 10)
			for i := 1; i <= 10; i++ {
				title := fmt.Sprintf("Topic %d", i)
				if i == 3 {
					title = ""
				}
				out = append(out, &conversation.Conversation{ID: fmt.Sprintf("C%d", i), Title: title, CreatedAt: day(i)})
			}
			return out, nil
		},
	}
}

func conversationIDs(rows []dto.ConversationDTO) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestListConversationViewUseCase_Execute_Pagination(t *testing.T) {
	uc := NewListConversationViewUseCase(tenConversations(), logger.NewNop())

	page1, err := uc.Execute(context.Background(), ConversationViewQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"C10", "C9", "C8", "C7", "C6", "C5", "C4", "C3"}, conversationIDs(page1.Items))
	assert.Equal(t, "Showing 1 to 8 of 10 entries", page1.Summary)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrevious)
	assert.Zero(t, page1.ActiveFilterCount)

	page2, err := uc.Execute(context.Background(), ConversationViewQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"C2", "C1"}, conversationIDs(page2.Items))
	assert.Equal(t, "Showing 9 to 10 of 10 entries", page2.Summary)
	assert.Equal(t, 2, page2.State.Page)
	assert.Equal(t, query.Desc, page2.State.Sort)
}

func TestListConversationViewUseCase_Execute_StateClampsPage(t *testing.T) {
	uc := NewListConversationViewUseCase(tenConversations(), logger.NewNop())

	view, err := uc.Execute(context.Background(), ConversationViewQuery{Search: "topic 1", Sort: query.Asc, Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page.Page)
	assert.Equal(t, query.ViewState{Filters: map[string]string{"search": "topic 1"}, Sort: query.Asc, Page: 1}, view.State)
}

func TestListConversationViewUseCase_Execute_Filters(t *testing.T) {
	uc := NewListConversationViewUseCase(tenConversations(), logger.NewNop())

	tests := []struct {
		name   string
		query  ConversationViewQuery
		want   []string
		active int
	}{
		{name: "oldest first", query: ConversationViewQuery{Sort: query.Asc}, want: []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8"}},
		{name: "search title", query: ConversationViewQuery{Search: "topic 1"}, want: []string{"C10", "C1"}},
		{name: "search display title", query: ConversationViewQuery{Search: "conversation c3"}, want: []string{"C3"}},
		{name: "inclusive dates", query: ConversationViewQuery{StartDate: "2024-01-04", EndDate: "2024-01-06"}, want: []string{"C6", "C5", "C4"}, active: 2},
		{name: "open end", query: ConversationViewQuery{StartDate: "2024-01-09"}, want: []string{"C10", "C9"}, active: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := uc.Execute(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, conversationIDs(view.Items))
			assert.Equal(t, tt.active, view.ActiveFilterCount)
		})
	}
}

func TestListConversationViewUseCase_Execute_DisplayTitle(t *testing.T) {
	view, err := NewListConversationViewUseCase(tenConversations(), logger.NewNop()).Execute(context.Background(), ConversationViewQuery{Search: "C3"})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Conversation C3", view.Items[0].Title)
}

func TestListConversationsUseCase_Execute_Error(t *testing.T) {
	src := &mockSource{
		ListConversationsFunc: func(ctx context.Context) ([]*conversation.Conversation, error) {
			return nil, stderrors.New("dial tcp: connection refused")
		},
	}

	_, err := NewListConversationsUseCase(src, logger.NewNop()).Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))

	_, err = NewListConversationViewUseCase(src, logger.NewNop()).Execute(context.Background(), ConversationViewQuery{})
	assert.True(t, errors.IsUpstreamError(err))
}
