package handlers

import (
	"context"

	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/application/conversation/usecases"
	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/domain/conversation"
)

type mockListConversationsUC struct {
	result []*conversation.Conversation
	err    error
}

func (m *mockListConversationsUC) Execute(_ context.Context) ([]*conversation.Conversation, error) {
	return m.result, m.err
}

type mockConversationViewUC struct {
	got    usecases.ConversationViewQuery
	result *dto.ConversationViewDTO
	err    error
}

func (m *mockConversationViewUC) Execute(_ context.Context, q usecases.ConversationViewQuery) (*dto.ConversationViewDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockConversationDetailUC struct {
	got    usecases.GetConversationDetailQuery
	result *dto.ConversationDetailDTO
	err    error
}

func (m *mockConversationDetailUC) Execute(_ context.Context, q usecases.GetConversationDetailQuery) (*dto.ConversationDetailDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockMessagesUC struct {
	listFunc           func() ([]*conversation.Message, error)
	byConversationFunc func(conversationID string) ([]*conversation.Message, error)
	getFunc            func(id string) (*conversation.Message, error)
}

func (m *mockMessagesUC) List(_ context.Context) ([]*conversation.Message, error) {
	return m.listFunc()
}

func (m *mockMessagesUC) ListByConversation(_ context.Context, conversationID string) ([]*conversation.Message, error) {
	return m.byConversationFunc(conversationID)
}

func (m *mockMessagesUC) Get(_ context.Context, id string) (*conversation.Message, error) {
	return m.getFunc(id)
}

type mockListFeedbackUC struct {
	result []*conversation.Feedback
	err    error
}

func (m *mockListFeedbackUC) Execute(_ context.Context) ([]*conversation.Feedback, error) {
	return m.result, m.err
}

type mockFeedbackViewUC struct {
	got    usecases.FeedbackViewQuery
	result *dto.FeedbackViewDTO
	err    error
}

func (m *mockFeedbackViewUC) Execute(_ context.Context, q usecases.FeedbackViewQuery) (*dto.FeedbackViewDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockStatsUC struct {
	got    analyticsUsecases.GetDashboardStatsQuery
	result *analytics.Stats
	err    error
}

func (m *mockStatsUC) Execute(_ context.Context, q analyticsUsecases.GetDashboardStatsQuery) (*analytics.Stats, error) {
	m.got = q
	return m.result, m.err
}
