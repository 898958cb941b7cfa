package http

import (
	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	conversationUsecases "github.com/katalon/insights/internal/application/conversation/usecases"
	ticketUsecases "github.com/katalon/insights/internal/application/ticket/usecases"
	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/infrastructure/cache"
	"github.com/katalon/insights/internal/infrastructure/config"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/services/markdown"
)

// allUseCases holds every use case the handlers depend on.
type allUseCases struct {
	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	ticketViewUC   *ticketUsecases.ListTicketViewUseCase
	ticketOptsUC   *ticketUsecases.GetTicketOptionsUseCase

	// Conversation
	listConversationsUC *conversationUsecases.ListConversationsUseCase
	conversationViewUC  *conversationUsecases.ListConversationViewUseCase
	conversationUC      *conversationUsecases.GetConversationDetailUseCase
	messagesUC          *conversationUsecases.MessagesUseCase
	listFeedbackUC      *conversationUsecases.ListFeedbackUseCase
	feedbackViewUC      *conversationUsecases.ListFeedbackViewUseCase

	// Analytics
	dashboardStatsUC *analyticsUsecases.GetDashboardStatsUseCase
}

func newUseCases(deps Dependencies, cfg *config.Config, log logger.Interface) *allUseCases {
	statsCache := deps.StatsCache
	if statsCache == nil {
		statsCache = cache.NopStatsCache{}
	}

	return &allUseCases{
		createTicketUC: ticketUsecases.NewCreateTicketUseCase(deps.Tickets, deps.TicketIDs, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(deps.Tickets, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(deps.Tickets, log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(deps.Tickets, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(deps.Tickets, log),
		ticketViewUC:   ticketUsecases.NewListTicketViewUseCase(deps.Tickets, log),
		ticketOptsUC:   ticketUsecases.NewGetTicketOptionsUseCase(log),

		listConversationsUC: conversationUsecases.NewListConversationsUseCase(deps.Source, log),
		conversationViewUC:  conversationUsecases.NewListConversationViewUseCase(deps.Source, log),
		conversationUC:      conversationUsecases.NewGetConversationDetailUseCase(deps.Source, markdown.NewRenderer(), log),
		messagesUC:          conversationUsecases.NewMessagesUseCase(deps.Source, log),
		listFeedbackUC:      conversationUsecases.NewListFeedbackUseCase(deps.Source, log),
		feedbackViewUC:      conversationUsecases.NewListFeedbackViewUseCase(deps.Source, log),

		dashboardStatsUC: analyticsUsecases.NewGetDashboardStatsUseCase(
			deps.Source,
			statsCache,
			cache.StatsKey,
			analytics.TimeRange(cfg.Dashboard.DefaultTimeRange),
			log,
		),
	}
}
