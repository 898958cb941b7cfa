package http

import (
	"github.com/katalon/insights/internal/interfaces/http/handlers"
	ticketHandlers "github.com/katalon/insights/internal/interfaces/http/handlers/ticket"
	"github.com/katalon/insights/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler       *ticketHandlers.TicketHandler
	conversationHandler *handlers.ConversationHandler
	feedbackHandler     *handlers.FeedbackHandler
	dashboardHandler    *handlers.DashboardHandler
	navigationHandler   *handlers.NavigationHandler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.updateTicketUC,
			ucs.deleteTicketUC,
			ucs.listTicketsUC,
			ucs.ticketViewUC,
			ucs.ticketOptsUC,
			log.Named("ticket"),
		),
		conversationHandler: handlers.NewConversationHandler(
			ucs.listConversationsUC,
			ucs.conversationViewUC,
			ucs.conversationUC,
			ucs.messagesUC,
			log.Named("conversation"),
		),
		feedbackHandler:   handlers.NewFeedbackHandler(ucs.listFeedbackUC, ucs.feedbackViewUC, log.Named("feedback")),
		dashboardHandler:  handlers.NewDashboardHandler(ucs.dashboardStatsUC, log.Named("dashboard")),
		navigationHandler: handlers.NewNavigationHandler(log.Named("navigation")),
	}
}
