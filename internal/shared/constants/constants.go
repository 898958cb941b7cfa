package constants

const (
	// Default pagination
	DefaultPage = 1

	// Page sizes are fixed per view
	ConversationPageSize = 8
	FeedbackPageSize     = 8
	TicketPageSize       = 10

	// FilterAll is the categorical "no constraint" value
	FilterAll = "all"

	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgNotFound            = "Not found"
	ErrMsgTicketNotFound      = "Ticket not found"
	ErrMsgTicketFieldsMissing = "Missing required fields: subject/title and description are required"
	ErrMsgMissingConversation = "Missing conversationId"
	ErrMsgMissingID           = "Missing id"
	ErrMsgCollectionLoad      = "collection load failed"
	ErrMsgConversationMissing = "Conversation not found"
	ErrMsgTicketDeleted       = "Ticket deleted successfully"
	ErrMsgInvalidBody         = "Invalid request body"
)
