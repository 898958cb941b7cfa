package dto

import (
	"time"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/query"
)

// ConversationDTO is a conversation row of the log view. Title is always
// set; untitled sessions fall back to "Conversation <id>".
type ConversationDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToConversationDTO(c *conversation.Conversation) ConversationDTO {
	return ConversationDTO{
		ID:        c.ID,
		Title:     c.DisplayTitle(),
		CreatedAt: c.CreatedAt,
	}
}

type ConversationViewDTO struct {
	query.Page[ConversationDTO]
	ActiveFilterCount int             `json:"activeFilterCount"`
	State             query.ViewState `json:"state"`
}

// ConversationDetailDTO is the message thread of one conversation, oldest
// first, each message carrying its feedback. FeedbackAvailable is false when
// the feedback collection could not be read.
type ConversationDetailDTO struct {
	ConversationID    string                          `json:"conversationId"`
	Messages          []conversation.AnnotatedMessage `json:"messages"`
	Total             int                             `json:"total"`
	FeedbackAvailable bool                            `json:"feedbackAvailable"`
}

// FeedbackRowDTO is a feedback entry joined with the message it rates.
type FeedbackRowDTO struct {
	ID        string    `json:"id"`
	MessageID string    `json:"messageId"`
	Type      string    `json:"type"`
	Comment   string    `json:"comment"`
	UserID    string    `json:"userId,omitempty"`
	Model     string    `json:"model"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedbackViewDTO struct {
	query.Page[FeedbackRowDTO]
	ActiveFilterCount int             `json:"activeFilterCount"`
	Models            []string        `json:"models"`
	State             query.ViewState `json:"state"`
}
