// Package conversation models the chat sessions, messages and per-message
// feedback read from the collection source.
package conversation

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("record not found")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type FeedbackType string

const (
	FeedbackGood FeedbackType = "good"
	FeedbackBad  FeedbackType = "bad"
)

type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayTitle falls back to "Conversation <id>" for untitled sessions.
func (c *Conversation) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return "Conversation " + c.ID
}

// Message belongs to a conversation by ConversationID only; the reference is
// not checked.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           Role      `json:"role"`
	Model          string    `json:"model"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

func (m *Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

type Feedback struct {
	ID        string       `json:"id"`
	MessageID string       `json:"messageId"`
	Type      FeedbackType `json:"type"`
	Comment   string       `json:"comment"`
	UserID    string       `json:"userId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
