package dynamo

import (
	"time"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/biztime"
)

// Item shapes as stored. Absent attributes unmarshal to zero values.

type conversationItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Timestamp string `dynamodbav:"timestamp"`
}

type messageItem struct {
	ID             string `dynamodbav:"id"`
	ConversationID string `dynamodbav:"conversationId"`
	Role           string `dynamodbav:"role"`
	Model          string `dynamodbav:"model"`
	Content        string `dynamodbav:"content"`
	Timestamp      string `dynamodbav:"timestamp"`
}

type feedbackItem struct {
	ID        string `dynamodbav:"id"`
	MessageID string `dynamodbav:"messageId"`
	Type      string `dynamodbav:"type"`
	Comment   string `dynamodbav:"comment"`
	UserID    string `dynamodbav:"userId"`
	Timestamp string `dynamodbav:"timestamp"`
}

type keyItem struct {
	ID string `dynamodbav:"id"`
}

// parseTime treats unparseable timestamps like missing ones.
func parseTime(s string) time.Time {
	parsed, err := biztime.ParseTimestamp(s)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func toConversation(it conversationItem) *conversation.Conversation {
	return &conversation.Conversation{
		ID:        it.ID,
		Title:     it.Title,
		CreatedAt: parseTime(it.Timestamp),
	}
}

func toMessage(it messageItem) *conversation.Message {
	return &conversation.Message{
		ID:             it.ID,
		ConversationID: it.ConversationID,
		Role:           conversation.Role(it.Role),
		Model:          it.Model,
		Content:        it.Content,
		Timestamp:      parseTime(it.Timestamp),
	}
}

func toFeedback(it feedbackItem) *conversation.Feedback {
	return &conversation.Feedback{
		ID:        it.ID,
		MessageID: it.MessageID,
		Type:      conversation.FeedbackType(it.Type),
		Comment:   it.Comment,
		UserID:    it.UserID,
		CreatedAt: parseTime(it.Timestamp),
	}
}
