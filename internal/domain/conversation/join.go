package conversation

import (
	"slices"
	"time"

	"github.com/katalon/insights/internal/shared/mapper"
)

// Annotation is the feedback attached to one message in the detail view.
type Annotation struct {
	Type    string `json:"type"`
	Comment string `json:"comment"`
}

// IndexFeedback keys feedback by message id. When a message has several
// entries the last one wins; entries without a message id are dropped.
func IndexFeedback(feedback []*Feedback) map[string]Annotation {
	byMessage := mapper.IndexBy(feedback, func(f *Feedback) string { return f.MessageID })
	out := make(map[string]Annotation, len(byMessage))
	for id, f := range byMessage {
		out[id] = Annotation{Type: string(f.Type), Comment: f.Comment}
	}
	return out
}

// AnnotatedMessage is a message joined with its feedback.
type AnnotatedMessage struct {
	*Message
	Annotation
	ContentHTML string `json:"contentHtml,omitempty"`
}

// SortByTimestamp orders messages oldest first, keeping input order on ties.
func SortByTimestamp(messages []*Message) []*Message {
	out := slices.Clone(messages)
	slices.SortStableFunc(out, func(a, b *Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out
}

// Annotate attaches index entries to messages. Messages without feedback get
// empty type and comment. A nil index leaves every message unannotated.
func Annotate(messages []*Message, index map[string]Annotation) []AnnotatedMessage {
	out := make([]AnnotatedMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, AnnotatedMessage{Message: m, Annotation: index[m.ID]})
	}
	return out
}

// FeedbackTime prefers the feedback's own timestamp and falls back to the
// rated message's. messages is keyed by message id.
func FeedbackTime(fb *Feedback, messages map[string]*Message) time.Time {
	if !fb.CreatedAt.IsZero() {
		return fb.CreatedAt
	}
	if m, ok := messages[fb.MessageID]; ok {
		return m.Timestamp
	}
	return time.Time{}
}
