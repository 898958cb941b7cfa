package usecases

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/services/markdown"
)

type GetConversationDetailQuery struct {
	ConversationID string
	// Search keeps only messages whose content contains the term.
	Search string
}

type GetConversationDetailUseCase struct {
	source   conversation.Source
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewGetConversationDetailUseCase(
	source conversation.Source,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetConversationDetailUseCase {
	return &GetConversationDetailUseCase{
		source:   source,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute loads the messages and the feedback concurrently and joins them.
// Only the message load can fail the request; without feedback the thread
// is returned unannotated.
func (uc *GetConversationDetailUseCase) Execute(ctx context.Context, q GetConversationDetailQuery) (*dto.ConversationDetailDTO, error) {
	if strings.TrimSpace(q.ConversationID) == "" {
		return nil, errors.NewValidationError(constants.ErrMsgMissingConversation)
	}

	var (
		messages    []*conversation.Message
		feedback    []*conversation.Feedback
		feedbackErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		messages, err = uc.source.ListMessagesByConversation(gctx, q.ConversationID)
		return err
	})
	g.Go(func() error {
		feedback, feedbackErr = uc.source.ListFeedback(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load conversation messages",
			"conversation_id", q.ConversationID,
			"error", err,
		)
		return nil, loadFailed(err)
	}

	if len(messages) == 0 {
		return nil, errors.NewNotFoundError(constants.ErrMsgConversationMissing)
	}

	var index map[string]conversation.Annotation
	if feedbackErr != nil {
		uc.logger.Warnw("feedback unavailable, returning unannotated messages",
			"conversation_id", q.ConversationID,
			"error", feedbackErr,
		)
	} else {
		index = conversation.IndexFeedback(feedback)
	}

	thread := conversation.Annotate(conversation.SortByTimestamp(messages), index)
	thread = filterByContent(thread, q.Search)
	for i := range thread {
		uc.renderContent(&thread[i])
	}

	return &dto.ConversationDetailDTO{
		ConversationID:    q.ConversationID,
		Messages:          thread,
		Total:             len(messages),
		FeedbackAvailable: feedbackErr == nil,
	}, nil
}

func filterByContent(thread []conversation.AnnotatedMessage, term string) []conversation.AnnotatedMessage {
	if term == "" {
		return thread
	}
	needle := strings.ToLower(term)
	out := make([]conversation.AnnotatedMessage, 0, len(thread))
	for _, m := range thread {
		if strings.Contains(strings.ToLower(m.Content), needle) {
			out = append(out, m)
		}
	}
	return out
}

func (uc *GetConversationDetailUseCase) renderContent(m *conversation.AnnotatedMessage) {
	if !m.IsAssistant() {
		return
	}
	html, err := uc.renderer.Render(m.Content)
	if err != nil {
		uc.logger.Warnw("failed to render message content", "message_id", m.ID, "error", err)
		return
	}
	m.ContentHTML = html
}
