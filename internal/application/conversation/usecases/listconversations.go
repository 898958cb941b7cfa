package usecases

import (
	"context"
	"time"

	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/mapper"
	"github.com/katalon/insights/internal/shared/query"
)

type ListConversationsUseCase struct {
	source conversation.Source
	logger logger.Interface
}

func NewListConversationsUseCase(source conversation.Source, logger logger.Interface) *ListConversationsUseCase {
	return &ListConversationsUseCase{source: source, logger: logger}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context) ([]*conversation.Conversation, error) {
	conversations, err := uc.source.ListConversations(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load conversations", "error", err)
		return nil, loadFailed(err)
	}
	return conversations, nil
}

// ConversationViewQuery holds the conversation log controls. Dates are
// inclusive YYYY-MM-DD bounds on createdAt.
type ConversationViewQuery struct {
	Search    string
	StartDate string
	EndDate   string
	Sort      query.Direction
	Page      int
}

type ListConversationViewUseCase struct {
	source conversation.Source
	logger logger.Interface
}

func NewListConversationViewUseCase(source conversation.Source, logger logger.Interface) *ListConversationViewUseCase {
	return &ListConversationViewUseCase{source: source, logger: logger}
}

func (uc *ListConversationViewUseCase) Execute(ctx context.Context, q ConversationViewQuery) (*dto.ConversationViewDTO, error) {
	conversations, err := uc.source.ListConversations(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load conversations", "error", err)
		return nil, loadFailed(err)
	}

	rows := mapper.MapSlice(conversations, dto.ToConversationDTO)
	filter := query.NewFilter[dto.ConversationDTO]().
		Text(q.Search,
			func(c dto.ConversationDTO) string { return c.ID },
			func(c dto.ConversationDTO) string { return c.Title }).
		DateRange(q.StartDate, q.EndDate, func(c dto.ConversationDTO) time.Time { return c.CreatedAt })
	dir := directionOr(q.Sort, query.Desc)
	sort := query.ByTime(func(c dto.ConversationDTO) time.Time { return c.CreatedAt }, dir)

	page := query.Run(rows, filter, sort, query.PageRequest{Page: q.Page, Size: constants.ConversationPageSize})
	return &dto.ConversationViewDTO{
		Page:              page,
		ActiveFilterCount: filter.ActiveCount(),
		State: query.Applied(dir, map[string]string{
			"search":    q.Search,
			"startDate": q.StartDate,
			"endDate":   q.EndDate,
		}, page.PageMeta),
	}, nil
}

func directionOr(d, def query.Direction) query.Direction {
	if d == "" {
		return def
	}
	return d
}
