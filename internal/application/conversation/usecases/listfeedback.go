package usecases

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalon/insights/internal/application/conversation/dto"
	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/mapper"
	"github.com/katalon/insights/internal/shared/query"
)

type ListFeedbackUseCase struct {
	source conversation.Source
	logger logger.Interface
}

func NewListFeedbackUseCase(source conversation.Source, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{source: source, logger: logger}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context) ([]*conversation.Feedback, error) {
	feedback, err := uc.source.ListFeedback(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load feedback", "error", err)
		return nil, loadFailed(err)
	}
	return feedback, nil
}

// FeedbackViewQuery holds the feedback review controls. Type and Model take
// "all" or an empty value to disable them.
type FeedbackViewQuery struct {
	Search    string
	Type      string
	Model     string
	StartDate string
	EndDate   string
	Page      int
}

type ListFeedbackViewUseCase struct {
	source conversation.Source
	logger logger.Interface
}

func NewListFeedbackViewUseCase(source conversation.Source, logger logger.Interface) *ListFeedbackViewUseCase {
	return &ListFeedbackViewUseCase{source: source, logger: logger}
}

func (uc *ListFeedbackViewUseCase) Execute(ctx context.Context, q FeedbackViewQuery) (*dto.FeedbackViewDTO, error) {
	var (
		feedback []*conversation.Feedback
		messages []*conversation.Message
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feedback, err = uc.source.ListFeedback(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = uc.source.ListMessages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load feedback review", "error", err)
		return nil, loadFailed(err)
	}

	rows := joinFeedback(feedback, messages)

	filter := query.NewFilter[dto.FeedbackRowDTO]().
		Text(q.Search,
			func(r dto.FeedbackRowDTO) string { return r.ID },
			func(r dto.FeedbackRowDTO) string { return r.Comment },
			func(r dto.FeedbackRowDTO) string { return r.Response }).
		Category(q.Type, func(r dto.FeedbackRowDTO) string { return r.Type }).
		Category(q.Model, func(r dto.FeedbackRowDTO) string { return r.Model }).
		DateRange(q.StartDate, q.EndDate, func(r dto.FeedbackRowDTO) time.Time { return r.CreatedAt })
	sort := query.ByTime(func(r dto.FeedbackRowDTO) time.Time { return r.CreatedAt }, query.Desc)

	page := query.Run(rows, filter, sort, query.PageRequest{Page: q.Page, Size: constants.FeedbackPageSize})
	return &dto.FeedbackViewDTO{
		Page:              page,
		ActiveFilterCount: filter.ActiveCount(),
		Models:            distinctModels(rows),
		State: query.Applied(query.Desc, map[string]string{
			"search":    q.Search,
			"type":      q.Type,
			"model":     q.Model,
			"startDate": q.StartDate,
			"endDate":   q.EndDate,
		}, page.PageMeta),
	}, nil
}

// joinFeedback attaches the rated message's model and content to each
// feedback entry. Feedback for unknown messages keeps empty fields.
func joinFeedback(feedback []*conversation.Feedback, messages []*conversation.Message) []dto.FeedbackRowDTO {
	byID := mapper.IndexBy(messages, func(m *conversation.Message) string { return m.ID })
	return mapper.MapSlice(feedback, func(f *conversation.Feedback) dto.FeedbackRowDTO {
		row := dto.FeedbackRowDTO{
			ID:        f.ID,
			MessageID: f.MessageID,
			Type:      string(f.Type),
			Comment:   f.Comment,
			UserID:    f.UserID,
			CreatedAt: conversation.FeedbackTime(f, byID),
		}
		if m, ok := byID[f.MessageID]; ok {
			row.Model = m.Model
			row.Response = m.Content
		}
		return row
	})
}

func distinctModels(rows []dto.FeedbackRowDTO) []string {
	models := make([]string, 0)
	for _, r := range rows {
		if r.Model != "" && !slices.Contains(models, r.Model) {
			models = append(models, r.Model)
		}
	}
	slices.Sort(models)
	return models
}
