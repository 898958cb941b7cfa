package usecases

import (
	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/errors"
	"github.com/katalon/insights/internal/shared/logger"
)

type GetTicketOptionsUseCase struct {
	load   func() (*ticket.Options, error)
	logger logger.Interface
}

func NewGetTicketOptionsUseCase(logger logger.Interface) *GetTicketOptionsUseCase {
	return &GetTicketOptionsUseCase{
		load:   ticket.LoadOptions,
		logger: logger,
	}
}

// Execute returns the dropdown vocabularies of the ticket form and filters.
func (uc *GetTicketOptionsUseCase) Execute() (*ticket.Options, error) {
	opts, err := uc.load()
	if err != nil {
		uc.logger.Errorw("failed to load ticket options", "error", err)
		return nil, errors.NewInternalError("failed to load ticket options", err.Error())
	}
	return opts, nil
}
