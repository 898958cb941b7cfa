package usecases

import (
	stderrors "errors"

	"github.com/katalon/insights/internal/domain/ticket"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
)

// toAppError converts a repository failure into the error the handler
// reports: 404 for unknown ids, a generic 500 otherwise.
func toAppError(err error, action string) error {
	if stderrors.Is(err, ticket.ErrNotFound) {
		return errors.NewNotFoundError(constants.ErrMsgTicketNotFound, err.Error())
	}
	return errors.NewInternalError("failed to "+action+" ticket", err.Error())
}
