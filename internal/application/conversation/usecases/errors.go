package usecases

import (
	stderrors "errors"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
)

// loadFailed reports a collection read failure without exposing its detail.
func loadFailed(err error) error {
	return errors.NewUpstreamError(constants.ErrMsgCollectionLoad, err.Error())
}

func lookupFailed(err error) error {
	if stderrors.Is(err, conversation.ErrNotFound) {
		return errors.NewNotFoundError(constants.ErrMsgNotFound, err.Error())
	}
	return loadFailed(err)
}
