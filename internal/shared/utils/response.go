package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
)

// ErrorBody is the error payload returned by every endpoint.
type ErrorBody struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// MessageBody is a plain acknowledgement payload.
type MessageBody struct {
	Message string `json:"message"`
}

// OKResponse sends data with status 200
func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// MessageResponse sends an acknowledgement message with status 200
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{
			Error: appErr.Message,
			Type:  string(appErr.Type),
		})
		return
	}

	// For non-AppError, do not expose internal error details to prevent information leakage
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: constants.ErrMsgInternalServerError,
		Type:  string(errors.ErrorTypeInternal),
	})
}
