package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/shared/biztime"
	"github.com/katalon/insights/internal/shared/constants"
	"github.com/katalon/insights/internal/shared/errors"
)

// ParsePage parses the 1-indexed "page" query parameter.
// Missing or malformed values fall back to DefaultPage.
func ParsePage(c *gin.Context) int {
	return parseQueryInt(c, "page", constants.DefaultPage)
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// ParseCategory returns the categorical filter value for key, or FilterAll
// when the parameter is absent or blank.
func ParseCategory(c *gin.Context, key string) string {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return constants.FilterAll
	}
	return val
}

// ParseDateParam parses an optional YYYY-MM-DD query parameter.
// An empty value returns "" with no error.
func ParseDateParam(c *gin.Context, key string) (string, error) {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return "", nil
	}
	if _, err := biztime.ParseDate(val); err != nil {
		return "", errors.NewValidationError(key+" must be a date in YYYY-MM-DD format", val)
	}
	return val, nil
}
