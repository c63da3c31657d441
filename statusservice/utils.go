package statusservice

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the default number of journal records returned
	DefaultLimit = 20
	// MaxLimit is the maximum number of journal records returned
	MaxLimit = 200
)

// parseLimit reads the optional limit query parameter
func parseLimit(c *gin.Context) (int, error) {
	paramStr := c.Query(limitParam)
	if paramStr == "" {
		return DefaultLimit, nil
	}
	limit, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", limitParam, err)
	}
	if limit == 0 || limit > MaxLimit {
		return 0, fmt.Errorf("%s must be between 1 and %d", limitParam, MaxLimit)
	}
	return int(limit), nil
}
