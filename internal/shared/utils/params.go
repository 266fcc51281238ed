package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"tracker/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s parameter", name))
	}
	return uint(value), nil
}
