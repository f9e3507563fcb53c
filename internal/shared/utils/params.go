package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus/internal/shared/errors"
)

// ParseUintParam parses a numeric URL path parameter.
// entityName is used in error messages (e.g., "applicant", "work order").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}
	return uint(v), nil
}

// QueryUint parses an optional numeric query parameter. Missing or malformed
// values yield nil.
func QueryUint(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
