package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models/dto"
)

const dateLayout = "2006-01-02"

// parseDateField parses an optional YYYY-MM-DD request field.
func parseDateField(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return &t, nil
}

// pathID parses the :id path parameter, writing a 400 response on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, name+" must be a positive number")))
		return 0, false
	}
	return id, true
}

// badRequest writes a validation error response.
func badRequest(c *gin.Context, message string, details interface{}) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	if details != nil {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
