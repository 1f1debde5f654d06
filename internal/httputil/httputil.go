// Package httputil holds small request/response helpers shared by the
// resource handlers.
package httputil

import (
	"net/http"
	"strconv"

	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
)

// ListResponse is the envelope for every paginated list endpoint
type ListResponse struct {
	Success    bool             `json:"success"`
	Data       any              `json:"data"`
	Pagination store.Pagination `json:"pagination"`
}

// RespondWithList writes a paginated collection in the list envelope
func RespondWithList(c *gin.Context, data any, pagination store.Pagination) {
	c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// ParsePageQuery reads page and limit query params, falling back to defaults
func ParsePageQuery(c *gin.Context) (int, int) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	return page, limit
}

// OptionalQuery returns a query param as a pointer, nil when absent
func OptionalQuery(c *gin.Context, key string) *string {
	if raw := c.Query(key); raw != "" {
		return &raw
	}
	return nil
}
