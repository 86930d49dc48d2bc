package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns. The HTTP status code
// always agrees with Success.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Pagination is page-based pagination metadata for the bikes listing.
type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// OffsetPagination is offset-based metadata for the brand/category/model
// listings.
type OffsetPagination struct {
	TotalCount int64 `json:"totalCount"`
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
	HasMore    bool  `json:"hasMore"`
}

// NewPagination computes totalPages = ceil(total/limit) and the page flags.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: int64(page)*int64(limit) < total,
		HasPrevPage: page > 1,
	}
}

// NewOffsetPagination computes hasMore from the number of rows returned.
func NewOffsetPagination(total int64, offset, limit, returned int) OffsetPagination {
	return OffsetPagination{
		TotalCount: total,
		Offset:     offset,
		Limit:      limit,
		HasMore:    int64(offset+returned) < total,
	}
}

func SendSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   err,
	})
}

func SendValidationError(c *gin.Context, err string) {
	SendError(c, http.StatusBadRequest, err)
}

func SendNotFound(c *gin.Context, err string) {
	SendError(c, http.StatusNotFound, err)
}

func SendServerError(c *gin.Context, err string) {
	SendError(c, http.StatusInternalServerError, err)
}
