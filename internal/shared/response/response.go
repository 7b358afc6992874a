package response

import (
	"github.com/gin-gonic/gin"
)

// Pagination is the metadata block returned alongside list results.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
}

// NewPagination computes totalPages with ceiling division.
func NewPagination(totalRecords int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalRecords + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		Limit:        limit,
	}
}

type successEnvelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, successEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList always serializes data, even when the page is empty.
func SuccessList(c *gin.Context, status int, data any, p Pagination) {
	c.JSON(status, struct {
		Success    bool       `json:"success"`
		Data       any        `json:"data"`
		Pagination Pagination `json:"pagination"`
	}{
		Success:    true,
		Data:       data,
		Pagination: p,
	})
}

// Error writes the failure envelope. stack is only ever non-empty in a
// development deployment; callers decide.
func Error(c *gin.Context, status int, message string, stack string) {
	c.JSON(status, errorEnvelope{
		Error:   true,
		Message: message,
		Stack:   stack,
	})
}
