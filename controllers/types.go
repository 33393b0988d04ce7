package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// StandardResponse is the envelope every endpoint answers with, success or
// failure alike.
type StandardResponse struct {
	Status    bool        `json:"status"`
	Code      int         `json:"code"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// PagedResult wraps a paginated list payload.
type PagedResult struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func respondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, StandardResponse{
		Status:    true,
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, StandardResponse{
		Status:    false,
		Code:      code,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
