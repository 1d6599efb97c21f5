// Package httpx provides the shared response envelope used by every handler.
package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the normalized API response wrapper. Exactly one of Data or
// Error is populated; Status mirrors the HTTP status code.
type Envelope struct {
	Status    int    `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// New builds a success envelope.
func New(status int, data any, message string) Envelope {
	return Envelope{
		Status:    status,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewError builds a failure envelope. The error field carries the status
// class, the message carries the detail.
func NewError(status int, message string) Envelope {
	return Envelope{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON writes a success envelope to the gin context.
func JSON(c *gin.Context, status int, data any, message string) {
	c.JSON(status, New(status, data, message))
}

// Error writes a failure envelope to the gin context.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, NewError(status, message))
}
