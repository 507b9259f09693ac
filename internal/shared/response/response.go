package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the wire shape every endpoint returns.
type ApiEnvelope struct {
	Succeeded bool     `json:"succeeded"`
	Message   string   `json:"message,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Data      any      `json:"data,omitempty"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, ApiEnvelope{
		Succeeded: true,
		Message:   message,
		Data:      data,
	})
}

func Error(c *gin.Context, status int, code string, message string, details any) {
	errs := []string{code}
	if s, ok := details.(string); ok && s != "" {
		errs = append(errs, s)
	}
	c.JSON(status, ApiEnvelope{
		Succeeded: false,
		Message:   message,
		Errors:    errs,
	})
}
