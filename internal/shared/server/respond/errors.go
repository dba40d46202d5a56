package respond

import (
	"github.com/gin-gonic/gin"

	"resume-engine/internal/apperrors"
	"resume-engine/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message"`
	Remedy  string      `json:"remedy,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	logError(c, status, code, message)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// AppError sends an error from the taxonomy with its catalog title,
// message and remedy, at the code's mapped HTTP status.
func AppError(c *gin.Context, err error) {
	e := apperrors.From(err)
	status := apperrors.HTTPStatus(e.Code)
	logError(c, status, string(e.Code), e.Message)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    string(e.Code),
			Title:   e.Title,
			Message: e.Message,
			Remedy:  e.Remedy,
		},
	})
}

func logError(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
}
