package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartreply/internal/services"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Invalid ZIP" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// RespondError maps a service error onto the envelope. Client input errors
// keep their status and code; anything else is a 500.
func RespondError(ctx *gin.Context, err error) {
	var reqErr *services.RequestError
	if errors.As(err, &reqErr) {
		JSONError(ctx, reqErr.Status, reqErr.Code, reqErr.Message)
		return
	}
	Internal(ctx, err.Error())
}
