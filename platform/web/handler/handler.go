package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/fault"
)

// Result is what every handler returns; the wrapper writes it to the wire.
type Result struct {
	Status int
	Body   interface{}
}

// Error is the wire shape for every failure response.
type Error struct {
	Message string `json:"message"`
}

// Wrapper adapts a Result-returning handler into a gin handler.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}

// FromError is the single translation point from the fault taxonomy to the
// wire format. Untyped errors are store failures: a generic 500, never the
// internal message.
func FromError(err error) Result {
	kind, ok := fault.KindOf(err)
	if !ok {
		return Result{
			Status: http.StatusInternalServerError,
			Body:   Error{Message: "internal server error"},
		}
	}

	switch kind {
	case fault.Validation:
		return Result{Status: http.StatusBadRequest, Body: Error{Message: err.Error()}}
	case fault.Unauthenticated:
		// uniform body regardless of why authentication failed
		return Result{Status: http.StatusUnauthorized, Body: Error{Message: "unauthorized"}}
	case fault.Conflict:
		return Result{Status: http.StatusConflict, Body: Error{Message: err.Error()}}
	case fault.NotFound:
		return Result{Status: http.StatusNotFound, Body: Error{Message: err.Error()}}
	default:
		return Result{Status: http.StatusInternalServerError, Body: Error{Message: "internal server error"}}
	}
}
