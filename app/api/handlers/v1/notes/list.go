package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description Lists the authenticated user's notes, most recent first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /notes [get]
func (h *Handlers) List(ctx *gin.Context) handler.Result {
	identity, ok := handler.Identity(ctx)
	if !ok {
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "unauthorized"},
		}
	}

	found, err := h.notes.List(ctx, identity)
	if err != nil {
		return handler.FromError(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   found,
	}
}
