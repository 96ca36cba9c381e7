package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes the note when it is owned by the authenticated user
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *Handlers) Delete(ctx *gin.Context) handler.Result {
	identity, ok := handler.Identity(ctx)
	if !ok {
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "unauthorized"},
		}
	}

	if err := h.notes.Delete(ctx, identity, ctx.Param("id")); err != nil {
		return handler.FromError(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   map[string]string{"message": "note deleted"},
	}
}
