package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/note"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note owned by the authenticated user
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /notes [post]
func (h *Handlers) Create(ctx *gin.Context) handler.Result {
	identity, ok := handler.Identity(ctx)
	if !ok {
		return handler.Result{
			Status: http.StatusUnauthorized,
			Body:   handler.Error{Message: "unauthorized"},
		}
	}

	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	created, err := h.notes.Create(ctx, identity, newN)
	if err != nil {
		return handler.FromError(err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
