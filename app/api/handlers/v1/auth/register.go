package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/user"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Register godoc
// @Summary Register a user
// @Description Creates a user from name, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body user.NewUser true "New user"
// @Success 201 {object} user.User
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /register [post]
func (h *Handlers) Register(ctx *gin.Context) handler.Result {
	var newU user.NewUser
	if err := ctx.ShouldBindJSON(&newU); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	created, err := h.users.Register(ctx, newU)
	if err != nil {
		return handler.FromError(err)
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
