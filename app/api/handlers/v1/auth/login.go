package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/business/v1/user"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Login godoc
// @Summary Login
// @Description Verifies credentials and returns a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body user.Credentials true "Credentials"
// @Success 200 {object} user.Token
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /login [post]
func (h *Handlers) Login(ctx *gin.Context) handler.Result {
	var creds user.Credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid request body"},
		}
	}

	tok, err := h.users.Login(ctx, creds)
	if err != nil {
		return handler.FromError(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   user.Token{Token: tok},
	}
}
