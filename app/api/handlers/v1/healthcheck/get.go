package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   map[string]string{"status": "ok"},
	}
}
