package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/app/api/handlers/v1/auth"
	"github.com/ribgsilva/notes-app/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-app/app/api/handlers/v1/notes"
	notebus "github.com/ribgsilva/notes-app/business/v1/note"
	userbus "github.com/ribgsilva/notes-app/business/v1/user"
	"github.com/ribgsilva/notes-app/platform/token"
	"github.com/ribgsilva/notes-app/platform/web/handler"
)

// Config carries everything the routes need; main builds it once.
type Config struct {
	Users  *userbus.Core
	Notes  *notebus.Core
	Tokens *token.Manager
}

func MapDefaults(r *gin.Engine) {
	r.GET("/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, cfg Config) {
	ah := auth.New(cfg.Users)
	r.POST("/register", handler.Wrapper(ah.Register))
	r.POST("/login", handler.Wrapper(ah.Login))

	nh := notes.New(cfg.Notes)
	protected := r.Group("", handler.Auth(cfg.Tokens.Verify))
	protected.POST("/notes", handler.Wrapper(nh.Create))
	protected.GET("/notes", handler.Wrapper(nh.List))
	protected.DELETE("/notes/:id", handler.Wrapper(nh.Delete))
}
