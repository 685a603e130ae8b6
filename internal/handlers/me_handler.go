package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
	"github.com/BruksfildServices01/slot-exchange/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      actor.UserID,
		"role":         actor.Role,
		"provider_id":  actor.ProviderID,
		"consumer_ids": actor.ConsumerIDs,
	})
}

// mustActor is only used behind AuthMiddleware.
func mustActor(c *gin.Context) auth.Context {
	return c.MustGet(middleware.ContextActor).(auth.Context)
}
