package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"solotrip/internal/realtime"
	"solotrip/pkg/logger"
	"solotrip/pkg/utils"
)

type SocketController struct {
	hub      *realtime.Hub
	sender   realtime.CommentSender
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewSocketController accepts upgrades from allowedOrigin; "*" accepts any origin.
func NewSocketController(hub *realtime.Hub, sender realtime.CommentSender, allowedOrigin string, log *logger.Logger) *SocketController {
	return &SocketController{
		hub:    hub,
		sender: sender,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "*" || origin == "" || strings.EqualFold(origin, allowedOrigin)
			},
		},
		log: log,
	}
}

// Serve upgrades to a socket on the trip room. Identity comes from OptionalAuth.
func (s *SocketController) Serve(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("socket upgrade failed", "trip_id", tripID, "error", err)
		return
	}

	userID, userName := currentUser(c)
	s.hub.Attach(conn, tripID, realtime.Identity{UserID: userID, UserName: userName}, s.sender)
}
