package handler

import (
	"log"
	"net/http"

	"pokeboard/backend/internal/hub"
	"pokeboard/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is token-authenticated; origin checks add nothing here.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS godoc
// @Summary      Subscribe to session events
// @Description  Upgrades to a websocket that streams session events in commit order. Authentication uses a token query parameter because browsers cannot set headers on websocket requests.
// @Tags         sessions
// @Param        id    path  int    true "Session ID"
// @Param        token query string true "JWT"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} ErrorResponse "Invalid token"
// @Failure      404 {object} ErrorResponse "Session not found"
// @Router       /sessions/{id}/ws [get]
func (h *GameHandler) ServeWS(c *gin.Context) {
	userID, err := jwt.ParseToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}
	if _, err := h.Engine.Snapshot(sessionID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := hub.NewClient(h.Hub, conn, userID, sessionID, func(cl *hub.Client) {
		// Members dropping off the push channel lose the turn; non-member
		// spectators are simply unsubscribed.
		h.Engine.SetConnected(cl.SessionID, cl.UserID, false)
	})
	h.Hub.Subscribe(sessionID, client)
	h.Engine.SetConnected(sessionID, userID, true)
	client.Run()
}
