package handler

import (
	"errors"
	"log"
	"net/http"

	"pokeboard/backend/internal/game"
	"pokeboard/backend/internal/pokeapi"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError maps an engine or provider error onto an HTTP status.
// Rejected actions return a stable error kind; unexpected errors are logged
// and surfaced as a generic internal error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrSessionNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, pokeapi.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, game.ErrSessionFull),
		errors.Is(err, game.ErrDuplicateJoin),
		errors.Is(err, game.ErrStaleAction):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, game.ErrNotYourTurn):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, game.ErrSessionNotActive),
		errors.Is(err, game.ErrInvalidAction),
		errors.Is(err, game.ErrNoActiveCreature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, pokeapi.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
