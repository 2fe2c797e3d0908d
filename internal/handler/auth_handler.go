package handler

import (
	"net/http"

	"pokeboard/backend/internal/database"
	"pokeboard/backend/internal/models"
	"pokeboard/backend/internal/pokeapi"
	"pokeboard/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration, login and starter selection.
type AuthHandler struct {
	API *pokeapi.Client
}

// NewAuthHandler creates an AuthHandler backed by the species provider.
func NewAuthHandler(api *pokeapi.Client) *AuthHandler {
	return &AuthHandler{API: api}
}

// region --- DTOs ---

// RegisterInput defines the structure for user registration. A starter
// species must be picked at sign-up.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"ash"`
	Password string `json:"password" binding:"required,min=8" example:"pikachu123"`
	Starter  string `json:"starter" binding:"required" example:"charmander"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"ash"`
	Password string `json:"password" binding:"required" example:"pikachu123"`
}

// StarterResponse describes the starter granted at registration.
type StarterResponse struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Sprite string   `json:"sprite"`
}

// endregion

// starterLevel is the level every starter begins at.
const starterLevel = 5

// starterIV is the flat stat modifier granted to starters.
const starterIV = 10

// starterMoveCount bounds how many moves a starter learns.
const starterMoveCount = 4

// RegisterUser godoc
// @Summary      Register a new trainer
// @Description  Creates a user with a chosen starter creature and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]interface{} "{"token": "...", "user_id": 1, "starter": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse "Species provider unavailable"
// @Router       /auth/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !pokeapi.IsStarter(input.Starter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown starter species"})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	// Resolve the starter before touching the database so a provider outage
	// leaves no half-created account behind.
	starterData, err := h.API.Pokemon(c.Request.Context(), input.Starter)
	if err != nil {
		respondError(c, err)
		return
	}
	starterMoves, err := h.API.Moves(c.Request.Context(), starterData, starterMoveCount)
	if err != nil {
		respondError(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// Insert user, then starter, then its moves as one unit.
	tx := database.DB.Begin()

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	maxHP := starterData.Stats.HP + starterIV
	starter := models.Pokemon{
		UserID:      user.ID,
		SpeciesID:   starterData.ID,
		Name:        starterData.Name,
		Level:       starterLevel,
		CurrentHP:   maxHP,
		MaxHP:       maxHP,
		IVHP:        starterIV,
		IVAttack:    starterIV,
		IVDefense:   starterIV,
		IVSpAttack:  starterIV,
		IVSpDefense: starterIV,
		IVSpeed:     starterIV,
	}
	if err := tx.Create(&starter).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create starter creature"})
		return
	}

	for _, m := range starterMoves {
		move := models.PokemonMove{
			PokemonID: starter.ID,
			MoveID:    m.ID,
			Name:      m.Name,
			Type:      m.Type,
			Power:     m.Power,
			PP:        m.PP,
			PPMax:     m.PP,
		}
		if err := tx.Create(&move).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store starter moves"})
			return
		}
	}

	tx.Commit()

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"user_id": user.ID,
		"starter": StarterResponse{
			ID:     starterData.ID,
			Name:   starterData.Name,
			Types:  starterData.Types,
			Sprite: starterData.Sprites.FrontDefault,
		},
	})
}

// LoginUser godoc
// @Summary      Log in a trainer
// @Description  Authenticates a user and returns a new token plus the owned creatures.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]interface{} "{"token": "...", "user": {...}}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /auth/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Preload("Pokemons.Moves").Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"badges":        user.Badges,
			"gyms_defeated": user.GymsDefeated,
			"pokemons":      user.Pokemons,
		},
	})
}

// GetStarters godoc
// @Summary      List available starter creatures
// @Description  Returns the starter catalog grouped by region.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string][]pokeapi.Starter
// @Failure      502  {object}  ErrorResponse "Species provider unavailable"
// @Router       /auth/starters [get]
func (h *AuthHandler) GetStarters(c *gin.Context) {
	starters, err := h.API.Starters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, starters)
}
