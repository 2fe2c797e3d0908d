package handler

import (
	"net/http"
	"strconv"

	"pokeboard/backend/internal/database"
	"pokeboard/backend/internal/game"
	"pokeboard/backend/internal/hub"
	"pokeboard/backend/internal/models"
	"pokeboard/backend/internal/pokeapi"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GameHandler serves the session actions: create, join, leave, roll and
// battle resolution. The engine owns the authoritative session state; this
// layer persists committed results and shapes responses.
type GameHandler struct {
	Engine *game.Engine
	Hub    *hub.Hub
	API    *pokeapi.Client
}

// NewGameHandler wires the transport layer to the engine.
func NewGameHandler(engine *game.Engine, h *hub.Hub, api *pokeapi.Client) *GameHandler {
	return &GameHandler{Engine: engine, Hub: h, API: api}
}

// region --- DTOs ---

// BattleInput is a player's decision for a pending encounter.
type BattleInput struct {
	Action string `json:"action" binding:"required" example:"attack"`
	MoveID int    `json:"move_id"`
}

// RollResponse is the direct result of a roll action.
type RollResponse struct {
	DieRoll     int             `json:"die_roll"`
	NewPosition int             `json:"new_position"`
	Space       game.SpaceKind  `json:"space"`
	Encounter   *game.Encounter `json:"encounter,omitempty"`
	TurnUserID  uint            `json:"turn_user_id"`
	Warning     string          `json:"warning,omitempty"`
}

// endregion

// CreateSession godoc
// @Summary      Create a game session
// @Description  Allocates a new session waiting for players.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]uint "{"session_id": 1}"
// @Failure      500  {object}  ErrorResponse
// @Router       /sessions [post]
func (h *GameHandler) CreateSession(c *gin.Context) {
	gameModel := models.Game{
		Status:     models.GameStatusWaiting,
		MaxPlayers: game.DefaultMaxPlayers,
	}
	if err := database.DB.Create(&gameModel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	if err := h.Engine.CreateSession(gameModel.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session_id": gameModel.ID})
}

// ListSessions godoc
// @Summary      List joinable sessions
// @Description  Gets a paginated list of sessions still waiting for players.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[models.Game]
// @Router       /sessions [get]
func (h *GameHandler) ListSessions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := database.DB.Where("status = ?", models.GameStatusWaiting)
	response, err := Paginate[models.Game](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetSession godoc
// @Summary      Get a session snapshot
// @Description  Returns the authoritative state of one session.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} game.Snapshot
// @Failure      404 {object} ErrorResponse "Session not found"
// @Router       /sessions/{id} [get]
func (h *GameHandler) GetSession(c *gin.Context) {
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}

	snap, err := h.Engine.Snapshot(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// JoinSession godoc
// @Summary      Join a session
// @Description  Adds the caller to a waiting session. The fourth join starts the game.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} map[string]interface{} "{"session_id": 1, "started": false, "player_count": 2}"
// @Failure      404 {object} ErrorResponse "Session not found or not waiting"
// @Failure      409 {object} ErrorResponse "Session full or already joined"
// @Router       /sessions/{id}/join [post]
func (h *GameHandler) JoinSession(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// The active creature is resolved before entering the session critical
	// section so the species lookup never runs under the lock.
	active, pokemonID, err := h.loadActiveCreature(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Engine.Join(sessionID, userID, user.Username, active)
	if err != nil {
		respondError(c, err)
		return
	}

	member := models.GamePlayer{
		GameID:           sessionID,
		UserID:           userID,
		Position:         0,
		CurrentPokemonID: pokemonID,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist membership"})
		return
	}

	if res.Started {
		snap, snapErr := h.Engine.Snapshot(sessionID)
		updates := map[string]any{"status": models.GameStatusActive}
		if snapErr == nil {
			updates["current_turn"] = snap.TurnUserID
		}
		database.DB.Model(&models.Game{}).Where("id = ?", sessionID).Updates(updates)
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":   sessionID,
		"started":      res.Started,
		"player_count": res.PlayerCount,
	})
}

// LeaveSession godoc
// @Summary      Leave a session
// @Description  Removes the caller; an emptied session is destroyed.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} map[string]string "{"message": "Left session"}"
// @Failure      404 {object} ErrorResponse "Session or member not found"
// @Router       /sessions/{id}/leave [post]
func (h *GameHandler) LeaveSession(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}

	if err := h.Engine.Leave(sessionID, userID); err != nil {
		respondError(c, err)
		return
	}

	database.DB.Where("game_id = ? AND user_id = ?", sessionID, userID).Delete(&models.GamePlayer{})

	// The registry destroys emptied sessions; mirror that in the durable row.
	if _, err := h.Engine.Snapshot(sessionID); err != nil {
		database.DB.Model(&models.Game{}).Where("id = ?", sessionID).
			Update("status", models.GameStatusFinished)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left session"})
}

// Roll godoc
// @Summary      Roll the die and move
// @Description  Moves the turn holder, generates the landing encounter, and passes the turn. When the species provider is down the movement still commits and a warning replaces the encounter.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} RollResponse
// @Failure      400 {object} ErrorResponse "Session not active"
// @Failure      403 {object} ErrorResponse "Not your turn"
// @Failure      404 {object} ErrorResponse "Session not found"
// @Router       /sessions/{id}/roll [post]
func (h *GameHandler) Roll(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}

	res, err := h.Engine.Roll(c.Request.Context(), sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	database.DB.Model(&models.GamePlayer{}).
		Where("game_id = ? AND user_id = ?", sessionID, userID).
		Update("position", res.NewPosition)
	database.DB.Model(&models.Game{}).Where("id = ?", sessionID).
		Update("current_turn", res.TurnUserID)

	resp := RollResponse{
		DieRoll:     res.DieRoll,
		NewPosition: res.NewPosition,
		Space:       res.Space,
		Encounter:   res.Encounter,
		TurnUserID:  res.TurnUserID,
	}
	if res.EncounterErr != nil {
		resp.Warning = res.EncounterErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveBattle godoc
// @Summary      Resolve a battle decision
// @Description  Applies attack, capture or flee against the caller's pending encounter.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Session ID"
// @Param        input body BattleInput true "Battle decision"
// @Success      200 {object} game.BattleOutcome
// @Failure      400 {object} ErrorResponse "Invalid action or no active creature"
// @Failure      404 {object} ErrorResponse "Session or member not found"
// @Failure      409 {object} ErrorResponse "No pending encounter (stale action)"
// @Router       /sessions/{id}/battle [post]
func (h *GameHandler) ResolveBattle(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	sessionID, err := sessionIDParam(c)
	if err != nil {
		return
	}

	var input BattleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.Engine.ResolveBattle(c.Request.Context(), sessionID, userID, game.Action(input.Action), input.MoveID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.persistOutcome(sessionID, userID, input.Action, outcome)

	c.JSON(http.StatusOK, outcome)
}

// persistOutcome mirrors a committed battle result into the durable store.
func (h *GameHandler) persistOutcome(sessionID, userID uint, action string, out *game.BattleOutcome) {
	battle := models.Battle{
		GameID:       sessionID,
		PlayerID:     userID,
		OpponentType: string(out.OpponentKind),
		OpponentID:   out.OpponentSpeciesID,
		Action:       action,
		Result:       battleResult(out),
	}
	database.DB.Create(&battle)

	if out.Captured != nil {
		h.persistCapture(sessionID, userID, out.Captured)
	}

	if out.BadgeEarned {
		database.DB.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("badges", gorm.Expr("badges + 1")).
			UpdateColumn("gyms_defeated", gorm.Expr("gyms_defeated + 1"))
	}

	if out.ExperienceGained > 0 {
		h.persistActiveCreature(sessionID, userID)
	}

	if out.SessionFinished {
		database.DB.Model(&models.Game{}).Where("id = ?", sessionID).Updates(map[string]any{
			"status":    models.GameStatusFinished,
			"winner_id": userID,
		})
	}
}

// persistCapture stores a newly caught creature with freshly rolled IVs.
func (h *GameHandler) persistCapture(sessionID, userID uint, captured *game.Creature) {
	rng := game.DefaultSource()
	record := models.Pokemon{
		UserID:      userID,
		SpeciesID:   captured.SpeciesID,
		Name:        captured.Name,
		Level:       captured.Level,
		IsShiny:     captured.IsShiny,
		CurrentHP:   captured.CurrentHP,
		MaxHP:       captured.MaxHP,
		IVHP:        rng.IntN(32),
		IVAttack:    rng.IntN(32),
		IVDefense:   rng.IntN(32),
		IVSpAttack:  rng.IntN(32),
		IVSpDefense: rng.IntN(32),
		IVSpeed:     rng.IntN(32),
	}
	database.DB.Create(&record)
}

// persistActiveCreature writes back the level/exp/hp changes the engine
// applied to the player's active creature.
func (h *GameHandler) persistActiveCreature(sessionID, userID uint) {
	snap, err := h.Engine.Snapshot(sessionID)
	if err != nil {
		return
	}
	for _, p := range snap.Players {
		if p.UserID != userID || p.Active == nil {
			continue
		}
		database.DB.Model(&models.Pokemon{}).Where("id = ?", p.Active.ID).Updates(map[string]any{
			"level":      p.Active.Level,
			"experience": p.Active.Experience,
			"current_hp": p.Active.CurrentHP,
			"max_hp":     p.Active.MaxHP,
		})
		return
	}
}

func battleResult(out *game.BattleOutcome) string {
	switch {
	case out.SessionFinished:
		return "victory"
	case out.Defeated:
		return "defeated"
	case out.CaptureSuccess:
		return "captured"
	case out.FleeSuccess:
		return "fled"
	default:
		return "ongoing"
	}
}

// loadActiveCreature builds the in-session view of the user's first creature
// from its durable record plus its species base stats.
func (h *GameHandler) loadActiveCreature(c *gin.Context, userID uint) (*game.Creature, *uint, error) {
	var record models.Pokemon
	if err := database.DB.Preload("Moves").Where("user_id = ?", userID).
		Order("id asc").First(&record).Error; err != nil {
		return nil, nil, game.ErrNoActiveCreature
	}

	species, err := h.API.Pokemon(c.Request.Context(), strconv.Itoa(record.SpeciesID))
	if err != nil {
		return nil, nil, err
	}

	creature := &game.Creature{
		ID:         record.ID,
		SpeciesID:  record.SpeciesID,
		Name:       record.Name,
		Level:      record.Level,
		Experience: record.Experience,
		IsShiny:    record.IsShiny,
		CurrentHP:  record.CurrentHP,
		MaxHP:      record.MaxHP,
		Attack:     species.Stats.Attack + record.IVAttack,
		Defense:    species.Stats.Defense + record.IVDefense,
		Types:      species.Types,
	}
	for _, m := range record.Moves {
		creature.Moves = append(creature.Moves, game.CreatureMove{
			ID:    m.MoveID,
			Name:  m.Name,
			Type:  m.Type,
			Power: m.Power,
			PP:    m.PP,
			PPMax: m.PPMax,
		})
	}

	id := record.ID
	return creature, &id, nil
}

// sessionIDParam parses the :id path parameter, writing the error response
// itself on failure.
func sessionIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return 0, game.ErrSessionNotFound
	}
	return uint(id), nil
}
