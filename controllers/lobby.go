package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"Courtside/services/lobby"
	redisclient "Courtside/services/redis"
	"Courtside/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LobbyController struct {
	Lobbies store.LobbyStore
	Players store.PlayerStore
	Cache   *redisclient.RedisClient // optional, nil disables caching
}

type CreateLobbyRequest struct {
	CreatorID        string    `json:"creatorId" binding:"required"`
	StartAt          time.Time `json:"startAt" binding:"required"`
	DurationMinutes  int       `json:"durationMinutes" binding:"required,gt=0"`
	ClubID           string    `json:"clubId"`
	CourtName        string    `json:"courtName"`
	MaxPlayersBySide int       `json:"maxPlayersBySide" binding:"omitempty,min=2,max=10"`
	Visibility       string    `json:"visibility" binding:"omitempty,oneof=public invite private"`
}

type JoinLobbyRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Side     string `json:"side" binding:"required,oneof=left right"`
}

type LeaveLobbyRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// @Summary Creates a new lobby
// @Description Creates an open lobby for the given creator. The creator is
// @Description recorded but not seated; joining a side is a separate call.
// @Tags lobby
// @Accept json
// @Produce json
// @Param body body CreateLobbyRequest true "Lobby parameters"
// @Success 201 {object} object{id=string,status=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /lobbies [post]
func (lc *LobbyController) CreateLobby(c *gin.Context) {
	var req CreateLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	creator, err := lc.Players.GetByID(req.CreatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error looking up creator"})
		return
	}

	newLobby := lobby.NewLobby(uuid.NewString(), *creator, req.StartAt, req.DurationMinutes)
	if req.CourtName != "" {
		newLobby.CourtName = req.CourtName
	}
	if req.MaxPlayersBySide > 0 {
		newLobby.MaxPlayersBySide = req.MaxPlayersBySide
	}
	if req.Visibility != "" {
		newLobby.Visibility = lobby.Visibility(req.Visibility)
	}
	if req.ClubID != "" {
		// Only the id is known at creation time; display fields stay empty.
		newLobby.Club = &lobby.Club{ID: req.ClubID}
	}

	if err := lc.Lobbies.Save(newLobby); err != nil {
		log.Printf("Failed to create lobby: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating lobby"})
		return
	}

	c.JSON(http.StatusCreated, serializeLobby(newLobby))
}

// @Summary Gives info of a lobby
// @Description Returns the lobby with resolved player details
// @Tags lobby
// @Produce json
// @Param id path string true "Lobby id"
// @Success 200 {object} object{id=string,status=string}
// @Failure 404 {object} object{error=string}
// @Router /lobbies/{id} [get]
func (lc *LobbyController) GetLobbyByID(c *gin.Context) {
	lobbyID := c.Param("id")

	if lc.Cache != nil {
		if cached, err := lc.Cache.GetLobbySummary(lobbyID); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	found, err := lc.Lobbies.FindByID(lobbyID)
	if err != nil {
		if errors.Is(err, lobby.ErrLobbyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying lobby"})
		return
	}

	details, err := serializeLobbyWithPlayerDetails(found, lc.Players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving players"})
		return
	}

	if lc.Cache != nil {
		if err := lc.Cache.SetLobbySummary(lobbyID, details); err != nil {
			log.Printf("Failed to cache lobby %s: %v", lobbyID, err)
		}
	}

	c.JSON(http.StatusOK, details)
}

// @Summary Lists lobbies
// @Description Returns lobbies matching the optional filters, ordered by
// @Description start time ascending
// @Tags lobby
// @Produce json
// @Param status query string false "open or confirmed"
// @Param clubId query string false "Exact club id"
// @Param createdBy query string false "Exact creator id"
// @Param startAfter query string false "RFC3339, exclusive lower bound"
// @Param startBefore query string false "RFC3339, exclusive upper bound"
// @Param availableOnly query string false "true keeps only lobbies with a free slot"
// @Param includePlayers query string false "true resolves player details"
// @Success 200 {array} object{id=string}
// @Failure 400 {object} object{error=string}
// @Router /lobbies [get]
func (lc *LobbyController) ListLobbies(c *gin.Context) {
	filters, err := parseLobbyFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	lobbies, err := lc.Lobbies.List(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing lobbies"})
		return
	}

	if c.Query("includePlayers") == "true" {
		detailed := make([]gin.H, len(lobbies))
		for i, l := range lobbies {
			details, err := serializeLobbyWithPlayerDetails(l, lc.Players)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving players"})
				return
			}
			detailed[i] = details
		}
		c.JSON(http.StatusOK, detailed)
		return
	}

	serialized := make([]gin.H, len(lobbies))
	for i, l := range lobbies {
		serialized[i] = serializeLobby(l)
	}
	c.JSON(http.StatusOK, serialized)
}

// @Summary Lists the lobbies a player is seated in
// @Tags lobby
// @Produce json
// @Param playerId path string true "Player id"
// @Success 200 {array} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /lobbies/player/{playerId} [get]
func (lc *LobbyController) GetLobbiesByPlayer(c *gin.Context) {
	playerID := c.Param("playerId")

	if _, err := lc.Players.GetByID(playerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error looking up player"})
		return
	}

	lobbies, err := lc.Lobbies.FindByPlayer(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing lobbies"})
		return
	}

	detailed := make([]gin.H, len(lobbies))
	for i, l := range lobbies {
		details, err := serializeLobbyWithPlayerDetails(l, lc.Players)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving players"})
			return
		}
		detailed[i] = details
	}
	c.JSON(http.StatusOK, detailed)
}

// @Summary Seats a player on a side of a lobby
// @Tags lobby
// @Accept json
// @Produce json
// @Param id path string true "Lobby id"
// @Param body body JoinLobbyRequest true "Player and side"
// @Success 200 {object} object{id=string,status=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /lobbies/{id}/join [post]
func (lc *LobbyController) JoinLobby(c *gin.Context) {
	lobbyID := c.Param("id")

	var req JoinLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	// The join body only carries the id, so the seat holds an unresolved
	// reference until someone asks for details.
	updated, err := lc.Lobbies.Update(lobbyID, func(l *lobby.Lobby) error {
		return l.AddPlayer(lobby.PlayerRef(req.PlayerID), lobby.Side(req.Side))
	})
	if err != nil {
		lc.respondLobbyError(c, err)
		return
	}

	lc.invalidate(lobbyID)
	c.JSON(http.StatusOK, serializeLobby(updated))
}

// @Summary Removes a player from a lobby
// @Tags lobby
// @Accept json
// @Produce json
// @Param id path string true "Lobby id"
// @Param body body LeaveLobbyRequest true "Player"
// @Success 200 {object} object{id=string,status=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /lobbies/{id}/leave [post]
func (lc *LobbyController) LeaveLobby(c *gin.Context) {
	lobbyID := c.Param("id")

	var req LeaveLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	updated, err := lc.Lobbies.Update(lobbyID, func(l *lobby.Lobby) error {
		return l.RemovePlayer(lobby.PlayerRef(req.PlayerID))
	})
	if err != nil {
		lc.respondLobbyError(c, err)
		return
	}

	lc.invalidate(lobbyID)
	c.JSON(http.StatusOK, serializeLobby(updated))
}

// @Summary Deletes a lobby
// @Tags lobby
// @Param id path string true "Lobby id"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Router /lobbies/{id} [delete]
func (lc *LobbyController) DeleteLobby(c *gin.Context) {
	lobbyID := c.Param("id")

	if err := lc.Lobbies.Delete(lobbyID); err != nil {
		if errors.Is(err, lobby.ErrLobbyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting lobby"})
		return
	}

	lc.invalidate(lobbyID)
	c.Status(http.StatusNoContent)
}

// respondLobbyError translates domain errors into status codes. Rule
// violations surface as conflicts, never swallowed.
func (lc *LobbyController) respondLobbyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lobby.ErrLobbyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lobby not found"})
	case errors.Is(err, lobby.ErrLobbyFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, lobby.ErrPlayerAlreadyPresent):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, lobby.ErrPlayerNotFound):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, lobby.ErrInvalidSide):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Lobby operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (lc *LobbyController) invalidate(lobbyID string) {
	if lc.Cache == nil {
		return
	}
	if err := lc.Cache.InvalidateLobby(lobbyID); err != nil {
		log.Printf("Failed to invalidate lobby cache: %v", err)
	}
}

func parseLobbyFilters(c *gin.Context) (lobby.Filters, error) {
	var filters lobby.Filters

	filters.Status = lobby.Status(c.Query("status"))
	filters.ClubID = c.Query("clubId")
	filters.CreatedBy = c.Query("createdBy")

	if raw := c.Query("startAfter"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, err
		}
		filters.StartAfter = t
	}
	if raw := c.Query("startBefore"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, err
		}
		filters.StartBefore = t
	}
	filters.AvailableOnly = c.Query("availableOnly") == "true"

	return filters, nil
}
