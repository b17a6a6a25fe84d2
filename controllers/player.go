package controllers

import (
	"errors"
	"net/http"

	"Courtside/services/lobby"
	"Courtside/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlayerController struct {
	Players store.PlayerStore
}

type PlayerRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	SkillLevel     string `json:"skillLevel" binding:"omitempty,oneof=A1 A2 A3 F1 F2 F3"`
	ProfilePicture string `json:"profilePicture"`
	City           string `json:"city"`
	ExternalAuthID string `json:"externalAuthId"`
	Email          string `json:"email" binding:"omitempty,email"`
}

func (req *PlayerRequest) toPlayer(id string) *lobby.Player {
	return &lobby.Player{
		ID:             id,
		Name:           req.Name,
		SkillLevel:     req.SkillLevel,
		ProfilePicture: req.ProfilePicture,
		City:           req.City,
		ExternalAuthID: req.ExternalAuthID,
		Email:          req.Email,
		Resolved:       true,
	}
}

// @Summary Registers a player
// @Tags player
// @Accept json
// @Produce json
// @Param body body PlayerRequest true "Player"
// @Success 201 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	// External auth providers supply their own id; generate one otherwise.
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	player := req.toPlayer(id)

	if err := pc.Players.Create(player); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating player"})
		return
	}
	c.JSON(http.StatusCreated, serializePlayer(player))
}

// @Summary Lists all players
// @Tags player
// @Produce json
// @Success 200 {array} object{id=string}
// @Router /players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	players, err := pc.Players.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing players"})
		return
	}
	serialized := make([]gin.H, len(players))
	for i, p := range players {
		serialized[i] = serializePlayer(p)
	}
	c.JSON(http.StatusOK, serialized)
}

// @Summary Gets a player by id
// @Tags player
// @Produce json
// @Param id path string true "Player id"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	player, err := pc.Players.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying player"})
		return
	}
	c.JSON(http.StatusOK, serializePlayer(player))
}

// @Summary Updates a player
// @Tags player
// @Accept json
// @Produce json
// @Param id path string true "Player id"
// @Param body body PlayerRequest true "Player"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	player := req.toPlayer(c.Param("id"))
	if err := pc.Players.Update(player); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating player"})
		return
	}
	c.JSON(http.StatusOK, serializePlayer(player))
}

// @Summary Deletes a player
// @Tags player
// @Param id path string true "Player id"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	if err := pc.Players.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting player"})
		return
	}
	c.Status(http.StatusNoContent)
}
