package controllers

import (
	"errors"
	"net/http"

	"Courtside/services/lobby"
	"Courtside/store"

	"github.com/gin-gonic/gin"
)

type ClubController struct {
	Clubs store.ClubStore
}

type ClubRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Slug    string `json:"slug"`
}

// @Summary Registers a club
// @Tags club
// @Accept json
// @Produce json
// @Param body body ClubRequest true "Club"
// @Success 201 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Router /clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	club := &lobby.Club{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Slug:    req.Slug,
	}
	if err := cc.Clubs.Create(club); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating club"})
		return
	}
	c.JSON(http.StatusCreated, serializeClub(club))
}

// @Summary Lists all clubs
// @Tags club
// @Produce json
// @Success 200 {array} object{id=string}
// @Router /clubs [get]
func (cc *ClubController) ListClubs(c *gin.Context) {
	clubs, err := cc.Clubs.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing clubs"})
		return
	}
	serialized := make([]gin.H, len(clubs))
	for i, club := range clubs {
		serialized[i] = serializeClub(club)
	}
	c.JSON(http.StatusOK, serialized)
}

// @Summary Gets a club by id
// @Tags club
// @Produce json
// @Param id path string true "Club id"
// @Success 200 {object} object{id=string}
// @Failure 404 {object} object{error=string}
// @Router /clubs/{id} [get]
func (cc *ClubController) GetClub(c *gin.Context) {
	club, err := cc.Clubs.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying club"})
		return
	}
	c.JSON(http.StatusOK, serializeClub(club))
}

// @Summary Updates a club
// @Tags club
// @Accept json
// @Produce json
// @Param id path string true "Club id"
// @Param body body ClubRequest true "Club"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /clubs/{id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	club := &lobby.Club{
		ID:      c.Param("id"),
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Slug:    req.Slug,
	}
	if err := cc.Clubs.Update(club); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating club"})
		return
	}
	c.JSON(http.StatusOK, serializeClub(club))
}

// @Summary Deletes a club
// @Tags club
// @Param id path string true "Club id"
// @Success 204
// @Failure 404 {object} object{error=string}
// @Router /clubs/{id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	if err := cc.Clubs.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting club"})
		return
	}
	c.Status(http.StatusNoContent)
}
