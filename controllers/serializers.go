package controllers

import (
	"Courtside/services/lobby"
	"Courtside/store"

	"github.com/gin-gonic/gin"
)

// serializeLobby is the plain response shape: side membership as player ids.
func serializeLobby(l *lobby.Lobby) gin.H {
	return gin.H{
		"id":               l.ID,
		"status":           l.Status,
		"visibility":       l.Visibility,
		"leftSide":         playerIDs(l.LeftSideSlots),
		"rightSide":        playerIDs(l.RightSideSlots),
		"players":          playerIDs(l.Players()),
		"createdBy":        l.CreatedBy.ID,
		"club":             serializeClub(l.Club),
		"startAt":          l.StartAt,
		"durationMinutes":  l.DurationMinutes,
		"courtName":        l.CourtName,
		"maxPlayersBySide": l.MaxPlayersBySide,
	}
}

// serializeLobbyWithPlayerDetails resolves seated players through the
// player store. Players that cannot be resolved are returned explicitly
// marked, not padded with fabricated details.
func serializeLobbyWithPlayerDetails(l *lobby.Lobby, players store.PlayerStore) (gin.H, error) {
	ids := playerIDs(l.Players())
	ids = append(ids, l.CreatedBy.ID)

	resolved, err := players.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*lobby.Player, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}

	hydrate := func(seated []lobby.Player) []gin.H {
		out := make([]gin.H, len(seated))
		for i, p := range seated {
			if full, ok := byID[p.ID]; ok {
				out[i] = serializePlayer(full)
			} else {
				out[i] = serializeUnresolvedPlayer(p.ID)
			}
		}
		return out
	}

	var creator gin.H
	if full, ok := byID[l.CreatedBy.ID]; ok {
		creator = serializePlayer(full)
	} else {
		creator = serializeUnresolvedPlayer(l.CreatedBy.ID)
	}

	allPlayers := make([]gin.H, 0, len(l.Players()))
	for _, p := range l.Players() {
		if full, ok := byID[p.ID]; ok {
			allPlayers = append(allPlayers, serializePlayer(full))
		} else {
			allPlayers = append(allPlayers, serializeUnresolvedPlayer(p.ID))
		}
	}

	return gin.H{
		"id":               l.ID,
		"status":           l.Status,
		"visibility":       l.Visibility,
		"leftSide":         hydrate(l.LeftSideSlots),
		"rightSide":        hydrate(l.RightSideSlots),
		"players":          allPlayers,
		"createdBy":        creator,
		"club":             serializeClub(l.Club),
		"startAt":          l.StartAt,
		"durationMinutes":  l.DurationMinutes,
		"courtName":        l.CourtName,
		"maxPlayersBySide": l.MaxPlayersBySide,
		"playerCount": gin.H{
			"left":  len(l.LeftSideSlots),
			"right": len(l.RightSideSlots),
			"total": len(l.Players()),
		},
	}, nil
}

func serializePlayer(p *lobby.Player) gin.H {
	return gin.H{
		"id":             p.ID,
		"resolved":       true,
		"name":           p.Name,
		"skillLevel":     p.SkillLevel,
		"profilePicture": p.ProfilePicture,
		"city":           p.City,
		"email":          p.Email,
	}
}

func serializeUnresolvedPlayer(id string) gin.H {
	return gin.H{
		"id":       id,
		"resolved": false,
	}
}

func serializeClub(c *lobby.Club) gin.H {
	if c == nil {
		return nil
	}
	return gin.H{
		"id":      c.ID,
		"name":    c.Name,
		"address": c.Address,
		"city":    c.City,
		"slug":    c.Slug,
	}
}

func playerIDs(players []lobby.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}
