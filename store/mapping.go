package store

import (
	"Courtside/models/postgres"
	"Courtside/services/lobby"
)

// Explicit mapping between the aggregate and its storage rows. The
// aggregate stays free of persistence tags; everything GORM-specific is
// confined to this file and the stores.

func lobbyToRow(l *lobby.Lobby) *postgres.Lobby {
	row := &postgres.Lobby{
		ID:               l.ID,
		CreatedBy:        l.CreatedBy.ID,
		Status:           string(l.Status),
		Visibility:       string(l.Visibility),
		MaxPlayersBySide: l.MaxPlayersBySide,
		StartAt:          l.StartAt,
		DurationMinutes:  l.DurationMinutes,
		CourtName:        l.CourtName,
	}
	if l.Club != nil {
		clubID := l.Club.ID
		row.ClubID = &clubID
	}
	return row
}

func sideSlotRows(l *lobby.Lobby) []*postgres.SideSlot {
	slots := make([]*postgres.SideSlot, 0, len(l.LeftSideSlots)+len(l.RightSideSlots))
	for _, p := range l.LeftSideSlots {
		slots = append(slots, &postgres.SideSlot{LobbyID: l.ID, PlayerID: p.ID, Side: string(lobby.SideLeft)})
	}
	for _, p := range l.RightSideSlots {
		slots = append(slots, &postgres.SideSlot{LobbyID: l.ID, PlayerID: p.ID, Side: string(lobby.SideRight)})
	}
	return slots
}

// lobbyFromRow reconstructs the aggregate from the scalar row plus its slot
// rows partitioned back into the two sides. Players come back as unresolved
// references; the status is rederived from fullness rather than trusted.
func lobbyFromRow(row *postgres.Lobby) *lobby.Lobby {
	l := &lobby.Lobby{
		ID:               row.ID,
		CreatedBy:        lobby.PlayerRef(row.CreatedBy),
		Visibility:       lobby.Visibility(row.Visibility),
		MaxPlayersBySide: row.MaxPlayersBySide,
		StartAt:          row.StartAt,
		DurationMinutes:  row.DurationMinutes,
		CourtName:        row.CourtName,
	}

	for _, slot := range row.SideSlots {
		switch lobby.Side(slot.Side) {
		case lobby.SideLeft:
			l.LeftSideSlots = append(l.LeftSideSlots, lobby.PlayerRef(slot.PlayerID))
		case lobby.SideRight:
			l.RightSideSlots = append(l.RightSideSlots, lobby.PlayerRef(slot.PlayerID))
		}
	}

	if row.Club != nil {
		l.Club = clubFromRow(row.Club)
	} else if row.ClubID != nil {
		l.Club = &lobby.Club{ID: *row.ClubID}
	}

	l.RecomputeStatus()
	return l
}

func playerToRow(p *lobby.Player) *postgres.Player {
	return &postgres.Player{
		ID:             p.ID,
		Name:           p.Name,
		SkillLevel:     p.SkillLevel,
		ProfilePicture: p.ProfilePicture,
		City:           p.City,
		ExternalAuthID: p.ExternalAuthID,
		Email:          p.Email,
	}
}

func playerFromRow(row *postgres.Player) *lobby.Player {
	return &lobby.Player{
		ID:             row.ID,
		Name:           row.Name,
		SkillLevel:     row.SkillLevel,
		ProfilePicture: row.ProfilePicture,
		City:           row.City,
		ExternalAuthID: row.ExternalAuthID,
		Email:          row.Email,
		Resolved:       true,
	}
}

func clubToRow(c *lobby.Club) *postgres.Club {
	row := &postgres.Club{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
	}
	if c.Slug != "" {
		slug := c.Slug
		row.Slug = &slug
	}
	return row
}

func clubFromRow(row *postgres.Club) *lobby.Club {
	c := &lobby.Club{
		ID:      row.ID,
		Name:    row.Name,
		Address: row.Address,
		City:    row.City,
	}
	if row.Slug != nil {
		c.Slug = *row.Slug
	}
	return c
}
