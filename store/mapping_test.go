package store

import (
	"testing"
	"time"

	"Courtside/models/postgres"
	"Courtside/services/lobby"

	"github.com/stretchr/testify/assert"
)

func TestLobbyRowRoundTrip(t *testing.T) {
	start := time.Date(2025, 8, 2, 19, 30, 0, 0, time.UTC)
	original := lobby.NewLobby("l1", lobby.Player{ID: "creator", Name: "Ana", Resolved: true}, start, 120)
	original.CourtName = "Court 3"
	original.Visibility = lobby.VisibilityInvite
	original.Club = &lobby.Club{ID: "club-1", Name: "Padel Nord", City: "Zaragoza"}
	assert.NoError(t, original.AddPlayer(lobby.PlayerRef("a"), lobby.SideLeft))
	assert.NoError(t, original.AddPlayer(lobby.PlayerRef("b"), lobby.SideRight))

	row := lobbyToRow(original)
	row.SideSlots = sideSlotRows(original)

	got := lobbyFromRow(row)

	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Status, got.Status)
	assert.Equal(t, original.Visibility, got.Visibility)
	assert.Equal(t, original.MaxPlayersBySide, got.MaxPlayersBySide)
	assert.Equal(t, original.StartAt, got.StartAt)
	assert.Equal(t, original.DurationMinutes, got.DurationMinutes)
	assert.Equal(t, original.CourtName, got.CourtName)
	assert.ElementsMatch(t, []string{"a"}, idsOf(got.LeftSideSlots))
	assert.ElementsMatch(t, []string{"b"}, idsOf(got.RightSideSlots))

	// The creator comes back as an explicit unresolved reference
	assert.Equal(t, "creator", got.CreatedBy.ID)
	assert.False(t, got.CreatedBy.Resolved)

	// Only the club id is persisted on the lobby row
	assert.NotNil(t, got.Club)
	assert.Equal(t, "club-1", got.Club.ID)
}

func TestLobbyFromRowRederivesStatus(t *testing.T) {
	start := time.Date(2025, 8, 2, 19, 30, 0, 0, time.UTC)
	row := &postgres.Lobby{
		ID:               "l1",
		CreatedBy:        "creator",
		Status:           "open", // stale column value
		Visibility:       "public",
		MaxPlayersBySide: 1,
		StartAt:          start,
		DurationMinutes:  60,
		SideSlots: []*postgres.SideSlot{
			{LobbyID: "l1", PlayerID: "a", Side: "left"},
			{LobbyID: "l1", PlayerID: "b", Side: "right"},
		},
	}

	got := lobbyFromRow(row)
	assert.Equal(t, lobby.StatusConfirmed, got.Status)
}

func TestPlayerRowRoundTrip(t *testing.T) {
	p := &lobby.Player{
		ID:             "p1",
		Name:           "Ana",
		SkillLevel:     "A2",
		City:           "Zaragoza",
		ExternalAuthID: "auth-1",
		Email:          "ana@example.com",
	}

	got := playerFromRow(playerToRow(p))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.SkillLevel, got.SkillLevel)
	assert.Equal(t, p.Email, got.Email)
	assert.True(t, got.Resolved)
}

func TestClubRowRoundTripWithAndWithoutSlug(t *testing.T) {
	withSlug := &lobby.Club{ID: "c1", Name: "Padel Nord", Slug: "padel-nord"}
	got := clubFromRow(clubToRow(withSlug))
	assert.Equal(t, "padel-nord", got.Slug)

	noSlug := &lobby.Club{ID: "c2", Name: "Padel Sud"}
	row := clubToRow(noSlug)
	assert.Nil(t, row.Slug)
	assert.Equal(t, "", clubFromRow(row).Slug)
}

func TestSideSlotRowsPartition(t *testing.T) {
	l := lobby.NewLobby("l1", lobby.PlayerRef("creator"), time.Now(), 60)
	assert.NoError(t, l.AddPlayer(lobby.PlayerRef("a"), lobby.SideLeft))
	assert.NoError(t, l.AddPlayer(lobby.PlayerRef("b"), lobby.SideLeft))
	assert.NoError(t, l.AddPlayer(lobby.PlayerRef("c"), lobby.SideRight))

	rows := sideSlotRows(l)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "l1", row.LobbyID)
	}
	assert.Equal(t, "left", rows[0].Side)
	assert.Equal(t, "left", rows[1].Side)
	assert.Equal(t, "right", rows[2].Side)
}
