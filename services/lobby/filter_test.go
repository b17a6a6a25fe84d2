package lobby

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func buildFilterFixtures() []*Lobby {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	open1 := NewLobby("open-club1", Player{ID: "ana"}, base.Add(2*time.Hour), 90)
	open1.Club = &Club{ID: "club-1"}

	open2 := NewLobby("open-club2", Player{ID: "bea"}, base.Add(1*time.Hour), 60)
	open2.Club = &Club{ID: "club-2"}

	confirmed := NewLobby("confirmed-club1", Player{ID: "ana"}, base.Add(3*time.Hour), 90)
	confirmed.Club = &Club{ID: "club-1"}
	confirmed.MaxPlayersBySide = 1
	confirmed.AddPlayer(PlayerRef("p1"), SideLeft)
	confirmed.AddPlayer(PlayerRef("p2"), SideRight)

	noClub := NewLobby("no-club", Player{ID: "bea"}, base, 60)

	return []*Lobby{open1, open2, confirmed, noClub}
}

func idsOf(lobbies []*Lobby) []string {
	ids := make([]string, len(lobbies))
	for i, l := range lobbies {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterByStatusAndClub(t *testing.T) {
	lobbies := buildFilterFixtures()

	got := FilterLobbies(lobbies, Filters{Status: StatusOpen, ClubID: "club-1"})
	assert.Equal(t, []string{"open-club1"}, idsOf(got))
}

func TestFilterByCreator(t *testing.T) {
	lobbies := buildFilterFixtures()

	got := FilterLobbies(lobbies, Filters{CreatedBy: "ana"})
	assert.Equal(t, []string{"open-club1", "confirmed-club1"}, idsOf(got))
}

func TestFilterByTimeRangeExclusive(t *testing.T) {
	lobbies := buildFilterFixtures()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// Bounds are exclusive: lobbies starting exactly at either bound drop out
	got := FilterLobbies(lobbies, Filters{
		StartAfter:  base,
		StartBefore: base.Add(3 * time.Hour),
	})
	assert.Equal(t, []string{"open-club2", "open-club1"}, idsOf(got))
}

func TestFilterAvailableOnly(t *testing.T) {
	lobbies := buildFilterFixtures()

	got := FilterLobbies(lobbies, Filters{AvailableOnly: true})
	assert.Equal(t, []string{"no-club", "open-club2", "open-club1"}, idsOf(got))
}

func TestFiltersAreANDed(t *testing.T) {
	lobbies := buildFilterFixtures()

	got := FilterLobbies(lobbies, Filters{Status: StatusConfirmed, CreatedBy: "bea"})
	assert.Empty(t, got)
}

func TestNoFiltersSortsByStartAt(t *testing.T) {
	lobbies := buildFilterFixtures()

	got := FilterLobbies(lobbies, Filters{})
	assert.Equal(t, []string{"no-club", "open-club2", "open-club1", "confirmed-club1"}, idsOf(got))
}
