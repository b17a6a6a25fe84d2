package store

import (
	"testing"
	"time"

	"Courtside/services/lobby"

	"github.com/stretchr/testify/assert"
)

func seedLobby(t *testing.T, s *InMemoryLobbyStore, id string, startAt time.Time) *lobby.Lobby {
	l := lobby.NewLobby(id, lobby.PlayerRef("creator"), startAt, 90)
	assert.NoError(t, s.Save(l))
	return l
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewInMemoryLobbyStore()
	start := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)

	l := lobby.NewLobby("l1", lobby.PlayerRef("creator"), start, 90)
	l.MaxPlayersBySide = 1
	assert.NoError(t, l.AddPlayer(lobby.PlayerRef("a"), lobby.SideLeft))
	assert.NoError(t, l.AddPlayer(lobby.PlayerRef("b"), lobby.SideRight))
	assert.NoError(t, s.Save(l))

	got, err := s.FindByID("l1")
	assert.NoError(t, err)
	assert.Equal(t, l.Status, got.Status)
	assert.Equal(t, lobby.StatusConfirmed, got.Status)
	assert.ElementsMatch(t, []string{"a"}, idsOf(got.LeftSideSlots))
	assert.ElementsMatch(t, []string{"b"}, idsOf(got.RightSideSlots))
}

func TestMemoryStoreFindMissing(t *testing.T) {
	s := NewInMemoryLobbyStore()

	_, err := s.FindByID("nope")
	assert.ErrorIs(t, err, lobby.ErrLobbyNotFound)
}

func TestMemoryStoreUpdateIsAtomic(t *testing.T) {
	s := NewInMemoryLobbyStore()
	start := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	seedLobby(t, s, "l1", start)

	updated, err := s.Update("l1", func(l *lobby.Lobby) error {
		return l.AddPlayer(lobby.PlayerRef("a"), lobby.SideLeft)
	})
	assert.NoError(t, err)
	assert.Len(t, updated.LeftSideSlots, 1)

	// A failing mutation leaves the stored lobby untouched
	_, err = s.Update("l1", func(l *lobby.Lobby) error {
		if err := l.AddPlayer(lobby.PlayerRef("b"), lobby.SideLeft); err != nil {
			return err
		}
		return l.AddPlayer(lobby.PlayerRef("b"), lobby.SideRight)
	})
	assert.ErrorIs(t, err, lobby.ErrPlayerAlreadyPresent)

	got, err := s.FindByID("l1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a"}, idsOf(got.LeftSideSlots))
	assert.Empty(t, got.RightSideSlots)
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	s := NewInMemoryLobbyStore()

	_, err := s.Update("nope", func(l *lobby.Lobby) error { return nil })
	assert.ErrorIs(t, err, lobby.ErrLobbyNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewInMemoryLobbyStore()
	seedLobby(t, s, "l1", time.Now())

	assert.NoError(t, s.Delete("l1"))
	_, err := s.FindByID("l1")
	assert.ErrorIs(t, err, lobby.ErrLobbyNotFound)

	assert.ErrorIs(t, s.Delete("l1"), lobby.ErrLobbyNotFound)
}

func TestMemoryStoreListMatchesInMemoryFilter(t *testing.T) {
	s := NewInMemoryLobbyStore()
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	l1 := lobby.NewLobby("l1", lobby.PlayerRef("ana"), base.Add(2*time.Hour), 90)
	l1.Club = &lobby.Club{ID: "club-1"}
	assert.NoError(t, s.Save(l1))

	l2 := lobby.NewLobby("l2", lobby.PlayerRef("bea"), base.Add(time.Hour), 60)
	l2.Club = &lobby.Club{ID: "club-1"}
	l2.MaxPlayersBySide = 1
	assert.NoError(t, l2.AddPlayer(lobby.PlayerRef("x"), lobby.SideLeft))
	assert.NoError(t, l2.AddPlayer(lobby.PlayerRef("y"), lobby.SideRight))
	assert.NoError(t, s.Save(l2))

	l3 := lobby.NewLobby("l3", lobby.PlayerRef("ana"), base, 60)
	assert.NoError(t, s.Save(l3))

	filters := lobby.Filters{Status: lobby.StatusOpen, ClubID: "club-1"}
	fromStore, err := s.List(filters)
	assert.NoError(t, err)

	direct := lobby.FilterLobbies([]*lobby.Lobby{l1, l2, l3}, filters)
	assert.Equal(t, lobbyIDs(direct), lobbyIDs(fromStore))
	assert.Equal(t, []string{"l1"}, lobbyIDs(fromStore))
}

func TestMemoryStoreFindByPlayer(t *testing.T) {
	s := NewInMemoryLobbyStore()
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	l1 := lobby.NewLobby("l1", lobby.PlayerRef("ana"), base.Add(time.Hour), 90)
	assert.NoError(t, l1.AddPlayer(lobby.PlayerRef("p1"), lobby.SideLeft))
	assert.NoError(t, s.Save(l1))

	l2 := lobby.NewLobby("l2", lobby.PlayerRef("bea"), base, 60)
	assert.NoError(t, l2.AddPlayer(lobby.PlayerRef("p1"), lobby.SideRight))
	assert.NoError(t, s.Save(l2))

	l3 := lobby.NewLobby("l3", lobby.PlayerRef("bea"), base, 60)
	assert.NoError(t, s.Save(l3))

	got, err := s.FindByPlayer("p1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"l2", "l1"}, lobbyIDs(got))
}

func idsOf(players []lobby.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

func lobbyIDs(lobbies []*lobby.Lobby) []string {
	ids := make([]string, len(lobbies))
	for i, l := range lobbies {
		ids[i] = l.ID
	}
	return ids
}
