package store

import (
	"Courtside/services/lobby"
)

// LobbyStore loads and saves a lobby aggregate together with its side-slot
// rows. Save has upsert semantics; the persisted slot set always exactly
// matches the in-memory sides (delete-all-then-reinsert).
//
// Update is the single-writer point for join/leave: it runs load, mutate
// and save inside one transactional boundary so two concurrent joins
// against the same lobby cannot both see the same free slot.
type LobbyStore interface {
	Save(l *lobby.Lobby) error
	FindByID(id string) (*lobby.Lobby, error)
	Update(id string, mutate func(*lobby.Lobby) error) (*lobby.Lobby, error)
	Delete(id string) error
	List(f lobby.Filters) ([]*lobby.Lobby, error)
	FindByPlayer(playerID string) ([]*lobby.Lobby, error)
}
