package store

import (
	"sync"

	"Courtside/services/lobby"
)

// InMemoryLobbyStore is a map-backed LobbyStore with the same semantics as
// the GORM store. Used in tests and as the parity reference for the query
// filters.
type InMemoryLobbyStore struct {
	mu      sync.Mutex
	lobbies map[string]*lobby.Lobby
}

func NewInMemoryLobbyStore() *InMemoryLobbyStore {
	return &InMemoryLobbyStore{lobbies: make(map[string]*lobby.Lobby)}
}

func (s *InMemoryLobbyStore) Save(l *lobby.Lobby) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[l.ID] = l.Clone()
	return nil
}

func (s *InMemoryLobbyStore) FindByID(id string) (*lobby.Lobby, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	if !ok {
		return nil, lobby.ErrLobbyNotFound
	}
	return l.Clone(), nil
}

// Update applies the mutation under the store lock, the in-memory
// equivalent of the row lock the GORM store takes.
func (s *InMemoryLobbyStore) Update(id string, mutate func(*lobby.Lobby) error) (*lobby.Lobby, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.lobbies[id]
	if !ok {
		return nil, lobby.ErrLobbyNotFound
	}
	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	s.lobbies[id] = next
	return next.Clone(), nil
}

func (s *InMemoryLobbyStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lobbies[id]; !ok {
		return lobby.ErrLobbyNotFound
	}
	delete(s.lobbies, id)
	return nil
}

func (s *InMemoryLobbyStore) List(f lobby.Filters) ([]*lobby.Lobby, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*lobby.Lobby, 0, len(s.lobbies))
	for _, l := range s.lobbies {
		all = append(all, l.Clone())
	}
	return lobby.FilterLobbies(all, f), nil
}

func (s *InMemoryLobbyStore) FindByPlayer(playerID string) ([]*lobby.Lobby, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*lobby.Lobby, 0)
	for _, l := range s.lobbies {
		if l.HasPlayer(lobby.PlayerRef(playerID)) {
			matched = append(matched, l.Clone())
		}
	}
	return lobby.FilterLobbies(matched, lobby.Filters{}), nil
}
