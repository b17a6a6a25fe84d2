package store

import (
	"sort"
	"sync"

	"Courtside/services/lobby"
)

// InMemoryPlayerStore mirrors GormPlayerStore for tests.
type InMemoryPlayerStore struct {
	mu      sync.Mutex
	players map[string]lobby.Player
}

func NewInMemoryPlayerStore() *InMemoryPlayerStore {
	return &InMemoryPlayerStore{players: make(map[string]lobby.Player)}
}

func (s *InMemoryPlayerStore) Create(p *lobby.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *p
	stored.Resolved = true
	s.players[p.ID] = stored
	return nil
}

func (s *InMemoryPlayerStore) GetByID(id string) (*lobby.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryPlayerStore) GetByIDs(ids []string) ([]*lobby.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := make([]*lobby.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.players[id]; ok {
			player := p
			found = append(found, &player)
		}
	}
	return found, nil
}

func (s *InMemoryPlayerStore) Update(p *lobby.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	stored.Resolved = true
	s.players[p.ID] = stored
	return nil
}

func (s *InMemoryPlayerStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return ErrNotFound
	}
	delete(s.players, id)
	return nil
}

func (s *InMemoryPlayerStore) List() ([]*lobby.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	players := make([]*lobby.Player, 0, len(s.players))
	for _, p := range s.players {
		player := p
		players = append(players, &player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}
