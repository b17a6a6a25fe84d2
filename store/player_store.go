package store

import (
	"errors"

	"Courtside/models/postgres"
	"Courtside/services/lobby"

	"gorm.io/gorm"
)

// ErrNotFound is returned by the reference-entity stores (players, clubs)
// when the requested id does not exist.
var ErrNotFound = errors.New("record not found")

type PlayerStore interface {
	Create(p *lobby.Player) error
	GetByID(id string) (*lobby.Player, error)
	GetByIDs(ids []string) ([]*lobby.Player, error)
	Update(p *lobby.Player) error
	Delete(id string) error
	List() ([]*lobby.Player, error)
}

type GormPlayerStore struct {
	db *gorm.DB
}

func NewGormPlayerStore(db *gorm.DB) *GormPlayerStore {
	return &GormPlayerStore{db: db}
}

func (s *GormPlayerStore) Create(p *lobby.Player) error {
	return s.db.Create(playerToRow(p)).Error
}

func (s *GormPlayerStore) GetByID(id string) (*lobby.Player, error) {
	var row postgres.Player
	err := s.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return playerFromRow(&row), nil
}

func (s *GormPlayerStore) GetByIDs(ids []string) ([]*lobby.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []*postgres.Player
	if err := s.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	players := make([]*lobby.Player, len(rows))
	for i, row := range rows {
		players[i] = playerFromRow(row)
	}
	return players, nil
}

func (s *GormPlayerStore) Update(p *lobby.Player) error {
	result := s.db.Model(&postgres.Player{}).Where("id = ?", p.ID).
		Updates(playerToRow(p))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormPlayerStore) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&postgres.Player{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormPlayerStore) List() ([]*lobby.Player, error) {
	var rows []*postgres.Player
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	players := make([]*lobby.Player, len(rows))
	for i, row := range rows {
		players[i] = playerFromRow(row)
	}
	return players, nil
}
