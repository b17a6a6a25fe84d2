package store

import (
	"errors"

	"Courtside/models/postgres"
	"Courtside/services/lobby"

	"gorm.io/gorm"
)

type ClubStore interface {
	Create(c *lobby.Club) error
	GetByID(id string) (*lobby.Club, error)
	Update(c *lobby.Club) error
	Delete(id string) error
	List() ([]*lobby.Club, error)
}

type GormClubStore struct {
	db *gorm.DB
}

func NewGormClubStore(db *gorm.DB) *GormClubStore {
	return &GormClubStore{db: db}
}

func (s *GormClubStore) Create(c *lobby.Club) error {
	row := clubToRow(c)
	if err := s.db.Create(row).Error; err != nil {
		return err
	}
	// BeforeCreate may have assigned the id
	c.ID = row.ID
	return nil
}

func (s *GormClubStore) GetByID(id string) (*lobby.Club, error) {
	var row postgres.Club
	err := s.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return clubFromRow(&row), nil
}

func (s *GormClubStore) Update(c *lobby.Club) error {
	result := s.db.Model(&postgres.Club{}).Where("id = ?", c.ID).
		Updates(clubToRow(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormClubStore) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&postgres.Club{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormClubStore) List() ([]*lobby.Club, error) {
	var rows []*postgres.Club
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	clubs := make([]*lobby.Club, len(rows))
	for i, row := range rows {
		clubs[i] = clubFromRow(row)
	}
	return clubs, nil
}
