package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Club is the storage row for a club. Lobbies reference it by id; display
// fields may be empty when a lobby was created knowing only the club id.
type Club struct {
	ID      string  `gorm:"primaryKey;size:50;not null"`
	Name    string  `gorm:"size:100;not null"`
	Address string  `gorm:"size:255"`
	City    string  `gorm:"size:100"`
	Slug    *string `gorm:"size:100;uniqueIndex:idx_clubs_slug"`

	Lobbies []*Lobby `gorm:"foreignKey:ClubID"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
