package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Lobby' is the scalar row of a lobby. Side membership lives in the
 * side_slots table; the two are always written together inside one
 * transaction (see store.GormLobbyStore).
 */
type Lobby struct {
	ID               string    `gorm:"primaryKey;size:50;not null"`
	CreatedBy        string    `gorm:"size:50;not null;index:idx_lobbies_creator"`
	Status           string    `gorm:"size:20;not null;default:'open';index:idx_lobbies_status"`
	Visibility       string    `gorm:"size:20;not null;default:'public'"`
	MaxPlayersBySide int       `gorm:"not null;default:2"`
	StartAt          time.Time `gorm:"not null;index:idx_lobbies_start_at"`
	DurationMinutes  int       `gorm:"not null"`
	CourtName        string    `gorm:"size:100"`
	ClubID           *string   `gorm:"size:50;index:idx_lobbies_club"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Club      *Club       `gorm:"foreignKey:ClubID"`
	SideSlots []*SideSlot `gorm:"foreignKey:LobbyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (l *Lobby) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// SideSlot is one player's occupancy of one side of one lobby.
type SideSlot struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	LobbyID  string `gorm:"size:50;not null;index:idx_side_slots_lobby"`
	PlayerID string `gorm:"size:50;not null"`
	Side     string `gorm:"size:10;not null"`
}
