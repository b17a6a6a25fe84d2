package store

import (
	"errors"

	"Courtside/models/postgres"
	"Courtside/services/lobby"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLobbyStore persists lobby aggregates in PostgreSQL through GORM.
type GormLobbyStore struct {
	db *gorm.DB
}

func NewGormLobbyStore(db *gorm.DB) *GormLobbyStore {
	return &GormLobbyStore{db: db}
}

// Save upserts the scalar row and fully replaces the side_slots rows, all
// inside one transaction. A partial failure rolls everything back so the
// lobby never ends up with mismatched scalar/slot state.
func (s *GormLobbyStore) Save(l *lobby.Lobby) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return saveLobbyTx(tx, l)
	})
}

func saveLobbyTx(tx *gorm.DB, l *lobby.Lobby) error {
	row := lobbyToRow(l)

	err := tx.Omit("Club", "SideSlots").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "visibility", "max_players_by_side", "start_at",
			"duration_minutes", "court_name", "club_id", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return err
	}

	// Full replace keeps the persisted slot set identical to the aggregate.
	if err := tx.Where("lobby_id = ?", l.ID).Delete(&postgres.SideSlot{}).Error; err != nil {
		return err
	}
	slots := sideSlotRows(l)
	if len(slots) > 0 {
		if err := tx.Create(&slots).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *GormLobbyStore) FindByID(id string) (*lobby.Lobby, error) {
	var row postgres.Lobby
	err := s.db.Preload("SideSlots").Preload("Club").
		Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lobby.ErrLobbyNotFound
	}
	if err != nil {
		return nil, err
	}
	return lobbyFromRow(&row), nil
}

// Update loads the lobby with a row lock, applies the mutation and saves
// the result, all in one transaction. The FOR UPDATE lock serializes
// concurrent joins against the same lobby id.
func (s *GormLobbyStore) Update(id string, mutate func(*lobby.Lobby) error) (*lobby.Lobby, error) {
	var updated *lobby.Lobby
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row postgres.Lobby
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("SideSlots").
			Where("id = ?", id).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lobby.ErrLobbyNotFound
		}
		if err != nil {
			return err
		}

		agg := lobbyFromRow(&row)
		if err := mutate(agg); err != nil {
			return err
		}
		if err := saveLobbyTx(tx, agg); err != nil {
			return err
		}
		updated = agg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *GormLobbyStore) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lobby_id = ?", id).Delete(&postgres.SideSlot{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&postgres.Lobby{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return lobby.ErrLobbyNotFound
		}
		return nil
	})
}

// List returns lobbies matching the filters ordered by start_at ascending.
// The SQL conditions mirror lobby.Filters.Match exactly; the in-memory and
// database paths must stay equivalent.
func (s *GormLobbyStore) List(f lobby.Filters) ([]*lobby.Lobby, error) {
	q := s.db.Model(&postgres.Lobby{}).Preload("SideSlots").Preload("Club")
	q = applyFilters(q, f)

	var rows []*postgres.Lobby
	if err := q.Order("start_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	lobbies := make([]*lobby.Lobby, len(rows))
	for i, row := range rows {
		lobbies[i] = lobbyFromRow(row)
	}
	return lobbies, nil
}

func (s *GormLobbyStore) FindByPlayer(playerID string) ([]*lobby.Lobby, error) {
	var rows []*postgres.Lobby
	err := s.db.Preload("SideSlots").Preload("Club").
		Where("id IN (SELECT lobby_id FROM side_slots WHERE player_id = ?)", playerID).
		Order("start_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	lobbies := make([]*lobby.Lobby, len(rows))
	for i, row := range rows {
		lobbies[i] = lobbyFromRow(row)
	}
	return lobbies, nil
}

func applyFilters(q *gorm.DB, f lobby.Filters) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.ClubID != "" {
		q = q.Where("club_id = ?", f.ClubID)
	}
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if !f.StartAfter.IsZero() {
		q = q.Where("start_at > ?", f.StartAfter)
	}
	if !f.StartBefore.IsZero() {
		q = q.Where("start_at < ?", f.StartBefore)
	}
	if f.AvailableOnly {
		q = q.Where(`(SELECT COUNT(*) FROM side_slots WHERE side_slots.lobby_id = lobbies.id AND side_slots.side = 'left') < max_players_by_side
			OR (SELECT COUNT(*) FROM side_slots WHERE side_slots.lobby_id = lobbies.id AND side_slots.side = 'right') < max_players_by_side`)
	}
	return q
}
