package postgres

/*
 * 'Player' is the storage row for a registered player. The lobby aggregate
 * only references players by id; this table owns their lifecycle.
 */
type Player struct {
	ID             string `gorm:"primaryKey;size:50;not null"`
	Name           string `gorm:"size:100;not null"`
	SkillLevel     string `gorm:"size:10"`
	ProfilePicture string `gorm:"size:255"`
	City           string `gorm:"size:100"`
	ExternalAuthID string `gorm:"size:100;uniqueIndex:idx_players_external_auth"`
	Email          string `gorm:"size:100;uniqueIndex:idx_players_email"`
}
