package lobby

import "time"

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusConfirmed Status = "confirmed"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityInvite  Visibility = "invite"
	VisibilityPrivate Visibility = "private"
)

const (
	DefaultMaxPlayersBySide = 2
	DefaultCourtName        = "Court 1"
)

// Player is held by the lobby for display only; player lifecycle is owned
// by the player store. Resolved is false when only the id is known (e.g. a
// join request carries nothing but the player id).
type Player struct {
	ID             string
	Name           string
	SkillLevel     string
	ProfilePicture string
	City           string
	ExternalAuthID string
	Email          string
	Resolved       bool
}

// PlayerRef builds an unresolved reference to a player by id.
func PlayerRef(id string) Player {
	return Player{ID: id}
}

type Club struct {
	ID      string
	Name    string
	Address string
	City    string
	Slug    string
}

// Lobby is the aggregate root: two sides of players plus the derived
// open/confirmed status. It carries no persistence tags; mapping to rows
// lives in the store package.
type Lobby struct {
	ID               string
	CreatedBy        Player
	Status           Status
	Visibility       Visibility
	MaxPlayersBySide int
	LeftSideSlots    []Player
	RightSideSlots   []Player
	StartAt          time.Time
	DurationMinutes  int
	CourtName        string
	Club             *Club
}

// NewLobby creates an open lobby with empty sides. The creator is recorded
// but not seated; joining is an explicit operation.
func NewLobby(id string, createdBy Player, startAt time.Time, durationMinutes int) *Lobby {
	return &Lobby{
		ID:               id,
		CreatedBy:        createdBy,
		Status:           StatusOpen,
		Visibility:       VisibilityPublic,
		MaxPlayersBySide: DefaultMaxPlayersBySide,
		StartAt:          startAt,
		DurationMinutes:  durationMinutes,
		CourtName:        DefaultCourtName,
	}
}

// AddPlayer seats a player on the given side. It fails with ErrLobbyFull
// when both sides are at capacity, or when the requested side alone is at
// capacity, and with ErrPlayerAlreadyPresent when the player id is already
// seated on either side.
func (l *Lobby) AddPlayer(p Player, side Side) error {
	if side != SideLeft && side != SideRight {
		return ErrInvalidSide
	}
	if l.IsFull() {
		return ErrLobbyFull
	}
	if l.HasPlayer(p) {
		return ErrPlayerAlreadyPresent
	}

	switch side {
	case SideLeft:
		if len(l.LeftSideSlots) >= l.MaxPlayersBySide {
			return ErrLobbyFull
		}
		l.LeftSideSlots = append(l.LeftSideSlots, p)
	case SideRight:
		if len(l.RightSideSlots) >= l.MaxPlayersBySide {
			return ErrLobbyFull
		}
		l.RightSideSlots = append(l.RightSideSlots, p)
	}

	l.RecomputeStatus()
	return nil
}

// RemovePlayer unseats a player from whichever side holds it. The status
// may move back from confirmed to open; there is no locked-once-confirmed
// semantics.
func (l *Lobby) RemovePlayer(p Player) error {
	if !l.HasPlayer(p) {
		return ErrPlayerNotFound
	}

	l.LeftSideSlots = removeByID(l.LeftSideSlots, p.ID)
	l.RightSideSlots = removeByID(l.RightSideSlots, p.ID)

	l.RecomputeStatus()
	return nil
}

// IsFull reports whether both sides are at capacity.
func (l *Lobby) IsFull() bool {
	return len(l.LeftSideSlots) >= l.MaxPlayersBySide &&
		len(l.RightSideSlots) >= l.MaxPlayersBySide
}

// HasPlayer reports whether the player id is seated on either side.
func (l *Lobby) HasPlayer(p Player) bool {
	for _, seated := range l.LeftSideSlots {
		if seated.ID == p.ID {
			return true
		}
	}
	for _, seated := range l.RightSideSlots {
		if seated.ID == p.ID {
			return true
		}
	}
	return false
}

// Players returns every seated player, left side first.
func (l *Lobby) Players() []Player {
	all := make([]Player, 0, len(l.LeftSideSlots)+len(l.RightSideSlots))
	all = append(all, l.LeftSideSlots...)
	all = append(all, l.RightSideSlots...)
	return all
}

// RecomputeStatus rederives status from fullness. Every membership mutation
// calls this; stores call it after reconstructing the aggregate from rows so
// the invariant holds even if the persisted status column drifted.
func (l *Lobby) RecomputeStatus() {
	if l.IsFull() {
		l.Status = StatusConfirmed
	} else {
		l.Status = StatusOpen
	}
}

// Clone returns a deep copy, so stores can hand out aggregates that are
// detached from their internal state.
func (l *Lobby) Clone() *Lobby {
	dup := *l
	dup.LeftSideSlots = append([]Player(nil), l.LeftSideSlots...)
	dup.RightSideSlots = append([]Player(nil), l.RightSideSlots...)
	if l.Club != nil {
		club := *l.Club
		dup.Club = &club
	}
	return &dup
}

func removeByID(slots []Player, id string) []Player {
	kept := slots[:0]
	for _, p := range slots {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return kept
}
