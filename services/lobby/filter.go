package lobby

import (
	"sort"
	"time"
)

// Filters narrows a lobby listing. Zero values mean "not set". All set
// filters are ANDed together; results are always ordered by StartAt
// ascending. The same options are applied as SQL conditions by the GORM
// store, and FilterLobbies is the in-memory mirror of that query — both
// must produce identical results.
type Filters struct {
	Status        Status
	ClubID        string
	CreatedBy     string
	StartAfter    time.Time // exclusive
	StartBefore   time.Time // exclusive
	AvailableOnly bool
}

// Match reports whether a single lobby passes every set filter.
func (f Filters) Match(l *Lobby) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.ClubID != "" && (l.Club == nil || l.Club.ID != f.ClubID) {
		return false
	}
	if f.CreatedBy != "" && l.CreatedBy.ID != f.CreatedBy {
		return false
	}
	if !f.StartAfter.IsZero() && !l.StartAt.After(f.StartAfter) {
		return false
	}
	if !f.StartBefore.IsZero() && !l.StartAt.Before(f.StartBefore) {
		return false
	}
	if f.AvailableOnly && l.IsFull() {
		return false
	}
	return true
}

// FilterLobbies evaluates the filters over an in-memory collection and
// sorts the survivors by start time ascending.
func FilterLobbies(lobbies []*Lobby, f Filters) []*Lobby {
	filtered := make([]*Lobby, 0, len(lobbies))
	for _, l := range lobbies {
		if f.Match(l) {
			filtered = append(filtered, l)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartAt.Before(filtered[j].StartAt)
	})
	return filtered
}
