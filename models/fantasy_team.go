package models

import "time"

// FantasyTeam is one seat in a league. DraftPosition is the team's
// 1-based place in round one of the draft order; it is assigned when
// the owner joins and never changes afterwards.
type FantasyTeam struct {
	ID            int       `json:"id" db:"id"`
	LeagueID      int       `json:"league_id" db:"league_id"`
	OwnerID       int       `json:"owner_id" db:"owner_id"`
	Name          string    `json:"name" db:"name"`
	DraftPosition int       `json:"draft_position" db:"draft_position"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Owner  *User         `json:"owner,omitempty" db:"-"`
	Roster []RosterEntry `json:"roster,omitempty" db:"-"`
}
