package models

import "time"

// OrderingMode matches the ordering_mode ENUM in the database.
type OrderingMode string

const (
	OrderingModeLinear OrderingMode = "linear"
	OrderingModeSnake  OrderingMode = "snake"
)

// DraftStatus matches the draft_status ENUM in the database.
type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "pending"
	DraftStatusActive    DraftStatus = "active"
	DraftStatusCompleted DraftStatus = "completed"
)

// League is one draft instance bound to a real-world tournament.
//
// The cursor triple (CurrentRound, CurrentPick, OverallPick) and
// DraftStatus are always written together, inside a transaction, by the
// draft service. OverallPick counts committed picks; while the draft is
// active, CurrentRound/CurrentPick are the coordinates of the next turn
// assignment.
type League struct {
	ID             int          `json:"id" db:"id"`
	TournamentID   int          `json:"tournament_id" db:"tournament_id"`
	CommissionerID int          `json:"commissioner_id" db:"commissioner_id"`
	Name           string       `json:"name" db:"name"`
	InviteCode     string       `json:"invite_code,omitempty" db:"invite_code"`
	OrderingMode   OrderingMode `json:"ordering_mode" db:"ordering_mode"`
	MaxTeams       int          `json:"max_teams" db:"max_teams"`
	RosterSize     int          `json:"roster_size" db:"roster_size"`
	DraftStatus    DraftStatus  `json:"draft_status" db:"draft_status"`
	CurrentRound   int          `json:"current_round" db:"current_round"`
	CurrentPick    int          `json:"current_pick" db:"current_pick"`
	OverallPick    int          `json:"overall_pick" db:"overall_pick"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	LogoKey        *string      `json:"-" db:"logo_key"`
	LogoURL        *string      `json:"logo_url,omitempty" db:"-"`

	Tournament *Tournament   `json:"tournament,omitempty" db:"-"`
	Teams      []FantasyTeam `json:"teams,omitempty" db:"-"`
}

// TotalPicks is the length of the generated draft order for the teams
// actually seated in the league.
func (l League) TotalPicks(teamCount int) int {
	return teamCount * l.RosterSize
}
