package models

import "time"

// TurnAssignment is one entry of a league's generated draft order:
// in round Round, pick PickInRound belongs to FantasyTeamID.
// OverallPick is the dense 1-based index of the assignment across the
// whole order.
type TurnAssignment struct {
	ID            int `json:"id" db:"id"`
	LeagueID      int `json:"league_id" db:"league_id"`
	Round         int `json:"round" db:"round"`
	PickInRound   int `json:"pick_in_round" db:"pick_in_round"`
	OverallPick   int `json:"overall_pick" db:"overall_pick"`
	FantasyTeamID int `json:"fantasy_team_id" db:"fantasy_team_id"`
}

// Pick is the durable result of one admitted pick attempt. Rows are
// immutable once written; only a full league reset removes them. The
// (league_id, player_id) pair is unique at the storage layer.
type Pick struct {
	ID            int       `json:"id" db:"id"`
	LeagueID      int       `json:"league_id" db:"league_id"`
	FantasyTeamID int       `json:"fantasy_team_id" db:"fantasy_team_id"`
	PlayerID      int       `json:"player_id" db:"player_id"`
	Round         int       `json:"round" db:"round"`
	PickInRound   int       `json:"pick_in_round" db:"pick_in_round"`
	OverallPick   int       `json:"overall_pick" db:"overall_pick"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

// SlotLabelFlex is the unconstrained default roster slot.
const SlotLabelFlex = "flex"

// RosterEntry records that a fantasy team owns a drafted player.
type RosterEntry struct {
	ID            int       `json:"id" db:"id"`
	LeagueID      int       `json:"league_id" db:"league_id"`
	FantasyTeamID int       `json:"fantasy_team_id" db:"fantasy_team_id"`
	PlayerID      int       `json:"player_id" db:"player_id"`
	SlotLabel     string    `json:"slot_label" db:"slot_label"`
	AcquiredAt    time.Time `json:"acquired_at" db:"acquired_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

// RosterEntryFromPick maps an admitted pick to the roster entry that
// mirrors it. An empty slot label defaults to SlotLabelFlex; positional
// eligibility is not checked here.
func RosterEntryFromPick(pick *Pick, slotLabel string) RosterEntry {
	if slotLabel == "" {
		slotLabel = SlotLabelFlex
	}
	return RosterEntry{
		LeagueID:      pick.LeagueID,
		FantasyTeamID: pick.FantasyTeamID,
		PlayerID:      pick.PlayerID,
		SlotLabel:     slotLabel,
	}
}
