package models

import "time"

// PlayerRole matches the player_role ENUM in the database.
type PlayerRole string

const (
	PlayerRoleBatter       PlayerRole = "batter"
	PlayerRoleBowler       PlayerRole = "bowler"
	PlayerRoleAllRounder   PlayerRole = "all_rounder"
	PlayerRoleWicketKeeper PlayerRole = "wicket_keeper"
)

// Player is a catalog entity from a tournament's squad list. Players
// are drafted at most once per league; ownership is tracked through
// picks and roster entries, never on the player itself.
type Player struct {
	ID           int        `json:"id" db:"id"`
	TournamentID int        `json:"tournament_id" db:"tournament_id"`
	FullName     string     `json:"full_name" db:"full_name"`
	Role         PlayerRole `json:"role" db:"role"`
	Country      *string    `json:"country,omitempty" db:"country"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
