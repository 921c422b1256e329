package models

import "time"

// TournamentStatus matches the tournament_status ENUM in the database.
type TournamentStatus string

const (
	TournamentStatusSoon      TournamentStatus = "soon"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
)

// Tournament is a real-world competition whose player pool fantasy
// leagues draft from.
type Tournament struct {
	ID        int              `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Sport     string           `json:"sport" db:"sport"`
	Season    string           `json:"season" db:"season"`
	Status    TournamentStatus `json:"status" db:"status"`
	StartDate time.Time        `json:"start_date" db:"start_date"`
	EndDate   time.Time        `json:"end_date" db:"end_date"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	LogoKey   *string          `json:"-" db:"logo_key"`
	LogoURL   *string          `json:"logo_url,omitempty" db:"-"`

	Players []Player `json:"players,omitempty" db:"-"`
}
