package draftorder

import (
	"errors"
	"fmt"

	"github.com/Dosada05/fantasy-draft/models"
)

var (
	ErrNotEnoughTeams    = errors.New("draft order requires at least 2 teams")
	ErrInvalidRosterSize = errors.New("draft order requires a roster size of at least 1")
	ErrTooManyTeams      = errors.New("more teams than the league capacity allows")
)

// GenerateOrderParams carries everything a generator needs. Teams must
// already be in seat order (draft position ascending); the generator
// never reorders them, which keeps the output deterministic and
// regenerable after a restart.
type GenerateOrderParams struct {
	League *models.League
	Teams  []*models.FantasyTeam
}

// OrderGenerator produces the full turn sequence for a league. The
// result has length len(Teams) * RosterSize with a dense 1-based
// overall pick index; a league seated below capacity simply yields a
// shorter order.
type OrderGenerator interface {
	GenerateOrder(params GenerateOrderParams) ([]models.TurnAssignment, error)

	Mode() models.OrderingMode
}

// ForMode returns the generator for a league's ordering mode.
func ForMode(mode models.OrderingMode) (OrderGenerator, error) {
	switch mode {
	case models.OrderingModeLinear:
		return NewLinearGenerator(), nil
	case models.OrderingModeSnake:
		return NewSnakeGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported ordering mode %q", mode)
	}
}

func validateParams(params GenerateOrderParams) error {
	if len(params.Teams) < 2 {
		return fmt.Errorf("%w (found %d)", ErrNotEnoughTeams, len(params.Teams))
	}
	if params.League.RosterSize < 1 {
		return fmt.Errorf("%w (found %d)", ErrInvalidRosterSize, params.League.RosterSize)
	}
	if params.League.MaxTeams > 0 && len(params.Teams) > params.League.MaxTeams {
		return fmt.Errorf("%w (%d teams, capacity %d)", ErrTooManyTeams, len(params.Teams), params.League.MaxTeams)
	}
	return nil
}

// buildOrder lays out one assignment per round and seat, asking seatFor
// for the seat index to use at (round, pickInRound). Rounds and picks
// are 1-based; overall picks are assigned densely in round-major order.
func buildOrder(params GenerateOrderParams, seatFor func(round, pickInRound, teamCount int) int) []models.TurnAssignment {
	teamCount := len(params.Teams)
	order := make([]models.TurnAssignment, 0, params.League.TotalPicks(teamCount))

	overall := 0
	for round := 1; round <= params.League.RosterSize; round++ {
		for pickInRound := 1; pickInRound <= teamCount; pickInRound++ {
			overall++
			seat := seatFor(round, pickInRound, teamCount)
			order = append(order, models.TurnAssignment{
				LeagueID:      params.League.ID,
				Round:         round,
				PickInRound:   pickInRound,
				OverallPick:   overall,
				FantasyTeamID: params.Teams[seat].ID,
			})
		}
	}
	return order
}
