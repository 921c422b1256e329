package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/fantasy-draft/models"
	"github.com/lib/pq"
)

var (
	ErrPickNotFound       = errors.New("pick not found")
	ErrPickPlayerConflict = errors.New("player already drafted in this league")
	ErrPickSlotConflict   = errors.New("overall pick already recorded for this league")
	ErrPickPlayerInvalid  = errors.New("pick player conflict or invalid")
	ErrPickTeamInvalid    = errors.New("pick fantasy team conflict or invalid")
)

// PickRepository owns the picks table. The unique constraint over
// (league_id, player_id) is the storage-level guarantee that a player
// has exactly one owner per league, even if transaction isolation is
// ever misconfigured.
type PickRepository interface {
	Create(ctx context.Context, exec SQLExecutor, pick *models.Pick) error
	ListByLeague(ctx context.Context, leagueID int) ([]*models.Pick, error)
	CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error)
	DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error
}

type postgresPickRepository struct {
	db *sql.DB
}

func NewPostgresPickRepository(db *sql.DB) PickRepository {
	return &postgresPickRepository{db: db}
}

func (r *postgresPickRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPickRepository) Create(ctx context.Context, exec SQLExecutor, pick *models.Pick) error {
	query := `
		INSERT INTO picks (league_id, fantasy_team_id, player_id, round, pick_in_round, overall_pick)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		pick.LeagueID,
		pick.FantasyTeamID,
		pick.PlayerID,
		pick.Round,
		pick.PickInRound,
		pick.OverallPick,
	).Scan(&pick.ID, &pick.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				switch pqErr.Constraint {
				case "picks_league_id_player_id_key":
					return ErrPickPlayerConflict
				case "picks_league_id_overall_pick_key":
					return ErrPickSlotConflict
				}
			case "23503":
				switch pqErr.Constraint {
				case "picks_player_id_fkey":
					return ErrPickPlayerInvalid
				case "picks_fantasy_team_id_fkey":
					return ErrPickTeamInvalid
				}
			}
		}
		return fmt.Errorf("failed to create pick: %w", err)
	}
	return nil
}

// ListByLeague returns picks in admission order with player details
// attached.
func (r *postgresPickRepository) ListByLeague(ctx context.Context, leagueID int) ([]*models.Pick, error) {
	query := `
		SELECT pk.id, pk.league_id, pk.fantasy_team_id, pk.player_id, pk.round, pk.pick_in_round, pk.overall_pick, pk.created_at,
		       pl.id, pl.tournament_id, pl.full_name, pl.role, pl.country, pl.created_at
		FROM picks pk
		JOIN players pl ON pk.player_id = pl.id
		WHERE pk.league_id = $1
		ORDER BY pk.overall_pick ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks by league: %w", err)
	}
	defer rows.Close()

	picks := make([]*models.Pick, 0)
	for rows.Next() {
		var pk models.Pick
		var pl models.Player
		if err := rows.Scan(
			&pk.ID, &pk.LeagueID, &pk.FantasyTeamID, &pk.PlayerID, &pk.Round, &pk.PickInRound, &pk.OverallPick, &pk.CreatedAt,
			&pl.ID, &pl.TournamentID, &pl.FullName, &pl.Role, &pl.Country, &pl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pick row: %w", err)
		}
		pk.Player = &pl
		picks = append(picks, &pk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pick rows: %w", err)
	}
	return picks, nil
}

func (r *postgresPickRepository) CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error) {
	query := `SELECT COUNT(*) FROM picks WHERE league_id = $1`

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, leagueID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count picks by league: %w", err)
	}
	return count, nil
}

func (r *postgresPickRepository) DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error {
	query := `DELETE FROM picks WHERE league_id = $1`
	if _, err := r.getExecutor(exec).ExecContext(ctx, query, leagueID); err != nil {
		return fmt.Errorf("failed to delete picks for league %d: %w", leagueID, err)
	}
	return nil
}
