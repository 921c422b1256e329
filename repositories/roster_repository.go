package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/fantasy-draft/models"
	"github.com/lib/pq"
)

var ErrRosterEntryConflict = errors.New("player already on a roster in this league")

type RosterRepository interface {
	Create(ctx context.Context, exec SQLExecutor, entry *models.RosterEntry) error
	ListByFantasyTeam(ctx context.Context, fantasyTeamID int) ([]*models.RosterEntry, error)
	CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error)
	DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresRosterRepository) Create(ctx context.Context, exec SQLExecutor, entry *models.RosterEntry) error {
	query := `
		INSERT INTO roster_entries (league_id, fantasy_team_id, player_id, slot_label)
		VALUES ($1, $2, $3, $4)
		RETURNING id, acquired_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		entry.LeagueID,
		entry.FantasyTeamID,
		entry.PlayerID,
		entry.SlotLabel,
	).Scan(&entry.ID, &entry.AcquiredAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && pqErr.Constraint == "roster_entries_league_id_player_id_key" {
			return ErrRosterEntryConflict
		}
		return fmt.Errorf("failed to create roster entry: %w", err)
	}
	return nil
}

func (r *postgresRosterRepository) ListByFantasyTeam(ctx context.Context, fantasyTeamID int) ([]*models.RosterEntry, error) {
	query := `
		SELECT re.id, re.league_id, re.fantasy_team_id, re.player_id, re.slot_label, re.acquired_at,
		       pl.id, pl.tournament_id, pl.full_name, pl.role, pl.country, pl.created_at
		FROM roster_entries re
		JOIN players pl ON re.player_id = pl.id
		WHERE re.fantasy_team_id = $1
		ORDER BY re.acquired_at ASC`

	rows, err := r.db.QueryContext(ctx, query, fantasyTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries by fantasy team: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.RosterEntry, 0)
	for rows.Next() {
		var re models.RosterEntry
		var pl models.Player
		if err := rows.Scan(
			&re.ID, &re.LeagueID, &re.FantasyTeamID, &re.PlayerID, &re.SlotLabel, &re.AcquiredAt,
			&pl.ID, &pl.TournamentID, &pl.FullName, &pl.Role, &pl.Country, &pl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry row: %w", err)
		}
		re.Player = &pl
		entries = append(entries, &re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster entry rows: %w", err)
	}
	return entries, nil
}

func (r *postgresRosterRepository) CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error) {
	query := `SELECT COUNT(*) FROM roster_entries WHERE league_id = $1`

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, leagueID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roster entries by league: %w", err)
	}
	return count, nil
}

func (r *postgresRosterRepository) DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error {
	query := `DELETE FROM roster_entries WHERE league_id = $1`
	if _, err := r.getExecutor(exec).ExecContext(ctx, query, leagueID); err != nil {
		return fmt.Errorf("failed to delete roster entries for league %d: %w", leagueID, err)
	}
	return nil
}
