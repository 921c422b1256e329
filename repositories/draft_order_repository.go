package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/fantasy-draft/models"
)

var ErrTurnAssignmentNotFound = errors.New("turn assignment not found")

// DraftOrderRepository persists the generated turn sequence for a
// league. The sequence is written once when a draft starts and deleted
// only by a reset; between those points it is read-only.
type DraftOrderRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, assignments []models.TurnAssignment) error
	ListByLeague(ctx context.Context, leagueID int) ([]models.TurnAssignment, error)
	GetByOverallPick(ctx context.Context, exec SQLExecutor, leagueID, overallPick int) (*models.TurnAssignment, error)
	DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error
}

type postgresDraftOrderRepository struct {
	db *sql.DB
}

func NewPostgresDraftOrderRepository(db *sql.DB) DraftOrderRepository {
	return &postgresDraftOrderRepository{db: db}
}

func (r *postgresDraftOrderRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresDraftOrderRepository) CreateBatch(ctx context.Context, exec SQLExecutor, assignments []models.TurnAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	query := `
		INSERT INTO draft_order (league_id, round, pick_in_round, overall_pick, fantasy_team_id)
		VALUES ($1, $2, $3, $4, $5)`

	for i := range assignments {
		a := &assignments[i]
		if _, err := executor.ExecContext(ctx, query, a.LeagueID, a.Round, a.PickInRound, a.OverallPick, a.FantasyTeamID); err != nil {
			return fmt.Errorf("failed to insert turn assignment %d for league %d: %w", a.OverallPick, a.LeagueID, err)
		}
	}
	return nil
}

func (r *postgresDraftOrderRepository) ListByLeague(ctx context.Context, leagueID int) ([]models.TurnAssignment, error) {
	query := `
		SELECT id, league_id, round, pick_in_round, overall_pick, fantasy_team_id
		FROM draft_order
		WHERE league_id = $1
		ORDER BY overall_pick ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft order for league %d: %w", leagueID, err)
	}
	defer rows.Close()

	assignments := make([]models.TurnAssignment, 0)
	for rows.Next() {
		var a models.TurnAssignment
		if err := rows.Scan(&a.ID, &a.LeagueID, &a.Round, &a.PickInRound, &a.OverallPick, &a.FantasyTeamID); err != nil {
			return nil, fmt.Errorf("failed to scan turn assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating turn assignment rows: %w", err)
	}
	return assignments, nil
}

func (r *postgresDraftOrderRepository) GetByOverallPick(ctx context.Context, exec SQLExecutor, leagueID, overallPick int) (*models.TurnAssignment, error) {
	query := `
		SELECT id, league_id, round, pick_in_round, overall_pick, fantasy_team_id
		FROM draft_order
		WHERE league_id = $1 AND overall_pick = $2`

	a := &models.TurnAssignment{}
	err := r.getExecutor(exec).QueryRowContext(ctx, query, leagueID, overallPick).Scan(
		&a.ID, &a.LeagueID, &a.Round, &a.PickInRound, &a.OverallPick, &a.FantasyTeamID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTurnAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find turn assignment: %w", err)
	}
	return a, nil
}

func (r *postgresDraftOrderRepository) DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) error {
	query := `DELETE FROM draft_order WHERE league_id = $1`
	if _, err := r.getExecutor(exec).ExecContext(ctx, query, leagueID); err != nil {
		return fmt.Errorf("failed to delete draft order for league %d: %w", leagueID, err)
	}
	return nil
}
