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
	ErrFantasyTeamNotFound      = errors.New("fantasy team not found")
	ErrFantasyTeamOwnerConflict = errors.New("user already owns a team in this league")
	ErrFantasyTeamSeatConflict  = errors.New("draft position already taken in this league")
	ErrFantasyTeamLeagueInvalid = errors.New("fantasy team league conflict or invalid")
	ErrFantasyTeamOwnerInvalid  = errors.New("fantasy team owner conflict or invalid")
)

type FantasyTeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.FantasyTeam) error
	GetByID(ctx context.Context, id int) (*models.FantasyTeam, error)
	ListByLeague(ctx context.Context, exec SQLExecutor, leagueID int) ([]*models.FantasyTeam, error)
	CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error)
}

type postgresFantasyTeamRepository struct {
	db *sql.DB
}

func NewPostgresFantasyTeamRepository(db *sql.DB) FantasyTeamRepository {
	return &postgresFantasyTeamRepository{db: db}
}

func (r *postgresFantasyTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresFantasyTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.FantasyTeam) error {
	query := `
		INSERT INTO fantasy_teams (league_id, owner_id, name, draft_position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		team.LeagueID,
		team.OwnerID,
		team.Name,
		team.DraftPosition,
	).Scan(&team.ID, &team.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				switch pqErr.Constraint {
				case "fantasy_teams_league_id_owner_id_key":
					return ErrFantasyTeamOwnerConflict
				case "fantasy_teams_league_id_draft_position_key":
					return ErrFantasyTeamSeatConflict
				}
			case "23503":
				switch pqErr.Constraint {
				case "fantasy_teams_league_id_fkey":
					return ErrFantasyTeamLeagueInvalid
				case "fantasy_teams_owner_id_fkey":
					return ErrFantasyTeamOwnerInvalid
				}
			}
		}
		return fmt.Errorf("failed to create fantasy team: %w", err)
	}
	return nil
}

func (r *postgresFantasyTeamRepository) GetByID(ctx context.Context, id int) (*models.FantasyTeam, error) {
	query := `SELECT id, league_id, owner_id, name, draft_position, created_at FROM fantasy_teams WHERE id = $1`

	t := &models.FantasyTeam{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.LeagueID,
		&t.OwnerID,
		&t.Name,
		&t.DraftPosition,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFantasyTeamNotFound
		}
		return nil, fmt.Errorf("failed to find fantasy team: %w", err)
	}
	return t, nil
}

// ListByLeague returns a league's teams in seat order, with owner
// details attached for display.
func (r *postgresFantasyTeamRepository) ListByLeague(ctx context.Context, exec SQLExecutor, leagueID int) ([]*models.FantasyTeam, error) {
	query := `
		SELECT ft.id, ft.league_id, ft.owner_id, ft.name, ft.draft_position, ft.created_at,
		       u.id, u.first_name, u.last_name, u.nickname, u.logo_key
		FROM fantasy_teams ft
		JOIN users u ON ft.owner_id = u.id
		WHERE ft.league_id = $1
		ORDER BY ft.draft_position ASC`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams by league: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.FantasyTeam, 0)
	for rows.Next() {
		var t models.FantasyTeam
		var u models.User
		if err := rows.Scan(
			&t.ID, &t.LeagueID, &t.OwnerID, &t.Name, &t.DraftPosition, &t.CreatedAt,
			&u.ID, &u.FirstName, &u.LastName, &u.Nickname, &u.LogoKey,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fantasy team row: %w", err)
		}
		t.Owner = &u
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fantasy team rows: %w", err)
	}
	return teams, nil
}

func (r *postgresFantasyTeamRepository) CountByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int, error) {
	query := `SELECT COUNT(*) FROM fantasy_teams WHERE league_id = $1`

	var count int
	if err := r.getExecutor(exec).QueryRowContext(ctx, query, leagueID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count fantasy teams by league: %w", err)
	}
	return count, nil
}
