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
	ErrLeagueNotFound           = errors.New("league not found")
	ErrLeagueNameConflict       = errors.New("league name already exists for this tournament")
	ErrLeagueInviteCodeConflict = errors.New("league invite code already exists")
	ErrLeagueTournamentInvalid  = errors.New("league tournament conflict or invalid")
)

type LeagueRepository interface {
	Create(ctx context.Context, exec SQLExecutor, l *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	GetByInviteCode(ctx context.Context, code string) (*models.League, error)
	ListByMember(ctx context.Context, userID int) ([]*models.League, error)
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error

	// GetForUpdate reads the league row with SELECT ... FOR UPDATE so the
	// surrounding transaction holds the per-league write lock for the
	// whole admission. It must be called with a transaction executor.
	GetForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.League, error)

	// UpdateDraftState writes draft status and cursor together; they are
	// never mutated independently.
	UpdateDraftState(ctx context.Context, exec SQLExecutor, id int, status models.DraftStatus, currentRound, currentPick, overallPick int) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const leagueColumns = `id, tournament_id, commissioner_id, name, invite_code, ordering_mode,
		max_teams, roster_size, draft_status, current_round, current_pick, overall_pick, created_at, logo_key`

func (r *postgresLeagueRepository) Create(ctx context.Context, exec SQLExecutor, l *models.League) error {
	query := `
		INSERT INTO leagues (tournament_id, commissioner_id, name, invite_code, ordering_mode, max_teams, roster_size, draft_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		l.TournamentID,
		l.CommissionerID,
		l.Name,
		l.InviteCode,
		l.OrderingMode,
		l.MaxTeams,
		l.RosterSize,
		l.DraftStatus,
	).Scan(&l.ID, &l.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				switch pqErr.Constraint {
				case "leagues_tournament_id_name_key":
					return ErrLeagueNameConflict
				case "leagues_invite_code_key":
					return ErrLeagueInviteCodeConflict
				}
			case "23503":
				if pqErr.Constraint == "leagues_tournament_id_fkey" {
					return ErrLeagueTournamentInvalid
				}
			}
		}
		return fmt.Errorf("failed to create league: %w", err)
	}
	return nil
}

func scanLeague(rowScanner interface {
	Scan(dest ...interface{}) error
}, l *models.League) error {
	return rowScanner.Scan(
		&l.ID,
		&l.TournamentID,
		&l.CommissionerID,
		&l.Name,
		&l.InviteCode,
		&l.OrderingMode,
		&l.MaxTeams,
		&l.RosterSize,
		&l.DraftStatus,
		&l.CurrentRound,
		&l.CurrentPick,
		&l.OverallPick,
		&l.CreatedAt,
		&l.LogoKey,
	)
}

func (r *postgresLeagueRepository) findOne(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) (*models.League, error) {
	l := &models.League{}
	err := scanLeague(r.getExecutor(exec).QueryRowContext(ctx, query, args...), l)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to find league: %w", err)
	}
	return l, nil
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := fmt.Sprintf(`SELECT %s FROM leagues WHERE id = $1`, leagueColumns)
	return r.findOne(ctx, nil, query, id)
}

func (r *postgresLeagueRepository) GetByInviteCode(ctx context.Context, code string) (*models.League, error) {
	query := fmt.Sprintf(`SELECT %s FROM leagues WHERE invite_code = $1`, leagueColumns)
	return r.findOne(ctx, nil, query, code)
}

func (r *postgresLeagueRepository) GetForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.League, error) {
	query := fmt.Sprintf(`SELECT %s FROM leagues WHERE id = $1 FOR UPDATE`, leagueColumns)
	return r.findOne(ctx, exec, query, id)
}

func (r *postgresLeagueRepository) ListByMember(ctx context.Context, userID int) ([]*models.League, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM leagues l
		WHERE l.commissioner_id = $1
		   OR EXISTS (SELECT 1 FROM fantasy_teams ft WHERE ft.league_id = l.id AND ft.owner_id = $1)
		ORDER BY l.created_at DESC`, prefixedLeagueColumns("l"))

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues by member: %w", err)
	}
	defer rows.Close()

	leagues := make([]*models.League, 0)
	for rows.Next() {
		var l models.League
		if err := scanLeague(rows, &l); err != nil {
			return nil, fmt.Errorf("failed to scan league row: %w", err)
		}
		leagues = append(leagues, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating league rows: %w", err)
	}
	return leagues, nil
}

func (r *postgresLeagueRepository) UpdateDraftState(ctx context.Context, exec SQLExecutor, id int, status models.DraftStatus, currentRound, currentPick, overallPick int) error {
	query := `
		UPDATE leagues
		SET draft_status = $1, current_round = $2, current_pick = $3, overall_pick = $4
		WHERE id = $5`

	result, err := r.getExecutor(exec).ExecContext(ctx, query, status, currentRound, currentPick, overallPick, id)
	if err != nil {
		return fmt.Errorf("failed to update league draft state: %w", err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE leagues SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update league logo key: %w", err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func prefixedLeagueColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.tournament_id, %[1]s.commissioner_id, %[1]s.name, %[1]s.invite_code, %[1]s.ordering_mode,
		%[1]s.max_teams, %[1]s.roster_size, %[1]s.draft_status, %[1]s.current_round, %[1]s.current_pick, %[1]s.overall_pick, %[1]s.created_at, %[1]s.logo_key`, alias)
}
