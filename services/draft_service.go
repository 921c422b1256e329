package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/fantasy-draft/draftorder"
	"github.com/Dosada05/fantasy-draft/models"
	"github.com/Dosada05/fantasy-draft/repositories"
	"golang.org/x/sync/errgroup"
)

// DraftCursor points at the next expected turn assignment. OverallPick
// is the number of picks committed so far; NextTeamID is nil once the
// draft has completed.
type DraftCursor struct {
	Round       int  `json:"round"`
	PickInRound int  `json:"pick_in_round"`
	OverallPick int  `json:"overall_pick"`
	NextTeamID  *int `json:"next_team_id,omitempty"`
}

// DraftStateView is the poll-safe snapshot returned by GetDraftState
// and by the mutating draft operations.
type DraftStateView struct {
	LeagueID   int                     `json:"league_id"`
	Status     models.DraftStatus      `json:"status"`
	Mode       models.OrderingMode     `json:"mode"`
	Order      []models.TurnAssignment `json:"order"`
	Picks      []*models.Pick          `json:"picks"`
	Cursor     DraftCursor             `json:"cursor"`
	TotalPicks int                     `json:"total_picks"`
}

type SubmitPickInput struct {
	LeagueID      int
	FantasyTeamID int
	PlayerID      int
	SlotLabel     string

	// UserID is the authenticated caller; the pick is admitted only if
	// they own the submitting fantasy team.
	UserID int
}

// PickResult is the outcome of one successful admission.
type PickResult struct {
	Pick        *models.Pick       `json:"pick"`
	RosterEntry models.RosterEntry `json:"roster_entry"`
	NextCursor  DraftCursor        `json:"next_cursor"`
	Completed   bool               `json:"completed"`
}

type DraftService interface {
	StartDraft(ctx context.Context, leagueID, userID int) (*DraftStateView, error)
	SubmitPick(ctx context.Context, input SubmitPickInput) (*PickResult, error)
	GetDraftState(ctx context.Context, leagueID int) (*DraftStateView, error)
	ResetDraft(ctx context.Context, leagueID, userID int) (*DraftStateView, error)
}

type draftService struct {
	txRunner   repositories.TxRunner
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.FantasyTeamRepository
	orderRepo  repositories.DraftOrderRepository
	pickRepo   repositories.PickRepository
	rosterRepo repositories.RosterRepository
	logger     *slog.Logger

	// Per-league mutexes serialize mutating draft operations in-process.
	// The row lock taken by GetForUpdate is the authoritative guard; the
	// mutex keeps contending requests from burning transactions on
	// serialization failures. Drafts in different leagues never contend.
	mu          sync.Mutex
	leagueLocks map[int]*sync.Mutex
}

// Mutating draft operations need the strongest isolation the store
// offers; combined with the league row lock this makes each admission a
// single-writer critical section per league.
var draftTxOptions = &sql.TxOptions{Isolation: sql.LevelSerializable}

func NewDraftService(
	txRunner repositories.TxRunner,
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.FantasyTeamRepository,
	orderRepo repositories.DraftOrderRepository,
	pickRepo repositories.PickRepository,
	rosterRepo repositories.RosterRepository,
	logger *slog.Logger,
) DraftService {
	return &draftService{
		txRunner:    txRunner,
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		orderRepo:   orderRepo,
		pickRepo:    pickRepo,
		rosterRepo:  rosterRepo,
		logger:      logger,
		leagueLocks: make(map[int]*sync.Mutex),
	}
}

func (s *draftService) leagueLock(leagueID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.leagueLocks[leagueID]
	if !ok {
		lock = &sync.Mutex{}
		s.leagueLocks[leagueID] = lock
	}
	return lock
}

// StartDraft moves a pending draft to active: it generates the full turn
// sequence for the league's seated teams, persists it, and points the
// cursor at the first assignment.
func (s *draftService) StartDraft(ctx context.Context, leagueID, userID int) (*DraftStateView, error) {
	lock := s.leagueLock(leagueID)
	lock.Lock()
	defer lock.Unlock()

	var view *DraftStateView
	err := s.txRunner.WithinTx(ctx, draftTxOptions, func(exec repositories.SQLExecutor) error {
		league, err := s.leagueRepo.GetForUpdate(ctx, exec, leagueID)
		if err != nil {
			return mapLeagueLookupError(err)
		}
		if league.CommissionerID != userID {
			return ErrCommissionerOnly
		}
		if league.DraftStatus != models.DraftStatusPending {
			return ErrDraftAlreadyStarted
		}

		teams, err := s.teamRepo.ListByLeague(ctx, exec, leagueID)
		if err != nil {
			return fmt.Errorf("failed to list teams for draft start: %w", err)
		}

		generator, err := draftorder.ForMode(league.OrderingMode)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDraftInvalidConfiguration, err)
		}
		order, err := generator.GenerateOrder(draftorder.GenerateOrderParams{
			League: league,
			Teams:  teams,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDraftInvalidConfiguration, err)
		}

		if err := s.orderRepo.CreateBatch(ctx, exec, order); err != nil {
			return fmt.Errorf("failed to persist draft order: %w", err)
		}

		first := order[0]
		if err := s.leagueRepo.UpdateDraftState(ctx, exec, leagueID, models.DraftStatusActive, first.Round, first.PickInRound, 0); err != nil {
			return fmt.Errorf("failed to activate draft: %w", err)
		}

		league.DraftStatus = models.DraftStatusActive
		league.CurrentRound = first.Round
		league.CurrentPick = first.PickInRound
		league.OverallPick = 0
		view = buildDraftStateView(league, order, []*models.Pick{})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("draft started",
		slog.Int("league_id", leagueID),
		slog.Int("total_picks", view.TotalPicks),
		slog.String("mode", string(view.Mode)))
	return view, nil
}

// SubmitPick is the admission protocol: validate status, turn order and
// player uniqueness against locked league state, then commit the pick,
// the roster entry and the cursor advance as one atomic unit. A failed
// check mutates nothing.
func (s *draftService) SubmitPick(ctx context.Context, input SubmitPickInput) (*PickResult, error) {
	lock := s.leagueLock(input.LeagueID)
	lock.Lock()
	defer lock.Unlock()

	var result *PickResult
	err := s.txRunner.WithinTx(ctx, draftTxOptions, func(exec repositories.SQLExecutor) error {
		league, err := s.leagueRepo.GetForUpdate(ctx, exec, input.LeagueID)
		if err != nil {
			return mapLeagueLookupError(err)
		}
		if league.DraftStatus != models.DraftStatusActive {
			return ErrDraftNotActive
		}

		team, err := s.teamRepo.GetByID(ctx, input.FantasyTeamID)
		if err != nil {
			if errors.Is(err, repositories.ErrFantasyTeamNotFound) {
				return ErrFantasyTeamNotFound
			}
			return fmt.Errorf("failed to load fantasy team: %w", err)
		}
		if team.LeagueID != input.LeagueID {
			return ErrFantasyTeamNotFound
		}
		if input.UserID != 0 && team.OwnerID != input.UserID {
			return ErrNotTeamOwner
		}

		nextOverall := league.OverallPick + 1
		assignment, err := s.orderRepo.GetByOverallPick(ctx, exec, input.LeagueID, nextOverall)
		if err != nil {
			if errors.Is(err, repositories.ErrTurnAssignmentNotFound) {
				return fmt.Errorf("draft order missing assignment %d for league %d: %w", nextOverall, input.LeagueID, err)
			}
			return fmt.Errorf("failed to resolve current turn: %w", err)
		}
		if assignment.FantasyTeamID != input.FantasyTeamID {
			return ErrDraftOutOfTurn
		}

		pick := &models.Pick{
			LeagueID:      input.LeagueID,
			FantasyTeamID: input.FantasyTeamID,
			PlayerID:      input.PlayerID,
			Round:         assignment.Round,
			PickInRound:   assignment.PickInRound,
			OverallPick:   assignment.OverallPick,
		}
		if err := s.pickRepo.Create(ctx, exec, pick); err != nil {
			switch {
			case errors.Is(err, repositories.ErrPickPlayerConflict):
				return ErrPlayerAlreadyDrafted
			case errors.Is(err, repositories.ErrPickPlayerInvalid):
				return ErrPlayerNotFound
			default:
				return fmt.Errorf("failed to record pick: %w", err)
			}
		}

		entry := models.RosterEntryFromPick(pick, input.SlotLabel)
		if err := s.rosterRepo.Create(ctx, exec, &entry); err != nil {
			if errors.Is(err, repositories.ErrRosterEntryConflict) {
				return ErrPlayerAlreadyDrafted
			}
			return fmt.Errorf("failed to record roster entry: %w", err)
		}

		result = &PickResult{Pick: pick, RosterEntry: entry}

		next, err := s.orderRepo.GetByOverallPick(ctx, exec, input.LeagueID, nextOverall+1)
		switch {
		case errors.Is(err, repositories.ErrTurnAssignmentNotFound):
			// The final assignment was just consumed.
			if err := s.leagueRepo.UpdateDraftState(ctx, exec, input.LeagueID, models.DraftStatusCompleted, 0, 0, nextOverall); err != nil {
				return fmt.Errorf("failed to complete draft: %w", err)
			}
			result.Completed = true
			result.NextCursor = DraftCursor{OverallPick: nextOverall}
		case err != nil:
			return fmt.Errorf("failed to resolve next turn: %w", err)
		default:
			if err := s.leagueRepo.UpdateDraftState(ctx, exec, input.LeagueID, models.DraftStatusActive, next.Round, next.PickInRound, nextOverall); err != nil {
				return fmt.Errorf("failed to advance draft cursor: %w", err)
			}
			nextTeamID := next.FantasyTeamID
			result.NextCursor = DraftCursor{
				Round:       next.Round,
				PickInRound: next.PickInRound,
				OverallPick: nextOverall,
				NextTeamID:  &nextTeamID,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pick admitted",
		slog.Int("league_id", input.LeagueID),
		slog.Int("fantasy_team_id", input.FantasyTeamID),
		slog.Int("player_id", input.PlayerID),
		slog.Int("overall_pick", result.Pick.OverallPick),
		slog.Bool("completed", result.Completed))
	return result, nil
}

// GetDraftState is read-only and safe to poll; it never touches the
// per-league lock.
func (s *draftService) GetDraftState(ctx context.Context, leagueID int) (*DraftStateView, error) {
	var (
		league *models.League
		order  []models.TurnAssignment
		picks  []*models.Pick
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = s.leagueRepo.GetByID(gctx, leagueID)
		if err != nil {
			return mapLeagueLookupError(err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		order, err = s.orderRepo.ListByLeague(gctx, leagueID)
		if err != nil {
			return fmt.Errorf("failed to load draft order: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		picks, err = s.pickRepo.ListByLeague(gctx, leagueID)
		if err != nil {
			return fmt.Errorf("failed to load picks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildDraftStateView(league, order, picks), nil
}

// ResetDraft returns a league to pending, discarding the order, the
// cursor, and every pick and roster entry, atomically. Resetting an
// already-pending league is a no-op so the operation stays idempotent
// for retrying callers.
func (s *draftService) ResetDraft(ctx context.Context, leagueID, userID int) (*DraftStateView, error) {
	lock := s.leagueLock(leagueID)
	lock.Lock()
	defer lock.Unlock()

	var view *DraftStateView
	err := s.txRunner.WithinTx(ctx, draftTxOptions, func(exec repositories.SQLExecutor) error {
		league, err := s.leagueRepo.GetForUpdate(ctx, exec, leagueID)
		if err != nil {
			return mapLeagueLookupError(err)
		}
		if league.CommissionerID != userID {
			return ErrCommissionerOnly
		}

		if league.DraftStatus != models.DraftStatusPending {
			if err := s.pickRepo.DeleteByLeague(ctx, exec, leagueID); err != nil {
				return err
			}
			if err := s.rosterRepo.DeleteByLeague(ctx, exec, leagueID); err != nil {
				return err
			}
			if err := s.orderRepo.DeleteByLeague(ctx, exec, leagueID); err != nil {
				return err
			}
			if err := s.leagueRepo.UpdateDraftState(ctx, exec, leagueID, models.DraftStatusPending, 0, 0, 0); err != nil {
				return fmt.Errorf("failed to reset draft state: %w", err)
			}
		}

		league.DraftStatus = models.DraftStatusPending
		league.CurrentRound = 0
		league.CurrentPick = 0
		league.OverallPick = 0
		view = buildDraftStateView(league, []models.TurnAssignment{}, []*models.Pick{})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("draft reset", slog.Int("league_id", leagueID))
	return view, nil
}

func buildDraftStateView(league *models.League, order []models.TurnAssignment, picks []*models.Pick) *DraftStateView {
	view := &DraftStateView{
		LeagueID:   league.ID,
		Status:     league.DraftStatus,
		Mode:       league.OrderingMode,
		Order:      order,
		Picks:      picks,
		TotalPicks: len(order),
		Cursor: DraftCursor{
			Round:       league.CurrentRound,
			PickInRound: league.CurrentPick,
			OverallPick: league.OverallPick,
		},
	}
	if league.DraftStatus == models.DraftStatusActive {
		for i := range order {
			if order[i].OverallPick == league.OverallPick+1 {
				teamID := order[i].FantasyTeamID
				view.Cursor.NextTeamID = &teamID
				break
			}
		}
	}
	return view
}

func mapLeagueLookupError(err error) error {
	if errors.Is(err, repositories.ErrLeagueNotFound) {
		return ErrLeagueNotFound
	}
	return err
}
