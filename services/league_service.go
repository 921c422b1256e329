package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Dosada05/fantasy-draft/models"
	"github.com/Dosada05/fantasy-draft/repositories"
	"github.com/Dosada05/fantasy-draft/storage"
)

type CreateLeagueInput struct {
	TournamentID int                 `json:"tournament_id"`
	Name         string              `json:"name"`
	TeamName     string              `json:"team_name"`
	OrderingMode models.OrderingMode `json:"ordering_mode"`
	MaxTeams     int                 `json:"max_teams"`
	RosterSize   int                 `json:"roster_size"`
}

type JoinLeagueInput struct {
	InviteCode string `json:"invite_code"`
	TeamName   string `json:"team_name"`
}

type LeagueService interface {
	CreateLeague(ctx context.Context, commissionerID int, input CreateLeagueInput) (*models.League, error)
	JoinLeague(ctx context.Context, userID int, input JoinLeagueInput) (*models.FantasyTeam, error)
	GetLeague(ctx context.Context, id int) (*models.League, error)
	ListLeaguesByMember(ctx context.Context, userID int) ([]*models.League, error)
	ListTeams(ctx context.Context, leagueID int) ([]*models.FantasyTeam, error)
	GetTeamRoster(ctx context.Context, teamID int) (*models.FantasyTeam, error)
	ListPicks(ctx context.Context, leagueID int) ([]*models.Pick, error)
	UploadLogo(ctx context.Context, leagueID, userID int, contentType string, file io.Reader) (*models.League, error)
}

type leagueService struct {
	txRunner       repositories.TxRunner
	leagueRepo     repositories.LeagueRepository
	teamRepo       repositories.FantasyTeamRepository
	tournamentRepo repositories.TournamentRepository
	rosterRepo     repositories.RosterRepository
	pickRepo       repositories.PickRepository
	uploader       storage.FileUploader
}

func NewLeagueService(
	txRunner repositories.TxRunner,
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.FantasyTeamRepository,
	tournamentRepo repositories.TournamentRepository,
	rosterRepo repositories.RosterRepository,
	pickRepo repositories.PickRepository,
	uploader storage.FileUploader,
) LeagueService {
	return &leagueService{
		txRunner:       txRunner,
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		rosterRepo:     rosterRepo,
		pickRepo:       pickRepo,
		uploader:       uploader,
	}
}

// CreateLeague creates the league and seats the commissioner's own team
// in draft position 1, in one transaction.
func (s *leagueService) CreateLeague(ctx context.Context, commissionerID int, input CreateLeagueInput) (*models.League, error) {
	if input.Name == "" {
		return nil, ErrLeagueNameRequired
	}
	if input.TeamName == "" {
		return nil, ErrTeamNameRequired
	}
	if input.MaxTeams < 2 {
		return nil, ErrLeagueInvalidCapacity
	}
	if input.RosterSize < 1 {
		return nil, ErrLeagueInvalidRosterSize
	}
	switch input.OrderingMode {
	case models.OrderingModeLinear, models.OrderingModeSnake:
	default:
		return nil, ErrLeagueInvalidOrderingMode
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	if tournament.Status == models.TournamentStatusCompleted {
		return nil, ErrTournamentNotJoinable
	}

	code, err := generateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	league := &models.League{
		TournamentID:   input.TournamentID,
		CommissionerID: commissionerID,
		Name:           input.Name,
		InviteCode:     code,
		OrderingMode:   input.OrderingMode,
		MaxTeams:       input.MaxTeams,
		RosterSize:     input.RosterSize,
		DraftStatus:    models.DraftStatusPending,
	}

	err = s.txRunner.WithinTx(ctx, nil, func(exec repositories.SQLExecutor) error {
		if err := s.leagueRepo.Create(ctx, exec, league); err != nil {
			if errors.Is(err, repositories.ErrLeagueNameConflict) {
				return ErrLeagueNameConflict
			}
			return err
		}
		team := &models.FantasyTeam{
			LeagueID:      league.ID,
			OwnerID:       commissionerID,
			Name:          input.TeamName,
			DraftPosition: 1,
		}
		if err := s.teamRepo.Create(ctx, exec, team); err != nil {
			return fmt.Errorf("failed to seat commissioner team: %w", err)
		}
		league.Teams = []models.FantasyTeam{*team}
		return nil
	})
	if err != nil {
		return nil, err
	}

	league.Tournament = tournament
	return league, nil
}

// JoinLeague seats a new fantasy team in the next free draft position.
// The league row is locked for the capacity check so two concurrent
// joins cannot both take the last seat; the unique constraint on
// (league_id, draft_position) backs that up.
func (s *leagueService) JoinLeague(ctx context.Context, userID int, input JoinLeagueInput) (*models.FantasyTeam, error) {
	if input.TeamName == "" {
		return nil, ErrTeamNameRequired
	}

	league, err := s.leagueRepo.GetByInviteCode(ctx, input.InviteCode)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to look up league by invite code: %w", err)
	}

	team := &models.FantasyTeam{
		LeagueID: league.ID,
		OwnerID:  userID,
		Name:     input.TeamName,
	}

	err = s.txRunner.WithinTx(ctx, nil, func(exec repositories.SQLExecutor) error {
		locked, err := s.leagueRepo.GetForUpdate(ctx, exec, league.ID)
		if err != nil {
			return mapLeagueLookupError(err)
		}
		if locked.DraftStatus != models.DraftStatusPending {
			return ErrLeagueDraftStarted
		}

		count, err := s.teamRepo.CountByLeague(ctx, exec, league.ID)
		if err != nil {
			return err
		}
		if count >= locked.MaxTeams {
			return ErrLeagueFull
		}

		team.DraftPosition = count + 1
		if err := s.teamRepo.Create(ctx, exec, team); err != nil {
			switch {
			case errors.Is(err, repositories.ErrFantasyTeamOwnerConflict):
				return ErrAlreadyInLeague
			case errors.Is(err, repositories.ErrFantasyTeamSeatConflict):
				// A concurrent join took the seat between count and insert.
				return ErrLeagueFull
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *leagueService) GetLeague(ctx context.Context, id int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLeagueLookupError(err)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, league.TournamentID)
	if err == nil {
		populateTournamentLogoURL(tournament, s.uploader)
		league.Tournament = tournament
	}

	teams, err := s.teamRepo.ListByLeague(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	league.Teams = make([]models.FantasyTeam, 0, len(teams))
	for _, t := range teams {
		populateUserDetails(t.Owner, s.uploader)
		league.Teams = append(league.Teams, *t)
	}

	populateLeagueLogoURL(league, s.uploader)
	return league, nil
}

func (s *leagueService) ListLeaguesByMember(ctx context.Context, userID int) ([]*models.League, error) {
	leagues, err := s.leagueRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, l := range leagues {
		populateLeagueLogoURL(l, s.uploader)
	}
	return leagues, nil
}

func (s *leagueService) ListTeams(ctx context.Context, leagueID int) ([]*models.FantasyTeam, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueLookupError(err)
	}
	teams, err := s.teamRepo.ListByLeague(ctx, nil, leagueID)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		populateUserDetails(t.Owner, s.uploader)
	}
	return teams, nil
}

func (s *leagueService) GetTeamRoster(ctx context.Context, teamID int) (*models.FantasyTeam, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrFantasyTeamNotFound) {
			return nil, ErrFantasyTeamNotFound
		}
		return nil, err
	}

	entries, err := s.rosterRepo.ListByFantasyTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	team.Roster = make([]models.RosterEntry, 0, len(entries))
	for _, e := range entries {
		team.Roster = append(team.Roster, *e)
	}
	return team, nil
}

func (s *leagueService) ListPicks(ctx context.Context, leagueID int) ([]*models.Pick, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueLookupError(err)
	}
	return s.pickRepo.ListByLeague(ctx, leagueID)
}

func (s *leagueService) UploadLogo(ctx context.Context, leagueID, userID int, contentType string, file io.Reader) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueLookupError(err)
	}
	if league.CommissionerID != userID {
		return nil, ErrCommissionerOnly
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := fmt.Sprintf("leagues/%d/logo%s", leagueID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload league logo: %w", err)
	}

	if err := s.leagueRepo.UpdateLogoKey(ctx, leagueID, &key); err != nil {
		return nil, err
	}
	league.LogoKey = &key
	populateLeagueLogoURL(league, s.uploader)
	return league, nil
}
