package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/fantasy-draft/models"
	"github.com/Dosada05/fantasy-draft/repositories"
	"github.com/Dosada05/fantasy-draft/storage"
)

type CreateTournamentInput struct {
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	Season    string    `json:"season"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type CreatePlayerInput struct {
	FullName string            `json:"full_name"`
	Role     models.PlayerRole `json:"role"`
	Country  *string           `json:"country"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, statusFilter *models.TournamentStatus) ([]*models.Tournament, error)
	AddPlayer(ctx context.Context, tournamentID int, input CreatePlayerInput) (*models.Player, error)
	ListPlayers(ctx context.Context, tournamentID int) ([]*models.Player, error)
	UploadLogo(ctx context.Context, tournamentID int, contentType string, file io.Reader) (*models.Tournament, error)

	// AutoUpdateTournamentStatusesByDates flips soon to active and
	// active to completed for tournaments whose dates have passed. Run
	// periodically from the composition root.
	AutoUpdateTournamentStatusesByDates(ctx context.Context) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		uploader:       uploader,
		logger:         logger,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrValidationFailed)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || !input.StartDate.Before(input.EndDate) {
		return nil, ErrTournamentInvalidDates
	}

	t := &models.Tournament{
		Name:      input.Name,
		Sport:     input.Sport,
		Season:    input.Season,
		Status:    models.TournamentStatusSoon,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, err
	}
	return t, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	populateTournamentLogoURL(t, s.uploader)
	return t, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, statusFilter *models.TournamentStatus) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, statusFilter)
	if err != nil {
		return nil, err
	}
	for _, t := range tournaments {
		populateTournamentLogoURL(t, s.uploader)
	}
	return tournaments, nil
}

func (s *tournamentService) AddPlayer(ctx context.Context, tournamentID int, input CreatePlayerInput) (*models.Player, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrValidationFailed)
	}

	p := &models.Player{
		TournamentID: tournamentID,
		FullName:     input.FullName,
		Role:         input.Role,
		Country:      input.Country,
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrPlayerTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *tournamentService) ListPlayers(ctx context.Context, tournamentID int) ([]*models.Player, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return s.playerRepo.ListByTournament(ctx, tournamentID)
}

func (s *tournamentService) UploadLogo(ctx context.Context, tournamentID int, contentType string, file io.Reader) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := fmt.Sprintf("tournaments/%d/logo%s", tournamentID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload tournament logo: %w", err)
	}

	if err := s.tournamentRepo.UpdateLogoKey(ctx, tournamentID, &key); err != nil {
		return nil, err
	}
	t.LogoKey = &key
	populateTournamentLogoURL(t, s.uploader)
	return t, nil
}

func (s *tournamentService) AutoUpdateTournamentStatusesByDates(ctx context.Context) error {
	due, err := s.tournamentRepo.ListDueForStatusChange(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to list tournaments due for status change: %w", err)
	}

	for _, t := range due {
		var next models.TournamentStatus
		switch t.Status {
		case models.TournamentStatusSoon:
			next = models.TournamentStatusActive
		case models.TournamentStatusActive:
			next = models.TournamentStatusCompleted
		default:
			continue
		}

		if err := s.tournamentRepo.UpdateStatus(ctx, t.ID, next); err != nil {
			s.logger.Error("failed to update tournament status",
				slog.Int("tournament_id", t.ID),
				slog.String("next_status", string(next)),
				slog.Any("error", err))
			continue
		}
		s.logger.Info("tournament status updated",
			slog.Int("tournament_id", t.ID),
			slog.String("from", string(t.Status)),
			slog.String("to", string(next)))
	}
	return nil
}
