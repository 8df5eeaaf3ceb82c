package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Mutisya7/fixture-system/fixtures"
	"github.com/Mutisya7/fixture-system/models"
	"github.com/Mutisya7/fixture-system/repositories"
	"github.com/Mutisya7/fixture-system/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type FixtureService interface {
	// Generate runs the fixture engine for the tournament, replaces any
	// previously stored generation, broadcasts the result to websocket
	// subscribers and publishes a JSON snapshot to object storage.
	Generate(ctx context.Context, tournamentID string) (*fixtures.GenerateResult, error)
	ListFixtures(ctx context.Context, tournamentID string) ([]*models.ScheduledMatch, error)
	ListConflicts(ctx context.Context, tournamentID string) ([]*models.FixtureConflict, error)
}

type fixtureService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	venueRepo      repositories.VenueRepository
	slotRepo       repositories.TimeSlotRepository
	fixtureRepo    repositories.FixtureRepository
	hub            *fixtures.Hub
	uploader       storage.FileUploader // nil when snapshot publishing is disabled
	logger         *slog.Logger
}

func NewFixtureService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	venueRepo repositories.VenueRepository,
	slotRepo repositories.TimeSlotRepository,
	fixtureRepo repositories.FixtureRepository,
	hub *fixtures.Hub,
	uploader storage.FileUploader,
	logger *slog.Logger,
) FixtureService {
	return &fixtureService{
		db:             db,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		venueRepo:      venueRepo,
		slotRepo:       slotRepo,
		fixtureRepo:    fixtureRepo,
		hub:            hub,
		uploader:       uploader,
		logger:         logger,
	}
}

func (s *fixtureService) Generate(ctx context.Context, tournamentID string) (*fixtures.GenerateResult, error) {
	runID := uuid.NewString()

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", tournamentID, err)
	}

	var (
		teams  []*models.Team
		venues []*models.Venue
		slots  []*models.TimeSlot
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		venues, err = s.venueRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = s.slotRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load scheduling inputs for tournament %s: %w", tournamentID, err)
	}

	if len(teams) == 0 {
		return nil, ErrNoTeamsRegistered
	}

	cfg := tournament.SchedulingConfig(venues, slots)

	result, err := fixtures.GenerateFixtures(teams, cfg)
	if err != nil {
		return nil, err
	}

	s.logger.Info("fixtures generated",
		slog.String("run_id", runID),
		slog.String("tournament_id", tournamentID),
		slog.Int("fixtures", len(result.Fixtures)),
		slog.Int("conflicts", len(result.Conflicts)),
		slog.Int("groups", len(result.Groups)),
	)

	if err := s.persist(ctx, tournamentID, result); err != nil {
		return nil, err
	}

	s.hub.BroadcastToRoom("tournament_"+tournamentID, fixtures.Message{
		Type: fixtures.EventFixturesGenerated,
		Payload: map[string]interface{}{
			"run_id":    runID,
			"fixtures":  result.Fixtures,
			"conflicts": result.Conflicts,
			"groups":    result.Groups,
		},
	})

	// Snapshot publishing is best-effort: a storage outage must not fail a
	// generation that is already committed.
	if s.uploader != nil {
		if err := s.publishSnapshot(ctx, tournamentID, runID, result); err != nil {
			s.logger.Error("failed to publish fixture snapshot",
				slog.String("tournament_id", tournamentID),
				slog.Any("error", err))
		}
	}

	return result, nil
}

func (s *fixtureService) persist(ctx context.Context, tournamentID string, result *fixtures.GenerateResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.fixtureRepo.ReplaceForTournament(ctx, tx, tournamentID, result.Fixtures, result.Conflicts); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to store fixtures: %w (rollback also failed: %v)", err, rbErr)
		}
		return fmt.Errorf("failed to store fixtures: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fixtures: %w", err)
	}
	return nil
}

func (s *fixtureService) publishSnapshot(ctx context.Context, tournamentID, runID string, result *fixtures.GenerateResult) error {
	snapshot, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("tournaments/%s/fixtures.json", tournamentID)
	uploaded, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(snapshot))
	if err != nil {
		return err
	}

	s.logger.Info("fixture snapshot published",
		slog.String("run_id", runID),
		slog.String("key", uploaded.Key),
		slog.String("location", uploaded.Location),
	)
	return nil
}

func (s *fixtureService) ListFixtures(ctx context.Context, tournamentID string) ([]*models.ScheduledMatch, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	matches, err := s.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %s: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *fixtureService) ListConflicts(ctx context.Context, tournamentID string) ([]*models.FixtureConflict, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	conflicts, err := s.fixtureRepo.ListConflicts(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts for tournament %s: %w", tournamentID, err)
	}
	return conflicts, nil
}
