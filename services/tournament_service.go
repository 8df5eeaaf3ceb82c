package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/Mutisya7/fixture-system/repositories"
)

type TournamentService interface {
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
}

type TeamInput struct {
	Name         string  `json:"name"`
	County       string  `json:"county"`
	Constituency *string `json:"constituency,omitempty"`
	OrgID        *string `json:"org_id,omitempty"`
}

type VenueInput struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	County       string   `json:"county"`
	Constituency *string  `json:"constituency,omitempty"`
	PitchCount   int      `json:"pitch_count"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type TimeSlotInput struct {
	StartTime string `json:"start_time"`
	Label     string `json:"label"`
}

// CreateTournamentInput seeds a tournament together with its teams, venues
// and kickoff slots in one call, the shape the fixture engine will later
// consume. Team order is preserved: it drives grouping determinism.
type CreateTournamentInput struct {
	Name             string                  `json:"name"`
	Format           models.TournamentFormat `json:"format"`
	StartDate        time.Time               `json:"start_date"`
	EndDate          time.Time               `json:"end_date"`
	GroupingStrategy string                  `json:"grouping_strategy"`
	MatchDuration    int                     `json:"match_duration"`
	BufferTime       int                     `json:"buffer_time"`
	RestPeriod       int                     `json:"rest_period"`
	GroupCount       int                     `json:"group_count"`
	TeamsPerGroup    int                     `json:"teams_per_group"`
	Legs             int                     `json:"legs"`
	Teams            []TeamInput             `json:"teams"`
	Venues           []VenueInput            `json:"venues"`
	TimeSlots        []TimeSlotInput         `json:"time_slots"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	venueRepo      repositories.VenueRepository
	slotRepo       repositories.TimeSlotRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	venueRepo repositories.VenueRepository,
	slotRepo repositories.TimeSlotRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		venueRepo:      venueRepo,
		slotRepo:       slotRepo,
	}
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTournamentNameNeeded
	}
	switch input.Format {
	case models.FormatRoundRobin, models.FormatGroupKnockout, models.FormatSingleElimination:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, input.Format)
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	tournament := &models.Tournament{
		Name:             name,
		Format:           input.Format,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		GroupingStrategy: input.GroupingStrategy,
		MatchDuration:    input.MatchDuration,
		BufferTime:       input.BufferTime,
		RestPeriod:       input.RestPeriod,
		GroupCount:       input.GroupCount,
		TeamsPerGroup:    input.TeamsPerGroup,
		Legs:             input.Legs,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	for _, t := range input.Teams {
		team := &models.Team{
			Name:         t.Name,
			County:       t.County,
			Constituency: t.Constituency,
			OrgID:        t.OrgID,
		}
		if err := s.teamRepo.Create(ctx, tournament.ID, team); err != nil {
			return nil, fmt.Errorf("failed to create team %q: %w", t.Name, err)
		}
	}
	for _, v := range input.Venues {
		venue := &models.Venue{
			Name:         v.Name,
			Location:     v.Location,
			County:       v.County,
			Constituency: v.Constituency,
			PitchCount:   v.PitchCount,
			Latitude:     v.Latitude,
			Longitude:    v.Longitude,
		}
		if err := s.venueRepo.Create(ctx, tournament.ID, venue); err != nil {
			return nil, fmt.Errorf("failed to create venue %q: %w", v.Name, err)
		}
	}
	for _, ts := range input.TimeSlots {
		slot := &models.TimeSlot{StartTime: ts.StartTime, Label: ts.Label}
		if err := s.slotRepo.Create(ctx, tournament.ID, slot); err != nil {
			return nil, fmt.Errorf("failed to create time slot %q: %w", ts.StartTime, err)
		}
	}

	return tournament, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}
