package models

import "time"

type TournamentFormat string

const (
	FormatRoundRobin        TournamentFormat = "round_robin"
	FormatGroupKnockout     TournamentFormat = "group_knockout"
	FormatSingleElimination TournamentFormat = "single_elimination"
)

type TournamentStatus string

const (
	TournamentStatusDraft     TournamentStatus = "draft"
	TournamentStatusScheduled TournamentStatus = "scheduled"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
)

// Tournament is the persisted tournament row, including the scheduling
// settings the fixture engine consumes.
type Tournament struct {
	ID               string           `json:"id" db:"id"`
	Name             string           `json:"name" db:"name"`
	Format           TournamentFormat `json:"format" db:"format"`
	Status           TournamentStatus `json:"status" db:"status"`
	StartDate        time.Time        `json:"start_date" db:"start_date"`
	EndDate          time.Time        `json:"end_date" db:"end_date"`
	GroupingStrategy string           `json:"grouping_strategy" db:"grouping_strategy"`
	MatchDuration    int              `json:"match_duration" db:"match_duration"` // minutes
	BufferTime       int              `json:"buffer_time" db:"buffer_time"`       // minutes
	RestPeriod       int              `json:"rest_period" db:"rest_period"`       // hours
	GroupCount       int              `json:"group_count" db:"group_count"`
	TeamsPerGroup    int              `json:"teams_per_group" db:"teams_per_group"`
	Legs             int              `json:"legs" db:"legs"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
}

// TournamentConfig is the full input the fixture engine works from. It is
// assembled by the caller (typically FixtureService, from a Tournament row
// plus its venues and time slots) and never mutated by the engine.
type TournamentConfig struct {
	Format           TournamentFormat `json:"format"`
	Venues           []*Venue         `json:"venues"`
	TimeSlots        []*TimeSlot      `json:"time_slots"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          time.Time        `json:"end_date"`
	GroupingStrategy string           `json:"grouping_strategy"`
	MatchDuration    int              `json:"match_duration"` // minutes
	BufferTime       int              `json:"buffer_time"`    // minutes
	RestPeriod       int              `json:"rest_period"`    // hours
	GroupCount       int              `json:"group_count"`
	TeamsPerGroup    int              `json:"teams_per_group"`
	Legs             int              `json:"legs"` // 1 (default) or 2 for home-and-away
}

// SchedulingConfig extracts the engine input from a tournament row. Venues
// and time slots are attached by the caller.
func (t *Tournament) SchedulingConfig(venues []*Venue, slots []*TimeSlot) *TournamentConfig {
	legs := t.Legs
	if legs != 2 {
		legs = 1
	}
	return &TournamentConfig{
		Format:           t.Format,
		Venues:           venues,
		TimeSlots:        slots,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		GroupingStrategy: t.GroupingStrategy,
		MatchDuration:    t.MatchDuration,
		BufferTime:       t.BufferTime,
		RestPeriod:       t.RestPeriod,
		GroupCount:       t.GroupCount,
		TeamsPerGroup:    t.TeamsPerGroup,
		Legs:             legs,
	}
}
