package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "SCHEDULED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusCompleted  MatchStatus = "COMPLETED"
	MatchStatusCanceled   MatchStatus = "CANCELED"
)

// Group is a partition of the tournament's teams produced by the grouper.
// Matches is filled in by the pairing generator.
type Group struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Teams   []*Team           `json:"teams"`
	Matches []*ScheduledMatch `json:"matches,omitempty"`
}

// ScheduledMatch is one fixture. Venue and Kickoff stay nil until the
// scheduler assigns them; a match the scheduler could not place keeps them
// nil and gets a VENUE_CLASH conflict instead.
type ScheduledMatch struct {
	ID       string      `json:"id"`
	GroupID  string      `json:"group_id,omitempty"`
	Round    int         `json:"round"`
	Leg      int         `json:"leg"`
	HomeTeam *Team       `json:"home_team"`
	AwayTeam *Team       `json:"away_team"`
	Venue    *Venue      `json:"venue,omitempty"`
	Kickoff  *time.Time  `json:"kickoff,omitempty"`
	Status   MatchStatus `json:"status"`
	Cost     int         `json:"cost,omitempty"`
}

type ConflictType string

const (
	ConflictRestPeriod    ConflictType = "REST_PERIOD"
	ConflictDoubleBooking ConflictType = "DOUBLE_BOOKING"
	ConflictTravelBurden  ConflictType = "TRAVEL_BURDEN"
	ConflictVenueClash    ConflictType = "VENUE_CLASH"
)

type ConflictSeverity string

const (
	SeverityLow      ConflictSeverity = "LOW"
	SeverityMedium   ConflictSeverity = "MEDIUM"
	SeverityHigh     ConflictSeverity = "HIGH"
	SeverityCritical ConflictSeverity = "CRITICAL"
)

// FixtureConflict is a diagnostic attached to a generated schedule. It is
// data, never an error: callers decide whether a schedule with conflicts is
// acceptable.
type FixtureConflict struct {
	Type      ConflictType     `json:"type"`
	Severity  ConflictSeverity `json:"severity"`
	Message   string           `json:"message"`
	FixtureID string           `json:"fixture_id"`
}
