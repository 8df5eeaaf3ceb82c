package fixtures

import (
	"testing"
	"time"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedMatch(id string, home, away *models.Team, venue *models.Venue, kickoff time.Time) *models.ScheduledMatch {
	return &models.ScheduledMatch{
		ID:       id,
		Round:    1,
		Leg:      1,
		HomeTeam: home,
		AwayTeam: away,
		Venue:    venue,
		Kickoff:  &kickoff,
		Status:   models.MatchStatusScheduled,
	}
}

func conflictsOfType(conflicts []*models.FixtureConflict, typ models.ConflictType) []*models.FixtureConflict {
	var out []*models.FixtureConflict
	for _, c := range conflicts {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func TestDetectConflictsRestPeriod(t *testing.T) {
	cfg := baseConfig()
	teamA := newTeam("t1", "Team A", "Nairobi")
	teamB := newTeam("t2", "Team B", "Nairobi")
	teamC := newTeam("t3", "Team C", "Nairobi")
	venueA := newVenue("v1", "City Stadium", "Nairobi", 2)
	venueB := newVenue("v2", "Ruaraka Grounds", "Nairobi", 2)

	// Team A plays twice only 4 hours apart, at different venues.
	matches := []*models.ScheduledMatch{
		assignedMatch("m1", teamA, teamB, venueA, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
		assignedMatch("m2", teamA, teamC, venueB, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)),
	}

	conflicts := DetectConflicts(matches, cfg)

	rest := conflictsOfType(conflicts, models.ConflictRestPeriod)
	require.Len(t, rest, 1)
	assert.Equal(t, models.SeverityHigh, rest[0].Severity)
	assert.Equal(t, "m2", rest[0].FixtureID)
	assert.Contains(t, rest[0].Message, "Team A")

	assert.Empty(t, conflictsOfType(conflicts, models.ConflictDoubleBooking))
}

func TestDetectConflictsDoubleBooking(t *testing.T) {
	cfg := baseConfig()
	cfg.RestPeriod = 0
	venue := newVenue("v1", "City Stadium", "Nairobi", 2)

	// Disjoint teams, same venue, kickoffs 60 minutes apart with a
	// 90+15 minute occupancy window: the windows overlap.
	matches := []*models.ScheduledMatch{
		assignedMatch("m1",
			newTeam("t1", "Team A", "Nairobi"), newTeam("t2", "Team B", "Nairobi"),
			venue, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
		assignedMatch("m2",
			newTeam("t3", "Team C", "Nairobi"), newTeam("t4", "Team D", "Nairobi"),
			venue, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)),
	}

	conflicts := DetectConflicts(matches, cfg)

	booked := conflictsOfType(conflicts, models.ConflictDoubleBooking)
	require.Len(t, booked, 1)
	assert.Equal(t, models.SeverityCritical, booked[0].Severity)
	assert.Equal(t, "m2", booked[0].FixtureID)
}

func TestDetectConflictsNoOverlapNoDoubleBooking(t *testing.T) {
	cfg := baseConfig()
	cfg.RestPeriod = 0
	venue := newVenue("v1", "City Stadium", "Nairobi", 2)

	// 105 minutes of occupancy; kickoffs 4 hours apart do not clash.
	matches := []*models.ScheduledMatch{
		assignedMatch("m1",
			newTeam("t1", "Team A", "Nairobi"), newTeam("t2", "Team B", "Nairobi"),
			venue, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
		assignedMatch("m2",
			newTeam("t3", "Team C", "Nairobi"), newTeam("t4", "Team D", "Nairobi"),
			venue, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)),
	}

	conflicts := DetectConflicts(matches, cfg)
	assert.Empty(t, conflictsOfType(conflicts, models.ConflictDoubleBooking))
}

func TestDetectConflictsTravelBurden(t *testing.T) {
	cfg := baseConfig()

	match := assignedMatch("m1",
		newTeam("t1", "Kisumu FC", "Kisumu"),
		newTeam("t2", "Nairobi FC", "Nairobi"),
		newVenue("v1", "City Stadium", "Nairobi", 2),
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	conflicts := DetectConflicts([]*models.ScheduledMatch{match}, cfg)

	travel := conflictsOfType(conflicts, models.ConflictTravelBurden)
	require.Len(t, travel, 1)
	assert.Equal(t, models.SeverityLow, travel[0].Severity)
	assert.Equal(t, "m1", travel[0].FixtureID)
}

func TestDetectConflictsSkipsUnassignedMatches(t *testing.T) {
	cfg := baseConfig()

	unassigned := &models.ScheduledMatch{
		ID:       "m1",
		HomeTeam: newTeam("t1", "Team A", "Nairobi"),
		AwayTeam: newTeam("t2", "Team B", "Nairobi"),
		Status:   models.MatchStatusScheduled,
	}

	assert.Empty(t, DetectConflicts([]*models.ScheduledMatch{unassigned}, cfg))
}
