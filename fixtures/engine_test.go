package fixtures

import (
	"testing"
	"time"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-01 is a Sunday; the window below runs Monday through Saturday.
var (
	monday   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
)

func newTeam(id, name, county string) *models.Team {
	return &models.Team{ID: id, Name: name, County: county}
}

func newVenue(id, name, county string, pitchCount int) *models.Venue {
	return &models.Venue{ID: id, Name: name, Location: name, County: county, PitchCount: pitchCount}
}

func newSlot(id, startTime string) *models.TimeSlot {
	return &models.TimeSlot{ID: id, StartTime: startTime, Label: startTime}
}

func baseConfig() *models.TournamentConfig {
	return &models.TournamentConfig{
		Format:        models.FormatRoundRobin,
		Venues:        []*models.Venue{newVenue("v1", "City Stadium", "Nairobi", 2)},
		TimeSlots:     []*models.TimeSlot{newSlot("s1", "10:00"), newSlot("s2", "14:00")},
		StartDate:     monday,
		EndDate:       saturday,
		MatchDuration: 90,
		BufferTime:    15,
		RestPeriod:    24,
		Legs:          1,
	}
}

func nairobiTeams(n int) []*models.Team {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	teams := make([]*models.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, newTeam("t"+names[i], "Team "+names[i], "Nairobi"))
	}
	return teams
}

func TestGenerateFixturesInvalidConfiguration(t *testing.T) {
	cfg := &models.TournamentConfig{Format: models.FormatRoundRobin}

	result, err := GenerateFixtures(nil, cfg)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "at least 2 teams are required")
	assert.Contains(t, err.Error(), "start date and end date are required")
	assert.Contains(t, err.Error(), "at least one venue is required")
	assert.Contains(t, err.Error(), "at least one time slot is required")
	// Messages are joined by ", " into a single error.
	assert.Contains(t, err.Error(), "at least one venue is required, at least one time slot is required")
}

func TestGenerateFixturesRoundRobinHappyPath(t *testing.T) {
	cfg := baseConfig()
	cfg.Venues = append(cfg.Venues, newVenue("v2", "Ruaraka Grounds", "Nairobi", 3))
	cfg.EndDate = time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)

	result, err := GenerateFixtures(nairobiTeams(4), cfg)
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)
	assert.Len(t, result.Fixtures, 6)
	assert.Len(t, result.Groups[0].Matches, 6)

	for _, match := range result.Fixtures {
		assert.NotNil(t, match.Venue, "match %s should be scheduled", match.ID)
		assert.NotNil(t, match.Kickoff, "match %s should have a kickoff", match.ID)
		assert.Equal(t, models.MatchStatusScheduled, match.Status)
		assert.NotEqual(t, match.HomeTeam.ID, match.AwayTeam.ID)
	}

	for _, conflict := range result.Conflicts {
		assert.NotEqual(t, models.ConflictVenueClash, conflict.Type)
	}
}

// Every assigned pair sharing a venue must either not overlap or carry a
// DOUBLE_BOOKING conflict.
func TestGenerateFixturesDoubleBookingConsistency(t *testing.T) {
	cfg := baseConfig()
	cfg.RestPeriod = 0 // pack the single venue as tightly as possible

	result, err := GenerateFixtures(nairobiTeams(6), cfg)
	require.NoError(t, err)

	occupancy := time.Duration(cfg.MatchDuration+cfg.BufferTime) * time.Minute

	flagged := make(map[string]bool)
	for _, c := range result.Conflicts {
		if c.Type == models.ConflictDoubleBooking {
			flagged[c.FixtureID] = true
		}
	}

	for i, a := range result.Fixtures {
		if a.Venue == nil || a.Kickoff == nil {
			continue
		}
		for _, b := range result.Fixtures[:i] {
			if b.Venue == nil || b.Kickoff == nil || a.Venue.ID != b.Venue.ID {
				continue
			}
			overlaps := a.Kickoff.Before(b.Kickoff.Add(occupancy)) && b.Kickoff.Before(a.Kickoff.Add(occupancy))
			if overlaps {
				assert.True(t, flagged[a.ID], "overlapping matches %s and %s without DOUBLE_BOOKING conflict", b.ID, a.ID)
			}
		}
	}
}

func TestGenerateFixturesGroupKnockout(t *testing.T) {
	cfg := baseConfig()
	cfg.Format = models.FormatGroupKnockout
	cfg.GroupCount = 2
	cfg.TeamsPerGroup = 4
	cfg.EndDate = time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)
	cfg.Venues = append(cfg.Venues, newVenue("v2", "Kasarani Annex", "Nairobi", 3))

	result, err := GenerateFixtures(nairobiTeams(8), cfg)
	require.NoError(t, err)

	require.Len(t, result.Groups, 2)
	assert.Len(t, result.Fixtures, 12)
	for _, group := range result.Groups {
		assert.Len(t, group.Teams, 4)
		assert.Len(t, group.Matches, 6)
		for _, match := range group.Matches {
			assert.Equal(t, group.ID, match.GroupID)
		}
	}
}

func TestGenerateFixturesGroupKnockoutTeamCountMismatch(t *testing.T) {
	cfg := baseConfig()
	cfg.Format = models.FormatGroupKnockout
	cfg.GroupCount = 2
	cfg.TeamsPerGroup = 4

	_, err := GenerateFixtures(nairobiTeams(6), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "exactly 8 teams")
}

func TestGenerateFixturesDoubleLeg(t *testing.T) {
	cfg := baseConfig()
	cfg.Legs = 2
	cfg.EndDate = time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
	cfg.Venues = append(cfg.Venues, newVenue("v2", "Ruaraka Grounds", "Nairobi", 3))

	result, err := GenerateFixtures(nairobiTeams(4), cfg)
	require.NoError(t, err)
	require.Len(t, result.Fixtures, 12)

	var firstLeg, secondLeg []*models.ScheduledMatch
	for _, match := range result.Fixtures {
		switch match.Leg {
		case 1:
			firstLeg = append(firstLeg, match)
		case 2:
			secondLeg = append(secondLeg, match)
		}
	}
	require.Len(t, firstLeg, 6)
	require.Len(t, secondLeg, 6)

	// The second leg mirrors the first with home/away reversed and round
	// numbering continued.
	for i, first := range firstLeg {
		second := secondLeg[i]
		assert.Equal(t, first.HomeTeam.ID, second.AwayTeam.ID)
		assert.Equal(t, first.AwayTeam.ID, second.HomeTeam.ID)
		assert.Equal(t, first.Round+3, second.Round)
	}
}
