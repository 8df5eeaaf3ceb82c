package fixtures

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Mutisya7/fixture-system/models"
)

const kickoffLayout = "15:04"

// ScheduleResult is the scheduler's output: the same match records with
// venue/kickoff/cost attached where a slot was found, plus a conflict for
// every match that could not be placed.
type ScheduleResult struct {
	Matches   []*models.ScheduledMatch
	Conflicts []*models.FixtureConflict
}

// ScheduleMatches assigns a venue and kickoff to every match it can, greedily
// and in a fixed order: same-county derbies first (they have the most to gain
// from local venues), then cross-county matches, ties broken by input order.
// Per match it scans venues in strictly-improving cost order, then days
// (Sundays excluded), then time slots, and takes the first combination that
// is neither double-booked nor inside either team's rest period.
//
// The booking map fills up as matches are assigned, so processing order
// materially affects who gets the best slots. The search is a plain greedy
// first-fit over venues x days x slots with no backtracking and no bound
// beyond the tournament window; callers needing bounded latency must impose
// their own budget.
func ScheduleMatches(matches []*models.ScheduledMatch, cfg *models.TournamentConfig) ScheduleResult {
	order := append([]*models.ScheduledMatch(nil), matches...)
	sort.SliceStable(order, func(i, j int) bool {
		return geographicPriority(order[i]) < geographicPriority(order[j])
	})

	days := playableDays(cfg.StartDate, cfg.EndDate)
	rest := time.Duration(cfg.RestPeriod) * time.Hour

	bookings := make(map[string]map[int64]bool)  // venue id -> booked kickoffs (unix)
	teamKickoffs := make(map[string][]time.Time) // team id -> assigned kickoffs

	var conflicts []*models.FixtureConflict

	for _, match := range order {
		bestCost := math.MaxInt
		var bestVenue *models.Venue
		var bestKickoff time.Time

		for _, venue := range cfg.Venues {
			cost := venueCost(venue, match)
			if cost >= bestCost {
				continue
			}

			kickoff, ok := firstFeasibleKickoff(venue, match, days, cfg.TimeSlots, bookings, teamKickoffs, rest)
			if !ok {
				continue
			}
			bestCost = cost
			bestVenue = venue
			bestKickoff = kickoff
		}

		if bestVenue == nil {
			conflicts = append(conflicts, &models.FixtureConflict{
				Type:     models.ConflictVenueClash,
				Severity: models.SeverityCritical,
				Message: fmt.Sprintf("no feasible venue and kickoff found for %s vs %s within the tournament window",
					match.HomeTeam.Name, match.AwayTeam.Name),
				FixtureID: match.ID,
			})
			continue
		}

		kickoff := bestKickoff
		match.Venue = bestVenue
		match.Kickoff = &kickoff
		match.Cost = bestCost

		if bookings[bestVenue.ID] == nil {
			bookings[bestVenue.ID] = make(map[int64]bool)
		}
		bookings[bestVenue.ID][kickoff.Unix()] = true
		teamKickoffs[match.HomeTeam.ID] = append(teamKickoffs[match.HomeTeam.ID], kickoff)
		teamKickoffs[match.AwayTeam.ID] = append(teamKickoffs[match.AwayTeam.ID], kickoff)
	}

	return ScheduleResult{Matches: matches, Conflicts: conflicts}
}

// geographicPriority ranks same-county pairings ahead of cross-county ones so
// local derbies get first pick of cheap local venues.
func geographicPriority(m *models.ScheduledMatch) int {
	if m.HomeTeam.County != "" && m.HomeTeam.County == m.AwayTeam.County {
		return 1
	}
	return 2
}

// venueCost scores a venue for a match: 1 if the venue sits in either team's
// county, 5 otherwise, plus max(1, 4-pitchCount) so thin venues rank below
// multi-pitch grounds.
func venueCost(venue *models.Venue, m *models.ScheduledMatch) int {
	cost := 5
	if venue.County == m.HomeTeam.County || venue.County == m.AwayTeam.County {
		cost = 1
	}
	capacity := 4 - venue.PitchCount
	if capacity < 1 {
		capacity = 1
	}
	return cost + capacity
}

func firstFeasibleKickoff(
	venue *models.Venue,
	match *models.ScheduledMatch,
	days []time.Time,
	slots []*models.TimeSlot,
	bookings map[string]map[int64]bool,
	teamKickoffs map[string][]time.Time,
	rest time.Duration,
) (time.Time, bool) {
	for _, day := range days {
		for _, slot := range slots {
			kickoff, err := slotKickoff(day, slot)
			if err != nil {
				continue
			}
			if bookings[venue.ID][kickoff.Unix()] {
				continue
			}
			if violatesRestPeriod(teamKickoffs, match, kickoff, rest) {
				continue
			}
			return kickoff, true
		}
	}
	return time.Time{}, false
}

// violatesRestPeriod reports whether either team already has a match within
// the rest period of the candidate kickoff, in either direction.
func violatesRestPeriod(teamKickoffs map[string][]time.Time, m *models.ScheduledMatch, candidate time.Time, rest time.Duration) bool {
	for _, teamID := range []string{m.HomeTeam.ID, m.AwayTeam.ID} {
		for _, existing := range teamKickoffs[teamID] {
			diff := candidate.Sub(existing)
			if diff < 0 {
				diff = -diff
			}
			if diff < rest {
				return true
			}
		}
	}
	return false
}

// playableDays expands the inclusive tournament window into candidate days,
// skipping Sundays unconditionally.
func playableDays(start, end time.Time) []time.Time {
	var days []time.Time
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for !day.After(last) {
		if !shouldSkipDate(day) {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}

func shouldSkipDate(day time.Time) bool {
	return day.Weekday() == time.Sunday
}

func slotKickoff(day time.Time, slot *models.TimeSlot) (time.Time, error) {
	t, err := time.Parse(kickoffLayout, slot.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time slot %q: %w", slot.StartTime, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
