package fixtures

import (
	"fmt"
	"time"

	"github.com/Mutisya7/fixture-system/models"
)

// DetectConflicts re-validates a finished schedule independently of the
// scheduler's own avoidance, comparing each assigned match against every
// assigned match before it in the list. The scheduler is greedy and does not
// backtrack, so this pass is what surfaces anything it painted itself into.
func DetectConflicts(matches []*models.ScheduledMatch, cfg *models.TournamentConfig) []*models.FixtureConflict {
	var conflicts []*models.FixtureConflict

	occupancy := time.Duration(cfg.MatchDuration+cfg.BufferTime) * time.Minute
	rest := time.Duration(cfg.RestPeriod) * time.Hour

	for i, match := range matches {
		if match.Kickoff == nil || match.Venue == nil {
			continue
		}

		for _, earlier := range matches[:i] {
			if earlier.Kickoff == nil || earlier.Venue == nil {
				continue
			}

			if sharedTeam(match, earlier) != nil {
				diff := match.Kickoff.Sub(*earlier.Kickoff)
				if diff < 0 {
					diff = -diff
				}
				if diff < rest {
					team := sharedTeam(match, earlier)
					conflicts = append(conflicts, &models.FixtureConflict{
						Type:     models.ConflictRestPeriod,
						Severity: models.SeverityHigh,
						Message: fmt.Sprintf("%s has matches %s and %s only %.1f hours apart (minimum rest %d hours)",
							team.Name, earlier.ID, match.ID, diff.Hours(), cfg.RestPeriod),
						FixtureID: match.ID,
					})
				}
			}

			if match.Venue.ID == earlier.Venue.ID && windowsOverlap(*match.Kickoff, *earlier.Kickoff, occupancy) {
				conflicts = append(conflicts, &models.FixtureConflict{
					Type:     models.ConflictDoubleBooking,
					Severity: models.SeverityCritical,
					Message: fmt.Sprintf("venue %s is double-booked between %s and %s",
						match.Venue.Name, earlier.ID, match.ID),
					FixtureID: match.ID,
				})
			}
		}

		if match.HomeTeam.County != match.Venue.County || match.AwayTeam.County != match.Venue.County {
			conflicts = append(conflicts, &models.FixtureConflict{
				Type:     models.ConflictTravelBurden,
				Severity: models.SeverityLow,
				Message: fmt.Sprintf("%s vs %s is played at %s in %s county, outside at least one team's home county",
					match.HomeTeam.Name, match.AwayTeam.Name, match.Venue.Name, match.Venue.County),
				FixtureID: match.ID,
			})
		}
	}

	return conflicts
}

func sharedTeam(a, b *models.ScheduledMatch) *models.Team {
	for _, t := range []*models.Team{a.HomeTeam, a.AwayTeam} {
		if t.ID == b.HomeTeam.ID || t.ID == b.AwayTeam.ID {
			return t
		}
	}
	return nil
}

// windowsOverlap reports whether two occupancy windows of the given length
// starting at a and b intersect.
func windowsOverlap(a, b time.Time, length time.Duration) bool {
	return a.Before(b.Add(length)) && b.Before(a.Add(length))
}
