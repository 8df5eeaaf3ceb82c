// Package fixtures implements the tournament fixture scheduling engine: a
// single-pass pipeline that validates the configuration, partitions teams
// into groups, generates round-robin pairings via the circle method, assigns
// venues and kickoff times under travel-cost, rest-period and double-booking
// constraints, and re-scans the result for residual conflicts.
//
// Every stage is a pure function over its inputs; the engine performs no I/O
// and keeps no state across calls, so concurrent invocations are independent.
package fixtures

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mutisya7/fixture-system/models"
)

// ErrInvalidConfiguration wraps the aggregated validation messages when the
// input cannot be scheduled at all.
var ErrInvalidConfiguration = errors.New("invalid tournament configuration")

// GenerateResult is the engine's complete output for one run.
type GenerateResult struct {
	Fixtures  []*models.ScheduledMatch  `json:"fixtures"`
	Conflicts []*models.FixtureConflict `json:"conflicts"`
	Groups    []*models.Group           `json:"groups"`
}

// GenerateFixtures runs the full pipeline. On validation failure it returns
// ErrInvalidConfiguration with all messages joined by ", " and does no
// grouping or scheduling work. Everything after validation is best-effort:
// matches the scheduler cannot place stay in the output unassigned, reported
// through the conflicts list rather than an error.
func GenerateFixtures(teams []*models.Team, cfg *models.TournamentConfig) (*GenerateResult, error) {
	validation := ValidateConfiguration(teams, cfg)
	if !validation.IsValid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(validation.Errors, ", "))
	}

	legs := cfg.Legs
	if legs != 2 {
		legs = 1
	}

	groups := BuildGroups(teams, cfg)

	var all []*models.ScheduledMatch
	for _, group := range groups {
		group.Matches = GenerateRoundRobin(group, legs)
		all = append(all, group.Matches...)
	}

	scheduled := ScheduleMatches(all, cfg)

	conflicts := make([]*models.FixtureConflict, 0, len(scheduled.Conflicts))
	conflicts = append(conflicts, scheduled.Conflicts...)
	conflicts = append(conflicts, DetectConflicts(scheduled.Matches, cfg)...)

	return &GenerateResult{
		Fixtures:  scheduled.Matches,
		Conflicts: conflicts,
		Groups:    groups,
	}, nil
}
