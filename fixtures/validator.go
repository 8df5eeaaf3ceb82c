package fixtures

import (
	"fmt"

	"github.com/Mutisya7/fixture-system/models"
)

// ValidationResult carries every configuration problem found, not just the
// first. It never aborts anything itself; GenerateFixtures decides.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// ValidateConfiguration checks that the team list and tournament settings are
// internally consistent for the chosen format. All applicable errors are
// accumulated.
func ValidateConfiguration(teams []*models.Team, cfg *models.TournamentConfig) ValidationResult {
	var errs []string

	if len(teams) < 2 {
		errs = append(errs, fmt.Sprintf("at least 2 teams are required, got %d", len(teams)))
	}
	if cfg.StartDate.IsZero() || cfg.EndDate.IsZero() {
		errs = append(errs, "tournament start date and end date are required")
	}
	if len(cfg.Venues) == 0 {
		errs = append(errs, "at least one venue is required")
	}
	if len(cfg.TimeSlots) == 0 {
		errs = append(errs, "at least one time slot is required")
	}
	if cfg.Format == models.FormatGroupKnockout {
		expected := cfg.GroupCount * cfg.TeamsPerGroup
		if len(teams) != expected {
			errs = append(errs, fmt.Sprintf(
				"group_knockout format requires exactly %d teams (%d groups x %d teams per group), got %d",
				expected, cfg.GroupCount, cfg.TeamsPerGroup, len(teams)))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
