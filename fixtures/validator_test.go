package fixtures

import (
	"strings"
	"testing"
	"time"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfiguration(t *testing.T) {
	testCases := []struct {
		name           string
		teams          []*models.Team
		mutate         func(cfg *models.TournamentConfig)
		expectedValid  bool
		expectedErrors []string
	}{
		{
			name:          "valid round robin",
			teams:         nairobiTeams(4),
			mutate:        func(cfg *models.TournamentConfig) {},
			expectedValid: true,
		},
		{
			name:           "too few teams",
			teams:          nairobiTeams(1),
			mutate:         func(cfg *models.TournamentConfig) {},
			expectedErrors: []string{"at least 2 teams are required, got 1"},
		},
		{
			name:  "missing dates",
			teams: nairobiTeams(4),
			mutate: func(cfg *models.TournamentConfig) {
				cfg.StartDate = time.Time{}
				cfg.EndDate = time.Time{}
			},
			expectedErrors: []string{"start date and end date are required"},
		},
		{
			name:  "no venues",
			teams: nairobiTeams(4),
			mutate: func(cfg *models.TournamentConfig) {
				cfg.Venues = nil
			},
			expectedErrors: []string{"at least one venue is required"},
		},
		{
			name:  "no time slots",
			teams: nairobiTeams(4),
			mutate: func(cfg *models.TournamentConfig) {
				cfg.TimeSlots = nil
			},
			expectedErrors: []string{"at least one time slot is required"},
		},
		{
			name:  "group knockout team count mismatch",
			teams: nairobiTeams(6),
			mutate: func(cfg *models.TournamentConfig) {
				cfg.Format = models.FormatGroupKnockout
				cfg.GroupCount = 2
				cfg.TeamsPerGroup = 4
			},
			expectedErrors: []string{"requires exactly 8 teams"},
		},
		{
			name:  "errors accumulate",
			teams: nil,
			mutate: func(cfg *models.TournamentConfig) {
				cfg.Venues = nil
				cfg.TimeSlots = nil
			},
			expectedErrors: []string{
				"at least 2 teams are required",
				"at least one venue is required",
				"at least one time slot is required",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(cfg)

			result := ValidateConfiguration(tc.teams, cfg)

			assert.Equal(t, tc.expectedValid, result.IsValid)
			if tc.expectedValid {
				assert.Empty(t, result.Errors)
				return
			}
			require.NotEmpty(t, result.Errors)
			for _, expected := range tc.expectedErrors {
				found := false
				for _, msg := range result.Errors {
					if strings.Contains(msg, expected) {
						found = true
						break
					}
				}
				assert.True(t, found, "expected an error containing %q, got %v", expected, result.Errors)
			}
		})
	}
}
