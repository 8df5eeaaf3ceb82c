package fixtures

import (
	"fmt"
	"testing"

	"github.com/Mutisya7/fixture-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countyTeams(county string, n int) []*models.Team {
	teams := make([]*models.Team, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%s-%d", county, i)
		teams = append(teams, newTeam(id, id, county))
	}
	return teams
}

func TestBuildGroupsRoundRobinSingleGroup(t *testing.T) {
	teams := nairobiTeams(5)
	cfg := &models.TournamentConfig{Format: models.FormatRoundRobin}

	groups := BuildGroups(teams, cfg)

	require.Len(t, groups, 1)
	assert.Equal(t, "Group A", groups[0].Name)
	assert.Equal(t, teams, groups[0].Teams)
}

func TestBuildGroupsOtherFormatSinglePseudoGroup(t *testing.T) {
	teams := nairobiTeams(8)
	cfg := &models.TournamentConfig{Format: models.FormatSingleElimination}

	groups := BuildGroups(teams, cfg)

	require.Len(t, groups, 1)
	assert.Equal(t, "bracket", groups[0].ID)
	assert.Len(t, groups[0].Teams, 8)
}

func TestBuildGroupsGeographicSpread(t *testing.T) {
	var teams []*models.Team
	teams = append(teams, countyTeams("Nairobi", 4)...)
	teams = append(teams, countyTeams("Kiambu", 4)...)
	cfg := &models.TournamentConfig{Format: models.FormatGroupKnockout, GroupCount: 2, TeamsPerGroup: 4}

	groups := BuildGroups(teams, cfg)

	require.Len(t, groups, 2)
	assert.Equal(t, "Group A", groups[0].Name)
	assert.Equal(t, "Group B", groups[1].Name)

	// Each county's cluster gets dealt across both groups instead of
	// stacking in one.
	for _, group := range groups {
		require.Len(t, group.Teams, 4)
		counts := make(map[string]int)
		for _, team := range group.Teams {
			counts[team.County]++
		}
		assert.Equal(t, 2, counts["Nairobi"], "group %s", group.Name)
		assert.Equal(t, 2, counts["Kiambu"], "group %s", group.Name)
	}
}

func TestBuildGroupsMissingCountyBucketsAsUnknown(t *testing.T) {
	teams := []*models.Team{
		newTeam("t1", "Team 1", ""),
		newTeam("t2", "Team 2", ""),
		newTeam("t3", "Team 3", "Mombasa"),
		newTeam("t4", "Team 4", "Mombasa"),
	}
	cfg := &models.TournamentConfig{Format: models.FormatGroupKnockout, GroupCount: 2, TeamsPerGroup: 2}

	groups := BuildGroups(teams, cfg)

	require.Len(t, groups, 2)
	total := 0
	for _, group := range groups {
		total += len(group.Teams)
	}
	assert.Equal(t, 4, total)
}

// Identical input ordering must produce identical group membership.
func TestBuildGroupsDeterministic(t *testing.T) {
	var teams []*models.Team
	teams = append(teams, countyTeams("Nairobi", 3)...)
	teams = append(teams, countyTeams("Kiambu", 3)...)
	teams = append(teams, countyTeams("Mombasa", 3)...)
	cfg := &models.TournamentConfig{Format: models.FormatGroupKnockout, GroupCount: 3, TeamsPerGroup: 3}

	first := BuildGroups(teams, cfg)
	second := BuildGroups(teams, cfg)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i].Teams), len(second[i].Teams))
		for j := range first[i].Teams {
			assert.Equal(t, first[i].Teams[j].ID, second[i].Teams[j].ID)
		}
	}
}
