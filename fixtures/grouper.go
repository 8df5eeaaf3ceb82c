package fixtures

import (
	"fmt"

	"github.com/Mutisya7/fixture-system/models"
)

const unknownCounty = "Unknown"

// BuildGroups partitions teams into groups according to the tournament
// format. round_robin puts everyone in one group; group_knockout spreads
// county clusters across GroupCount groups; any other format falls back to a
// single bracket pseudo-group played as a round robin (true elimination
// brackets are generated elsewhere, if at all).
//
// Output is deterministic for a given team ordering. Callers that need
// reproducible groupings must supply teams in a stable order; no secondary
// sort is applied here.
func BuildGroups(teams []*models.Team, cfg *models.TournamentConfig) []*models.Group {
	switch cfg.Format {
	case models.FormatRoundRobin:
		return []*models.Group{{
			ID:    "group_a",
			Name:  "Group A",
			Teams: append([]*models.Team(nil), teams...),
		}}
	case models.FormatGroupKnockout:
		return createGeographicalGroups(teams, cfg.GroupCount)
	default:
		return []*models.Group{{
			ID:    "bracket",
			Name:  "Bracket",
			Teams: append([]*models.Team(nil), teams...),
		}}
	}
}

// createGeographicalGroups buckets teams by county and deals each bucket out
// round-robin over the groups, so teams from the same county end up spread
// across groups instead of stacked in one.
func createGeographicalGroups(teams []*models.Team, groupCount int) []*models.Group {
	if groupCount < 1 {
		groupCount = 1
	}

	// County buckets, iterated in first-seen order.
	buckets := make(map[string][]*models.Team)
	var counties []string
	for _, team := range teams {
		county := team.County
		if county == "" {
			county = unknownCounty
		}
		if _, ok := buckets[county]; !ok {
			counties = append(counties, county)
		}
		buckets[county] = append(buckets[county], team)
	}

	groups := make([]*models.Group, groupCount)
	for i := range groups {
		name := fmt.Sprintf("Group %c", 'A'+i)
		groups[i] = &models.Group{
			ID:   fmt.Sprintf("group_%c", 'a'+i),
			Name: name,
		}
	}

	groupIndex := 0
	for _, county := range counties {
		for _, team := range buckets[county] {
			groups[groupIndex].Teams = append(groups[groupIndex].Teams, team)
			groupIndex = (groupIndex + 1) % groupCount
		}
	}

	return groups
}
