package fixtures

import (
	"fmt"

	"github.com/Mutisya7/fixture-system/models"
)

// ByeTeamID marks the synthetic opponent inserted to balance an odd team
// count. Matches against it never reach the output.
const ByeTeamID = "bye"

// GenerateRoundRobin produces the group's complete round-robin pairings via
// the circle method: team 0 stays fixed while the rest rotate one position
// per round, so every team meets every other exactly once per leg. Venue and
// kickoff are left unset for the scheduler.
//
// legs is 1 for a single round robin or 2 for home-and-away; the second leg
// reverses home/away and continues the round numbering. For n teams (even)
// one leg yields n*(n-1)/2 matches over n-1 rounds; an odd count gets a bye
// per round and the same totals as n-1 even teams.
func GenerateRoundRobin(group *models.Group, legs int) []*models.ScheduledMatch {
	teams := append([]*models.Team(nil), group.Teams...)
	if len(teams) < 2 {
		return nil
	}
	if len(teams)%2 != 0 {
		teams = append(teams, &models.Team{ID: ByeTeamID, Name: "BYE"})
	}

	totalRounds := len(teams) - 1

	matches := generateLeg(group.ID, teams, 1, 0)
	if legs == 2 {
		matches = append(matches, generateLeg(group.ID, teams, 2, totalRounds)...)
	}
	return matches
}

func generateLeg(groupID string, teams []*models.Team, leg, roundOffset int) []*models.ScheduledMatch {
	n := len(teams)
	totalRounds := n - 1

	rotation := append([]*models.Team(nil), teams...)
	matches := make([]*models.ScheduledMatch, 0, n*totalRounds/2)

	for round := 1; round <= totalRounds; round++ {
		for i := 0; i < n/2; i++ {
			home := rotation[i]
			away := rotation[n-1-i]
			if leg == 2 {
				home, away = away, home
			}
			if home.ID == ByeTeamID || away.ID == ByeTeamID {
				continue
			}
			matches = append(matches, &models.ScheduledMatch{
				ID:       fmt.Sprintf("%s_r%d_m%d", groupID, round+roundOffset, i+1),
				GroupID:  groupID,
				Round:    round + roundOffset,
				Leg:      leg,
				HomeTeam: home,
				AwayTeam: away,
				Status:   models.MatchStatusScheduled,
			})
		}

		// Fix rotation[0], rotate the rest clockwise by one.
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return matches
}
