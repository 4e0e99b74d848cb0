package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/abalcs/sleeper-app/model"
)

// challengeRule is one weekly side challenge. winner picks the winning
// matchup entry from that week's raw matchups, or nil when the rule
// cannot produce one.
type challengeRule struct {
	name        string
	description string
	winner      func(matchups []model.Matchup) *model.Matchup
}

// challengeRules maps week numbers to their challenge. Weeks without an
// entry fall back to defaultChallenge rather than erroring.
var challengeRules = map[int]challengeRule{
	1: {
		name:        "Hot Start",
		description: "The team that scores the most points wins.",
		winner:      highestTotalPoints,
	},
}

var defaultChallenge = challengeRule{
	name:        "Unknown Challenge",
	description: "No challenge defined for this week.",
}

// highestTotalPoints picks the matchup entry with the highest total.
// The first entry encountered wins ties.
func highestTotalPoints(matchups []model.Matchup) *model.Matchup {
	var best *model.Matchup
	for i := range matchups {
		if best == nil || matchups[i].Points > best.Points {
			best = &matchups[i]
		}
	}
	return best
}

func (c *controller) GetChallenge(ctx context.Context, leagueID string, week int) (*model.ChallengeResult, error) {
	var (
		matchups   []model.Matchup
		matchupErr error
	)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		matchups, matchupErr = c.sleeper.GetMatchups(leagueID, week)
	}()

	users, rosters, err := c.fetchUsersAndRosters(leagueID)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	if matchupErr != nil {
		return nil, fmt.Errorf("error loading week %d matchups: %w", week, matchupErr)
	}

	rule, ok := challengeRules[week]
	if !ok {
		rule = defaultChallenge
	}

	result := &model.ChallengeResult{
		Week:        week,
		Challenge:   rule.name,
		Description: rule.description,
	}

	if rule.winner != nil {
		if w := rule.winner(matchups); w != nil {
			team, manager := model.UnknownTeamName, model.UnknownDisplayName
			if owner, ok := resolveOwners(users, rosters)[w.RosterID]; ok {
				team = owner.TeamName
				manager = owner.DisplayName
			}
			result.Winner = &model.ChallengeWinner{
				Team:    team,
				Manager: manager,
				Points:  w.Points,
			}
		}
	}

	return result, nil
}
