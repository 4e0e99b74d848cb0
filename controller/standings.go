package controller

import (
	"context"
	"sort"

	"github.com/abalcs/sleeper-app/model"
)

// GetStandings reports the platform-maintained records; wins are never
// derived from points here.
func (c *controller) GetStandings(ctx context.Context, leagueID string) ([]model.Standing, error) {
	users, rosters, err := c.fetchUsersAndRosters(leagueID)
	if err != nil {
		return nil, err
	}
	owners := resolveOwners(users, rosters)

	standings := make([]model.Standing, 0, len(rosters))
	for _, r := range rosters {
		owner := owners[r.RosterID]
		s := model.Standing{
			RosterID:    r.RosterID,
			TeamName:    owner.TeamName,
			DisplayName: owner.DisplayName,
		}
		if r.Settings != nil {
			s.Wins = r.Settings.Wins
			s.Losses = r.Settings.Losses
			s.Ties = r.Settings.Ties
			s.Fpts = r.Settings.Fpts
			s.FptsAgainst = r.Settings.FptsAgainst
		}
		standings = append(standings, s)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Fpts > standings[j].Fpts
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}
