package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/abalcs/sleeper-app/model"
)

// resolvePlayer turns an opaque player id into a display-ready record.
// Ids missing from the directory (empty slots, team defenses) resolve
// to a placeholder named after the id itself. A missing projection is
// nil, not zero; a missing actual score is zero, not unknown.
func resolvePlayer(directory model.PlayerDirectory, playerID string, points map[string]float64, projections map[string]model.Projection) model.ResolvedPlayer {
	actual := points[playerID]

	var proj *float64
	if p, ok := projections[playerID]; ok {
		proj = p.Stats.PtsPPR
	}

	info, ok := directory[playerID]
	if !ok {
		return model.ResolvedPlayer{
			ID:     playerID,
			Name:   playerID,
			Proj:   proj,
			Actual: actual,
		}
	}

	return model.ResolvedPlayer{
		ID:     playerID,
		Name:   info.DisplayName(),
		Pos:    info.PrimaryPosition(),
		Team:   info.Team,
		Proj:   proj,
		Actual: actual,
	}
}

// enrichMatchups resolves the starter list and the full player list of
// every raw matchup independently. The two resolved lists overlap; the
// client derives the bench as players minus starters by id.
func enrichMatchups(rawMatchups []model.Matchup, directory model.PlayerDirectory, owners map[int]model.RosterOwner, projections map[string]model.Projection) []model.EnrichedMatchup {
	enriched := make([]model.EnrichedMatchup, 0, len(rawMatchups))
	for _, m := range rawMatchups {
		starters := make([]model.ResolvedPlayer, 0, len(m.Starters))
		for _, pid := range m.Starters {
			starters = append(starters, resolvePlayer(directory, pid, m.PlayersPoints, projections))
		}

		players := make([]model.ResolvedPlayer, 0, len(m.Players))
		for _, pid := range m.Players {
			players = append(players, resolvePlayer(directory, pid, m.PlayersPoints, projections))
		}

		owner := owners[m.RosterID]
		enriched = append(enriched, model.EnrichedMatchup{
			MatchupID:   m.MatchupID,
			RosterID:    m.RosterID,
			TeamName:    owner.TeamName,
			DisplayName: owner.DisplayName,
			Points:      m.Points,
			Starters:    starters,
			Players:     players,
		})
	}
	return enriched
}

func (c *controller) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.EnrichedMatchup, error) {
	// The season is needed to address the projections endpoint, so the
	// state fetch happens first; everything else fans out.
	state, err := c.sleeper.GetState()
	if err != nil {
		return nil, fmt.Errorf("error loading nfl state: %w", err)
	}

	var (
		matchups    []model.Matchup
		users       []model.User
		rosters     []model.Roster
		directory   model.PlayerDirectory
		projections map[string]model.Projection

		matchupErr, userErr, rosterErr, dirErr, projErr error
	)

	wg := &sync.WaitGroup{}
	wg.Add(5)
	go func() {
		defer wg.Done()
		matchups, matchupErr = c.sleeper.GetMatchups(leagueID, week)
	}()
	go func() {
		defer wg.Done()
		users, userErr = c.sleeper.GetUsers(leagueID)
	}()
	go func() {
		defer wg.Done()
		rosters, rosterErr = c.sleeper.GetRosters(leagueID)
	}()
	go func() {
		defer wg.Done()
		directory, dirErr = c.getPlayers(ctx)
	}()
	go func() {
		defer wg.Done()
		projections, projErr = c.sleeper.GetProjections(state.Season, week)
	}()
	wg.Wait()

	for _, err := range []error{matchupErr, userErr, rosterErr, dirErr, projErr} {
		if err != nil {
			return nil, fmt.Errorf("error loading week %d matchup data: %w", week, err)
		}
	}

	owners := resolveOwners(users, rosters)
	return enrichMatchups(matchups, directory, owners, projections), nil
}
