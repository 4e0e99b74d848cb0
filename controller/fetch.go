package controller

import (
	"fmt"
	"sync"

	"github.com/abalcs/sleeper-app/model"
)

// fetchUsersAndRosters loads the two league membership lists
// concurrently. Both are small and always read fresh.
func (c *controller) fetchUsersAndRosters(leagueID string) ([]model.User, []model.Roster, error) {
	var (
		users     []model.User
		rosters   []model.Roster
		userErr   error
		rosterErr error
	)

	wg := &sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		users, userErr = c.sleeper.GetUsers(leagueID)
	}()
	go func() {
		defer wg.Done()
		rosters, rosterErr = c.sleeper.GetRosters(leagueID)
	}()
	wg.Wait()

	if userErr != nil {
		return nil, nil, fmt.Errorf("error loading league users: %w", userErr)
	}
	if rosterErr != nil {
		return nil, nil, fmt.Errorf("error loading league rosters: %w", rosterErr)
	}
	return users, rosters, nil
}
