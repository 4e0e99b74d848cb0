package controller

import "github.com/abalcs/sleeper-app/model"

// resolveOwners joins every roster to the user whose user_id matches
// the roster's owner_id. A roster without a matching user gets the
// documented placeholder names instead of an error, so a half-configured
// league still renders.
func resolveOwners(users []model.User, rosters []model.Roster) map[int]model.RosterOwner {
	usersByID := make(map[string]model.User, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}

	owners := make(map[int]model.RosterOwner, len(rosters))
	for _, r := range rosters {
		owner := model.RosterOwner{
			TeamName:    model.UnknownTeamName,
			DisplayName: model.UnknownDisplayName,
		}
		if u, ok := usersByID[r.OwnerID]; ok {
			owner.OwnerID = u.UserID
			if u.DisplayName != "" {
				owner.DisplayName = u.DisplayName
			}
			if teamName := u.TeamName(); teamName != "" {
				owner.TeamName = teamName
			}
		}
		owners[r.RosterID] = owner
	}
	return owners
}
