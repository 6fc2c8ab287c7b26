package teamhandlers

import (
	"context"
	"fmt"
	"sort"

	"basketball-league-admin/internal/models"
)

type Source interface {
	GetTeam(ctx context.Context, teamID int) (models.Team, error)
}

type Handler struct {
	API Source
}

// Roster holds both sides of a game with their players.
type Roster struct {
	Home models.Team `json:"home"`
	Away models.Team `json:"away"`
}

// Roster fetches the home and away teams with their players, ordered by jersey number.
func (h *Handler) Roster(ctx context.Context, game models.Game) (Roster, error) {
	home, err := h.team(ctx, game.HomeTeamID)
	if err != nil {
		return Roster{}, err
	}
	away, err := h.team(ctx, game.AwayTeamID)
	if err != nil {
		return Roster{}, err
	}
	return Roster{Home: home, Away: away}, nil
}

func (h *Handler) team(ctx context.Context, teamID int) (models.Team, error) {
	team, err := h.API.GetTeam(ctx, teamID)
	if err != nil {
		return models.Team{}, fmt.Errorf("load team %d: %w", teamID, err)
	}
	if team.ID == 0 {
		team.ID = teamID
	}
	sort.SliceStable(team.Players, func(i, j int) bool {
		return jersey(team.Players[i]) < jersey(team.Players[j])
	})
	return team, nil
}

func jersey(p models.Player) int {
	if p.JerseyNumber == nil {
		return 1 << 20
	}
	return *p.JerseyNumber
}

// Team returns the side of the roster with teamID.
func (r Roster) Team(teamID int) (models.Team, bool) {
	switch teamID {
	case r.Home.ID:
		return r.Home, true
	case r.Away.ID:
		return r.Away, true
	}
	return models.Team{}, false
}

func (r Roster) PlayerByID(playerID int) (models.Player, int, bool) {
	if p, ok := r.Home.PlayerByID(playerID); ok {
		return p, r.Home.ID, true
	}
	if p, ok := r.Away.PlayerByID(playerID); ok {
		return p, r.Away.ID, true
	}
	return models.Player{}, 0, false
}
