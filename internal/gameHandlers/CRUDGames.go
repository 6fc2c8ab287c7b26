package gamehandlers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"basketball-league-admin/internal/apiclient"
	"basketball-league-admin/internal/models"
)

// upcomingScan bounds how many backend pages UpcomingGames walks.
const upcomingScan = 5

type Source interface {
	ListGames(ctx context.Context, opts models.ListOptions) (models.Page[models.Game], error)
	GetGame(ctx context.Context, gameID int) (models.Game, error)
}

type Handler struct {
	API Source
}

func (h *Handler) ListGames(ctx context.Context, page, perPage int) (models.Page[models.Game], error) {
	return h.API.ListGames(ctx, models.ListOptions{Page: page, PerPage: perPage})
}

// UpcomingGames returns games starting after now, soonest first. Games whose
// date cannot be parsed are skipped.
func (h *Handler) UpcomingGames(ctx context.Context, now time.Time, limit int) ([]models.Game, error) {
	type dated struct {
		game models.Game
		at   time.Time
	}
	var upcoming []dated

	for page := 1; page <= upcomingScan; page++ {
		res, err := h.API.ListGames(ctx, models.ListOptions{Page: page, PerPage: 50})
		if err != nil {
			return nil, err
		}
		for _, game := range res.Data {
			at, err := game.StartsAt()
			if err != nil {
				log.Printf("skipping game %d: %v", game.ID, err)
				continue
			}
			if at.After(now) {
				upcoming = append(upcoming, dated{game, at})
			}
		}
		if !res.HasNext() {
			break
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].at.Before(upcoming[j].at) })
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	games := make([]models.Game, 0, len(upcoming))
	for _, u := range upcoming {
		games = append(games, u.game)
	}
	return games, nil
}

// GetGameByID returns nil when the backend has no such game.
func (h *Handler) GetGameByID(ctx context.Context, gameID int) (*models.Game, error) {
	game, err := h.API.GetGame(ctx, gameID)
	if apiclient.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &game, nil
}

// Describe is the one-line label used in lists: "#12 Virtus - Fortitudo, 20/10 20:30 (PalaDozza)".
func Describe(game models.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s - %s", game.ID, game.HomeName(), game.AwayName())
	if at, err := game.StartsAt(); err == nil {
		fmt.Fprintf(&b, ", %s", at.Format("02/01 15:04"))
	}
	if game.Location != "" {
		fmt.Fprintf(&b, " (%s)", game.Location)
	}
	if game.HomeScore != nil && game.AwayScore != nil {
		fmt.Fprintf(&b, " %d-%d", *game.HomeScore, *game.AwayScore)
	}
	return b.String()
}
