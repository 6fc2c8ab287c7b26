package gamehandlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"basketball-league-admin/internal/apiclient"
	"basketball-league-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	pages []models.Page[models.Game]
	games map[int]models.Game
	asked []int
}

func (s *stubSource) ListGames(ctx context.Context, opts models.ListOptions) (models.Page[models.Game], error) {
	s.asked = append(s.asked, opts.Page)
	if opts.Page < 1 || opts.Page > len(s.pages) {
		return models.Page[models.Game]{}, nil
	}
	return s.pages[opts.Page-1], nil
}

func (s *stubSource) GetGame(ctx context.Context, gameID int) (models.Game, error) {
	game, ok := s.games[gameID]
	if !ok {
		return models.Game{}, &apiclient.Error{StatusCode: http.StatusNotFound, Method: http.MethodGet, Path: fmt.Sprintf("/games/%d", gameID)}
	}
	return game, nil
}

func TestUpcomingGamesSortedAndLimited(t *testing.T) {
	src := &stubSource{pages: []models.Page[models.Game]{
		{
			Data: []models.Game{
				{ID: 1, Date: "2026-10-01 20:30:00"},
				{ID: 2, Date: "2026-10-25 18:00:00"},
				{ID: 3, Date: "not a date"},
			},
			Meta: models.PageMeta{CurrentPage: 1, LastPage: 2},
		},
		{
			Data: []models.Game{
				{ID: 4, Date: "2026-10-21T20:30:00Z"},
				{ID: 5, Date: "2026-11-02"},
			},
			Meta: models.PageMeta{CurrentPage: 2, LastPage: 2},
		},
	}}
	h := &Handler{API: src}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	games, err := h.UpcomingGames(context.Background(), now, 2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 4, games[0].ID)
	assert.Equal(t, 2, games[1].ID)
	assert.Equal(t, []int{1, 2}, src.asked)
}

func TestGetGameByIDMissingIsNil(t *testing.T) {
	h := &Handler{API: &stubSource{games: map[int]models.Game{7: {ID: 7}}}}

	game, err := h.GetGameByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, game)

	missing, err := h.GetGameByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDescribe(t *testing.T) {
	home, away := 81, 77
	game := models.Game{
		ID:       12,
		HomeTeam: &models.Team{Name: "Virtus"},
		AwayTeam: &models.Team{Name: "Fortitudo"},
		Date:     "2026-10-20 20:30:00",
		Location: "PalaDozza",
	}
	assert.Equal(t, "#12 Virtus - Fortitudo, 20/10 20:30 (PalaDozza)", Describe(game))

	game.HomeScore, game.AwayScore = &home, &away
	game.Location = ""
	assert.Equal(t, "#12 Virtus - Fortitudo, 20/10 20:30 81-77", Describe(game))

	assert.Equal(t, "#3 Squadra #1 - Squadra #2", Describe(models.Game{ID: 3, HomeTeamID: 1, AwayTeamID: 2}))
}
