package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"basketball-league-admin/internal/models"
)

// RecordAction sends one action and returns the player's updated line.
func (c *Client) RecordAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error) {
	return getData[models.PlayerStat](ctx, c, http.MethodPost, "/player-stats/record-action", nil, req)
}

// UndoAction reverts one previously recorded action.
func (c *Client) UndoAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error) {
	return getData[models.PlayerStat](ctx, c, http.MethodPost, "/player-stats/undo-action", nil, req)
}

func (c *Client) ListPlayerStatsByGame(ctx context.Context, gameID int) ([]models.PlayerStat, error) {
	return getData[[]models.PlayerStat](ctx, c, http.MethodGet, "/player-stats/game/"+strconv.Itoa(gameID), nil, nil)
}

// InitializeGameStats creates an empty line for every player rostered in the game.
func (c *Client) InitializeGameStats(ctx context.Context, gameID int) ([]models.PlayerStat, error) {
	body := map[string]int{"game_id": gameID}
	return getData[[]models.PlayerStat](ctx, c, http.MethodPost, "/player-stats/initialize", nil, body)
}

func (c *Client) InitializePlayerStat(ctx context.Context, gameID, teamID, playerID int) (models.PlayerStat, error) {
	body := map[string]int{"game_id": gameID, "team_id": teamID, "player_id": playerID}
	return getData[models.PlayerStat](ctx, c, http.MethodPost, "/player-stats/initialize-single", nil, body)
}
