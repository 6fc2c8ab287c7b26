package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"basketball-league-admin/internal/models"
)

func (c *Client) GetGame(ctx context.Context, gameID int) (models.Game, error) {
	return c.Games.Get(ctx, gameID)
}

func (c *Client) GetTeam(ctx context.Context, teamID int) (models.Team, error) {
	return c.Teams.Get(ctx, teamID)
}

func (c *Client) ListGames(ctx context.Context, opts models.ListOptions) (models.Page[models.Game], error) {
	return c.Games.List(ctx, opts)
}

// FindGameStat returns the team box score already stored for a game, or nil.
func (c *Client) FindGameStat(ctx context.Context, gameID, teamID int) (*models.GameStat, error) {
	page, err := c.GameStats.List(ctx, models.ListOptions{
		PerPage: 1,
		Filters: map[string]string{
			"game_id": strconv.Itoa(gameID),
			"team_id": strconv.Itoa(teamID),
		},
	})
	if err != nil {
		return nil, err
	}
	for _, stat := range page.Data {
		if stat.GameID == gameID && stat.TeamID == teamID {
			return &stat, nil
		}
	}
	return nil, nil
}

func (c *Client) CreateGameStat(ctx context.Context, stat models.GameStat) (models.GameStat, error) {
	return c.GameStats.Create(ctx, stat)
}

func (c *Client) UpdateGameStat(ctx context.Context, id int, stat models.GameStat) (models.GameStat, error) {
	return c.GameStats.Update(ctx, id, stat)
}

func pdfPath(statID int, suffix string) string {
	return "/game-stats/" + strconv.Itoa(statID) + "/pdf" + suffix
}

// GenerateGameStatPDF asks the backend to (re)build the stored PDF report.
func (c *Client) GenerateGameStatPDF(ctx context.Context, statID int) (string, error) {
	var out messageBody
	err := c.do(ctx, http.MethodPost, pdfPath(statID, ""), nil, nil, &out)
	return out.Message, err
}

func (c *Client) DownloadGameStatPDF(ctx context.Context, statID int) ([]byte, error) {
	return c.send(ctx, http.MethodGet, pdfPath(statID, "/download"), nil, nil)
}

func (c *Client) StreamGameStatPDF(ctx context.Context, statID int) ([]byte, error) {
	return c.send(ctx, http.MethodGet, pdfPath(statID, "/stream"), nil, nil)
}
