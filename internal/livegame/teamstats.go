package livegame

import (
	"context"
	"fmt"

	"basketball-league-admin/internal/models"
)

// Aggregate sums the lines that belong to gameID and teamID. Field goals
// fall back to 2PT+3PT when no line carries them.
func Aggregate(lines []models.PlayerStat, gameID, teamID int) models.BoxScore {
	var total models.BoxScore
	for _, line := range lines {
		if line.GameID != gameID || line.TeamID != teamID {
			continue
		}
		total.Add(line.BoxScore)
	}
	if total.FieldGoalsAttempted == 0 && total.FieldGoalsMade == 0 {
		total.FieldGoalsMade = total.TwoPointsMade + total.ThreePointsMade
		total.FieldGoalsAttempted = total.TwoPointsAttempted + total.ThreePointsAttempted
	}
	return total
}

// GenerateTeamStats stores one team box score per side, home first. Each
// side is an independent create-or-update; the first failure stops the run
// and the sides already saved are returned with the error.
func GenerateTeamStats(ctx context.Context, backend Backend, game models.Game, lines []models.PlayerStat) ([]models.GameStat, error) {
	saved := make([]models.GameStat, 0, 2)
	for _, teamID := range []int{game.HomeTeamID, game.AwayTeamID} {
		stat := models.GameStat{
			GameID:   game.ID,
			TeamID:   teamID,
			BoxScore: Aggregate(lines, game.ID, teamID),
		}

		existing, err := backend.FindGameStat(ctx, game.ID, teamID)
		if err != nil {
			return saved, fmt.Errorf("find team %d stats: %w", teamID, err)
		}

		var out models.GameStat
		if existing != nil {
			out, err = backend.UpdateGameStat(ctx, existing.ID, stat)
		} else {
			out, err = backend.CreateGameStat(ctx, stat)
		}
		if err != nil {
			return saved, fmt.Errorf("save team %d stats: %w", teamID, err)
		}
		saved = append(saved, out)
	}
	return saved, nil
}
