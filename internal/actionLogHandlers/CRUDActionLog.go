package actionloghandlers

import (
	"context"
	"fmt"

	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
)

const (
	KindRecorded  = "recorded"
	KindUndone    = "undone"
	KindTeamStats = "team_stats"
)

// Handler is the operator journal: one row per action recorded or undone and
// per team-stat generation. It never feeds anything back to the backend.
type Handler struct {
	models.Handler
}

func (h *Handler) Publish(ctx context.Context, e livegame.Event) error {
	entry := models.ActionLog{
		SessionID: e.SessionID,
		GameID:    e.GameID,
		TeamID:    e.TeamID,
		PlayerID:  e.PlayerID,
		Action:    string(e.Action),
		CreatedAt: e.At,
	}
	switch e.Kind {
	case livegame.EventActionRecorded:
		entry.Kind = KindRecorded
	case livegame.EventActionUndone:
		entry.Kind = KindUndone
	case livegame.EventTeamStatsGenerated:
		entry.Kind = KindTeamStats
		for _, stat := range e.TeamStats {
			entry.Points += stat.Points
		}
	default:
		return nil
	}
	if e.Line != nil {
		entry.Points = e.Line.Points
	}
	if e.Snapshot != nil {
		entry.ClockSeconds = e.Snapshot.Clock.Seconds
	}

	if err := h.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("journal %s for game %d: %w", entry.Kind, entry.GameID, err)
	}
	return nil
}

// ListByGame returns the journal of a game, oldest first.
func (h *Handler) ListByGame(ctx context.Context, gameID int) ([]models.ActionLog, error) {
	var entries []models.ActionLog
	err := h.DB.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at ASC").Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *Handler) DeleteByGame(ctx context.Context, gameID int) (int64, error) {
	res := h.DB.WithContext(ctx).Where("game_id = ?", gameID).Delete(&models.ActionLog{})
	return res.RowsAffected, res.Error
}
