package livegame

import (
	"context"
	"time"

	"basketball-league-admin/internal/models"
)

type EventKind string

const (
	EventOpened             EventKind = "opened"
	EventActionRecorded     EventKind = "action_recorded"
	EventActionUndone       EventKind = "action_undone"
	EventTeamStatsGenerated EventKind = "team_stats_generated"
	EventClock              EventKind = "clock"
	EventClosed             EventKind = "closed"
)

// Event describes something that happened in a live session after it happened.
type Event struct {
	Kind      EventKind          `json:"kind"`
	SessionID string             `json:"session_id"`
	GameID    int                `json:"game_id"`
	TeamID    int                `json:"team_id,omitempty"`
	PlayerID  int                `json:"player_id,omitempty"`
	Action    models.Action      `json:"action,omitempty"`
	Line      *models.PlayerStat `json:"line,omitempty"`
	TeamStats []models.GameStat  `json:"team_stats,omitempty"`
	Snapshot  *Snapshot          `json:"snapshot,omitempty"`
	At        time.Time          `json:"at"`
}

// Sink receives session events. A failing sink is logged and never affects
// the session.
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

type SinkFunc func(ctx context.Context, e Event) error

func (f SinkFunc) Publish(ctx context.Context, e Event) error {
	return f(ctx, e)
}
