package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"basketball-league-admin/internal/livegame"

	"github.com/redis/go-redis/v9"
)

// LiveGameTTL bounds how long a box score stays cached after the last event.
const LiveGameTTL = 2 * time.Hour

func StreamKey(gameID int) string { return fmt.Sprintf("games.live.%d", gameID) }

func LiveKey(gameID int) string { return fmt.Sprintf("game:%d:live", gameID) }

// StreamPublisher mirrors live session events to a per-game Redis stream
// and keeps the latest snapshot of each game cached.
type StreamPublisher struct {
	client *redis.Client
}

func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{client: client}
}

func (p *StreamPublisher) Publish(ctx context.Context, e livegame.Event) error {
	switch e.Kind {
	case livegame.EventClock:
		// ticks are only interesting to connected spectators
		return nil
	case livegame.EventClosed:
		return p.client.Del(ctx, LiveKey(e.GameID)).Err()
	}

	data, err := json.Marshal(e.Snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	pipe := p.client.Pipeline()
	pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(e.GameID),
		Values: map[string]interface{}{
			"type":       string(e.Kind),
			"game_id":    e.GameID,
			"session_id": e.SessionID,
			"player_id":  e.PlayerID,
			"action":     string(e.Action),
			"data":       string(data),
		},
	})
	if e.Snapshot != nil {
		pipe.Set(ctx, LiveKey(e.GameID), data, LiveGameTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publishing %s for game %d: %w", e.Kind, e.GameID, err)
	}
	return nil
}

// ReadLive returns the cached snapshot of a game, or nil when none is cached.
func (p *StreamPublisher) ReadLive(ctx context.Context, gameID int) (*livegame.Snapshot, error) {
	data, err := p.client.Get(ctx, LiveKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap livegame.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return &snap, nil
}
