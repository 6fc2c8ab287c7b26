package publisher

import (
	"context"
	"testing"

	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublisher(t *testing.T) (*StreamPublisher, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStreamPublisher(client), client, mr
}

func recordedEvent() livegame.Event {
	return livegame.Event{
		Kind:      livegame.EventActionRecorded,
		SessionID: "s-1",
		GameID:    9,
		PlayerID:  7,
		Action:    models.ThreePointMade,
		Snapshot: &livegame.Snapshot{
			SessionID: "s-1",
			Game:      models.Game{ID: 9, HomeTeamID: 1, AwayTeamID: 2},
			Home:      livegame.TeamBox{TeamID: 1, Totals: models.BoxScore{Points: 3}},
		},
	}
}

func TestPublishAppendsToGameStream(t *testing.T) {
	p, client, _ := newPublisher(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, recordedEvent()))

	entries, err := client.XRange(ctx, "games.live.9", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	values := entries[0].Values
	assert.Equal(t, "action_recorded", values["type"])
	assert.Equal(t, "9", values["game_id"])
	assert.Equal(t, "s-1", values["session_id"])
	assert.Equal(t, "three_point_goal_made", values["action"])
	assert.Contains(t, values["data"], `"session_id":"s-1"`)
}

func TestPublishCachesSnapshot(t *testing.T) {
	p, _, mr := newPublisher(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, recordedEvent()))
	assert.Equal(t, LiveGameTTL, mr.TTL("game:9:live"))

	snap, err := p.ReadLive(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.Home.Totals.Points)

	missing, err := p.ReadLive(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClockEventsAreSkippedAndCloseDropsCache(t *testing.T) {
	p, client, _ := newPublisher(t)
	ctx := context.Background()
	require.NoError(t, p.Publish(ctx, recordedEvent()))

	require.NoError(t, p.Publish(ctx, livegame.Event{Kind: livegame.EventClock, GameID: 9}))
	n, err := client.XLen(ctx, "games.live.9").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, p.Publish(ctx, livegame.Event{Kind: livegame.EventClosed, GameID: 9}))
	snap, err := p.ReadLive(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, snap)
}
