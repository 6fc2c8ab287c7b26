package livegame

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the open live sessions and fans their events out to sinks.
type Manager struct {
	backend Backend
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
	sinks    []Sink
}

func NewManager(backend Backend, sinks ...Sink) *Manager {
	return &Manager{
		backend:  backend,
		now:      time.Now,
		sessions: make(map[string]*Session),
		sinks:    sinks,
	}
}

func (m *Manager) AddSink(sink Sink) {
	m.mu.Lock()
	m.sinks = append(m.sinks, sink)
	m.mu.Unlock()
}

// Open loads the game and its stat lines and starts a new session. A game
// without lines gets one per rostered player through the bulk initializer.
func (m *Manager) Open(ctx context.Context, gameID int) (*Session, error) {
	game, err := m.backend.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game %d: %w", gameID, err)
	}
	if game.ID == 0 {
		game.ID = gameID
	}

	lines, err := m.backend.ListPlayerStatsByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load stats of game %d: %w", gameID, err)
	}
	if len(lines) == 0 {
		lines, err = m.backend.InitializeGameStats(ctx, gameID)
		if err != nil {
			return nil, fmt.Errorf("initialize stats of game %d: %w", gameID, err)
		}
	}

	s := NewSession(uuid.NewString(), m.backend, game, lines, NewClock(m.now))
	s.now = m.now
	s.emit = m.publish

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.Printf("live session %s opened for game %d (%d lines)", s.id, gameID, len(lines))
	s.publishEvent(ctx, Event{Kind: EventOpened})
	return s, nil
}

func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close stops the session's clock and forgets it.
func (m *Manager) Close(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.clock.Stop()
	s.publishEvent(ctx, Event{Kind: EventClosed})
	log.Printf("live session %s closed", sessionID)
	return nil
}

// Sessions returns the open sessions ordered by game id.
func (m *Manager) Sessions() []*Session {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].game.ID != out[j].game.ID {
			return out[i].game.ID < out[j].game.ID
		}
		return out[i].id < out[j].id
	})
	return out
}

// RunClock publishes a clock event for every running session each interval
// until ctx is done.
func (m *Manager) RunClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, s := range m.Sessions() {
				if s.clock.Running() {
					s.publishEvent(ctx, Event{Kind: EventClock})
				}
			}
		}
	}
}

func (m *Manager) publish(ctx context.Context, e Event) {
	m.mu.RLock()
	sinks := append([]Sink(nil), m.sinks...)
	m.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Publish(ctx, e); err != nil {
			log.Printf("live session %s: publish %s: %v", e.SessionID, e.Kind, err)
		}
	}
}
