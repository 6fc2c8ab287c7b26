// Package livegame keeps the operator's view of a game being scored: the
// selected team and player, every player's stat line as last returned by the
// backend, a one-slot undo and the running clock.
package livegame

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"basketball-league-admin/internal/models"
)

var (
	ErrNoPlayerSelected = errors.New("no player selected")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrBusy             = errors.New("a request is already in flight")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownTeam      = errors.New("team does not play this game")
	ErrWrongTeam        = errors.New("player is not on that team")
	ErrSessionNotFound  = errors.New("live session not found")
)

// Backend is the subset of the league API a live session talks to.
type Backend interface {
	GetGame(ctx context.Context, gameID int) (models.Game, error)
	ListPlayerStatsByGame(ctx context.Context, gameID int) ([]models.PlayerStat, error)
	InitializeGameStats(ctx context.Context, gameID int) ([]models.PlayerStat, error)
	InitializePlayerStat(ctx context.Context, gameID, teamID, playerID int) (models.PlayerStat, error)
	RecordAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error)
	UndoAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error)
	FindGameStat(ctx context.Context, gameID, teamID int) (*models.GameStat, error)
	CreateGameStat(ctx context.Context, stat models.GameStat) (models.GameStat, error)
	UpdateGameStat(ctx context.Context, id int, stat models.GameStat) (models.GameStat, error)
}

type Session struct {
	mu       sync.Mutex
	id       string
	backend  Backend
	game     models.Game
	lines    map[int]models.PlayerStat
	teamID   int
	playerID int
	undo     *models.ActionRequest
	busy     bool
	clock    *Clock
	now      func() time.Time
	emit     func(ctx context.Context, e Event)
}

// NewSession builds a session over already loaded lines. Lines of other
// games are ignored.
func NewSession(id string, backend Backend, game models.Game, lines []models.PlayerStat, clock *Clock) *Session {
	if clock == nil {
		clock = NewClock(nil)
	}
	s := &Session{
		id:      id,
		backend: backend,
		game:    game,
		lines:   make(map[int]models.PlayerStat, len(lines)),
		clock:   clock,
		now:     time.Now,
	}
	for _, line := range lines {
		if line.GameID == game.ID {
			s.lines[line.PlayerID] = line
		}
	}
	return s
}

// ID is the uuid the manager registered the session under.
func (s *Session) ID() string { return s.id }

// Game returns the game as loaded when the session opened.
func (s *Session) Game() models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// Clock returns the session's clock. It is never nil.
func (s *Session) Clock() *Clock { return s.clock }

// SelectTeam switches the active team and clears the player selection.
func (s *Session) SelectTeam(teamID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.game.HasTeam(teamID) {
		return ErrUnknownTeam
	}
	if s.teamID != teamID {
		s.playerID = 0
	}
	s.teamID = teamID
	return nil
}

// SelectPlayer makes playerID the target of the next action. The player
// must belong to teamID, by roster when the game carries one and by the
// existing stat line otherwise. A player without a stat line for this game
// gets one through initialize-single.
func (s *Session) SelectPlayer(ctx context.Context, teamID, playerID int) error {
	if playerID <= 0 {
		return ErrNoPlayerSelected
	}

	s.mu.Lock()
	if !s.game.HasTeam(teamID) {
		s.mu.Unlock()
		return ErrUnknownTeam
	}
	line, known := s.lines[playerID]
	if known && line.TeamID != 0 && line.TeamID != teamID {
		s.mu.Unlock()
		return ErrWrongTeam
	}
	if team := s.rosterOf(teamID); team != nil && len(team.Players) > 0 && !team.HasPlayer(playerID) {
		s.mu.Unlock()
		return ErrWrongTeam
	}
	gameID := s.game.ID
	s.mu.Unlock()

	if !known {
		created, err := s.backend.InitializePlayerStat(ctx, gameID, teamID, playerID)
		if err != nil {
			return fmt.Errorf("initialize player %d: %w", playerID, err)
		}
		if created.PlayerID == 0 {
			created.PlayerID = playerID
		}
		if created.TeamID == 0 {
			created.TeamID = teamID
		}
		s.mu.Lock()
		if _, exists := s.lines[playerID]; !exists {
			s.lines[playerID] = created
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.teamID = teamID
	s.playerID = playerID
	s.mu.Unlock()
	return nil
}

func (s *Session) rosterOf(teamID int) *models.Team {
	if teamID == s.game.HomeTeamID {
		return s.game.HomeTeam
	}
	return s.game.AwayTeam
}

// begin marks the session busy; the caller must call end.
func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// store replaces one player's line with the backend's version, keeping the
// embedded player and team when the response omits them.
func (s *Session) store(playerID int, line models.PlayerStat) models.PlayerStat {
	prev := s.lines[playerID]
	if line.PlayerID == 0 {
		line.PlayerID = playerID
	}
	if line.GameID == 0 {
		line.GameID = s.game.ID
	}
	if line.TeamID == 0 {
		line.TeamID = prev.TeamID
	}
	if line.Player == nil {
		line.Player = prev.Player
	}
	s.lines[playerID] = line
	return line
}

// Record sends action for the selected player. On success the player's line
// is replaced and the action becomes the only undoable one. On failure the
// session is left exactly as it was.
func (s *Session) Record(ctx context.Context, action models.Action) (models.PlayerStat, error) {
	if !action.Valid() {
		return models.PlayerStat{}, ErrUnknownAction
	}
	if err := s.begin(); err != nil {
		return models.PlayerStat{}, err
	}
	req, line, err := s.record(ctx, action)
	s.end()
	if err != nil {
		return models.PlayerStat{}, err
	}

	s.publish(ctx, EventActionRecorded, req, &line)
	return line, nil
}

// record runs with the session busy, so the selection it reads and the slot
// it writes cannot interleave with another record or undo.
func (s *Session) record(ctx context.Context, action models.Action) (models.ActionRequest, models.PlayerStat, error) {
	s.mu.Lock()
	if s.playerID == 0 {
		s.mu.Unlock()
		return models.ActionRequest{}, models.PlayerStat{}, ErrNoPlayerSelected
	}
	req := models.ActionRequest{GameID: s.game.ID, PlayerID: s.playerID, Action: action}
	s.mu.Unlock()

	line, err := s.backend.RecordAction(ctx, req)
	if err != nil {
		return req, models.PlayerStat{}, fmt.Errorf("record %s: %w", action, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	line = s.store(req.PlayerID, line)
	pending := req
	s.undo = &pending
	return req, line, nil
}

// Undo reverts the last recorded action and returns the request it sent.
// Without a pending action no request is made. A failed undo keeps the
// slot so it can be retried.
func (s *Session) Undo(ctx context.Context) (models.ActionRequest, models.PlayerStat, error) {
	if err := s.begin(); err != nil {
		return models.ActionRequest{}, models.PlayerStat{}, err
	}
	req, line, err := s.undoLast(ctx)
	s.end()
	if err != nil {
		return req, models.PlayerStat{}, err
	}

	s.publish(ctx, EventActionUndone, req, &line)
	return req, line, nil
}

func (s *Session) undoLast(ctx context.Context) (models.ActionRequest, models.PlayerStat, error) {
	s.mu.Lock()
	if s.undo == nil {
		s.mu.Unlock()
		return models.ActionRequest{}, models.PlayerStat{}, ErrNothingToUndo
	}
	req := *s.undo
	s.mu.Unlock()

	line, err := s.backend.UndoAction(ctx, req)
	if err != nil {
		return req, models.PlayerStat{}, fmt.Errorf("undo %s: %w", req.Action, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	line = s.store(req.PlayerID, line)
	s.undo = nil
	return req, line, nil
}

// GenerateTeamStats aggregates the current lines and stores both team box scores.
func (s *Session) GenerateTeamStats(ctx context.Context) ([]models.GameStat, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	game := s.Game()
	saved, err := GenerateTeamStats(ctx, s.backend, game, s.Lines())
	s.end()

	if len(saved) > 0 {
		s.publishEvent(ctx, Event{Kind: EventTeamStatsGenerated, TeamStats: saved})
	}
	return saved, err
}

// ToggleClock starts or stops the clock and reports whether it now runs.
func (s *Session) ToggleClock(ctx context.Context) bool {
	running := s.clock.Toggle()
	s.publishEvent(ctx, Event{Kind: EventClock})
	return running
}

func (s *Session) ResetClock(ctx context.Context) {
	s.clock.Reset()
	s.publishEvent(ctx, Event{Kind: EventClock})
}

// CanUndo reports whether a recorded action is waiting in the undo slot.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// PendingUndo returns the request Undo would revert.
func (s *Session) PendingUndo() (models.ActionRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.undo == nil {
		return models.ActionRequest{}, false
	}
	return *s.undo, true
}

// Busy reports whether a backend call is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Selection returns the selected team and player; 0 means none.
func (s *Session) Selection() (teamID, playerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamID, s.playerID
}

// Line returns the last known stat line of playerID.
func (s *Session) Line(playerID int) (models.PlayerStat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[playerID]
	return line, ok
}

// Lines returns every known line ordered by player id.
func (s *Session) Lines() []models.PlayerStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLines()
}

func (s *Session) sortedLines() []models.PlayerStat {
	lines := make([]models.PlayerStat, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].PlayerID < lines[j].PlayerID })
	return lines
}

func (s *Session) publish(ctx context.Context, kind EventKind, req models.ActionRequest, line *models.PlayerStat) {
	s.publishEvent(ctx, Event{
		Kind:     kind,
		TeamID:   line.TeamID,
		PlayerID: req.PlayerID,
		Action:   req.Action,
		Line:     line,
	})
}

func (s *Session) publishEvent(ctx context.Context, e Event) {
	if s.emit == nil {
		return
	}
	snap := s.Snapshot()
	e.SessionID = s.id
	e.GameID = snap.Game.ID
	e.Snapshot = &snap
	e.At = s.now()
	s.emit(ctx, e)
}
