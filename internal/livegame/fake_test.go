package livegame

import (
	"context"
	"errors"
	"sync"

	"basketball-league-admin/internal/models"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend is a stub league API that applies actions to in-memory lines.
type fakeBackend struct {
	mu    sync.Mutex
	game  models.Game
	lines map[int]models.PlayerStat
	stats map[int]models.GameStat
	calls []string

	recordErr error
	undoErr   error
	createErr map[int]error
	findErr   error
	block     chan struct{}
	started   chan struct{}
	nextStat  int
}

func newFakeBackend(game models.Game, lines ...models.PlayerStat) *fakeBackend {
	f := &fakeBackend{
		game:      game,
		lines:     make(map[int]models.PlayerStat),
		stats:     make(map[int]models.GameStat),
		createErr: make(map[int]error),
		nextStat:  100,
	}
	for _, line := range lines {
		f.lines[line.PlayerID] = line
	}
	return f
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) GetGame(ctx context.Context, gameID int) (models.Game, error) {
	f.record("get_game")
	if gameID != f.game.ID {
		return models.Game{}, errBackend
	}
	return f.game, nil
}

func (f *fakeBackend) ListPlayerStatsByGame(ctx context.Context, gameID int) ([]models.PlayerStat, error) {
	f.record("list_lines")
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PlayerStat
	for _, line := range f.lines {
		out = append(out, line)
	}
	return out, nil
}

func (f *fakeBackend) InitializeGameStats(ctx context.Context, gameID int) ([]models.PlayerStat, error) {
	f.record("initialize")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, team := range []*models.Team{f.game.HomeTeam, f.game.AwayTeam} {
		if team == nil {
			continue
		}
		for _, p := range team.Players {
			f.lines[p.ID] = models.PlayerStat{GameID: gameID, TeamID: team.ID, PlayerID: p.ID}
		}
	}
	var out []models.PlayerStat
	for _, line := range f.lines {
		out = append(out, line)
	}
	return out, nil
}

func (f *fakeBackend) InitializePlayerStat(ctx context.Context, gameID, teamID, playerID int) (models.PlayerStat, error) {
	f.record("initialize_single")
	f.mu.Lock()
	defer f.mu.Unlock()
	line := models.PlayerStat{GameID: gameID, TeamID: teamID, PlayerID: playerID}
	f.lines[playerID] = line
	return line, nil
}

func apply(b *models.BoxScore, action models.Action, sign int) {
	switch action {
	case models.TwoPointMade:
		b.Points += 2 * sign
		b.TwoPointsMade += sign
		b.TwoPointsAttempted += sign
	case models.TwoPointMissed:
		b.TwoPointsAttempted += sign
	case models.ThreePointMade:
		b.Points += 3 * sign
		b.ThreePointsMade += sign
		b.ThreePointsAttempted += sign
	case models.ThreePointMissed:
		b.ThreePointsAttempted += sign
	case models.FreeThrowMade:
		b.Points += sign
		b.FreeThrowsMade += sign
		b.FreeThrowsAttempted += sign
	case models.FreeThrowMissed:
		b.FreeThrowsAttempted += sign
	case models.OffensiveRebound:
		b.OffensiveRebounds += sign
		b.TotalRebounds += sign
	case models.DefensiveRebound:
		b.DefensiveRebounds += sign
		b.TotalRebounds += sign
	case models.Assist:
		b.Assists += sign
	case models.Turnover:
		b.Turnovers += sign
	case models.Steal:
		b.Steals += sign
	case models.Block:
		b.Blocks += sign
	case models.PersonalFoul:
		b.PersonalFouls += sign
	}
}

func (f *fakeBackend) change(name string, req models.ActionRequest, sign int, fail error) (models.PlayerStat, error) {
	f.record(name)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if fail != nil {
		return models.PlayerStat{}, fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	line := f.lines[req.PlayerID]
	line.GameID = req.GameID
	line.PlayerID = req.PlayerID
	apply(&line.BoxScore, req.Action, sign)
	f.lines[req.PlayerID] = line
	return line, nil
}

func (f *fakeBackend) RecordAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error) {
	return f.change("record:"+string(req.Action), req, 1, f.recordErr)
}

func (f *fakeBackend) UndoAction(ctx context.Context, req models.ActionRequest) (models.PlayerStat, error) {
	return f.change("undo:"+string(req.Action), req, -1, f.undoErr)
}

func (f *fakeBackend) FindGameStat(ctx context.Context, gameID, teamID int) (*models.GameStat, error) {
	f.record("find_stat")
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stat := range f.stats {
		if stat.GameID == gameID && stat.TeamID == teamID {
			found := stat
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBackend) CreateGameStat(ctx context.Context, stat models.GameStat) (models.GameStat, error) {
	f.record("create_stat")
	if err := f.createErr[stat.TeamID]; err != nil {
		return models.GameStat{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextStat++
	stat.ID = f.nextStat
	f.stats[stat.ID] = stat
	return stat, nil
}

func (f *fakeBackend) UpdateGameStat(ctx context.Context, id int, stat models.GameStat) (models.GameStat, error) {
	f.record("update_stat")
	f.mu.Lock()
	defer f.mu.Unlock()
	stat.ID = id
	f.stats[id] = stat
	return stat, nil
}

func intPtr(v int) *int { return &v }

func testGame() models.Game {
	return models.Game{
		ID:         9,
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeTeam: &models.Team{ID: 1, Name: "Virtus", Players: []models.Player{
			{ID: 7, FirstName: "Mario", LastName: "Rossi", JerseyNumber: intPtr(7)},
			{ID: 8, FirstName: "Luca", LastName: "Bianchi", JerseyNumber: intPtr(4)},
		}},
		AwayTeam: &models.Team{ID: 2, Name: "Fortitudo", Players: []models.Player{
			{ID: 21, FirstName: "Paolo", LastName: "Verdi", JerseyNumber: intPtr(11)},
		}},
		Date: "2026-10-20 20:30:00",
	}
}
