package livegame

import (
	"sort"

	"basketball-league-admin/internal/models"
)

type ClockView struct {
	Elapsed string `json:"elapsed"`
	Seconds int    `json:"seconds"`
	Running bool   `json:"running"`
}

// TeamBox is one side of the live box score: player lines plus their sum.
type TeamBox struct {
	TeamID  int                 `json:"team_id"`
	Name    string              `json:"name"`
	Players []models.PlayerStat `json:"players"`
	Totals  models.BoxScore     `json:"totals"`
}

// Snapshot is the read-only view rendered by the console, the bot and spectators.
type Snapshot struct {
	SessionID        string                `json:"session_id"`
	Game             models.Game           `json:"game"`
	SelectedTeamID   int                   `json:"selected_team_id,omitempty"`
	SelectedPlayerID int                   `json:"selected_player_id,omitempty"`
	Clock            ClockView             `json:"clock"`
	PendingUndo      *models.ActionRequest `json:"pending_undo,omitempty"`
	Busy             bool                  `json:"busy"`
	Home             TeamBox               `json:"home"`
	Away             TeamBox               `json:"away"`
}

func (s *Session) Snapshot() Snapshot {
	elapsed := s.clock.Elapsed()
	running := s.clock.Running()

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.sortedLines()
	snap := Snapshot{
		SessionID:        s.id,
		Game:             s.game,
		SelectedTeamID:   s.teamID,
		SelectedPlayerID: s.playerID,
		Clock: ClockView{
			Elapsed: FormatElapsed(elapsed),
			Seconds: int(elapsed.Seconds()),
			Running: running,
		},
		Busy: s.busy,
		Home: teamBox(s.game, s.game.HomeTeamID, s.game.HomeName(), lines),
		Away: teamBox(s.game, s.game.AwayTeamID, s.game.AwayName(), lines),
	}
	if s.undo != nil {
		pending := *s.undo
		snap.PendingUndo = &pending
	}
	return snap
}

func teamBox(game models.Game, teamID int, name string, lines []models.PlayerStat) TeamBox {
	box := TeamBox{TeamID: teamID, Name: name, Players: []models.PlayerStat{}}
	for _, line := range lines {
		if line.TeamID == teamID {
			box.Players = append(box.Players, line)
		}
	}
	sort.SliceStable(box.Players, func(i, j int) bool {
		return jersey(box.Players[i]) < jersey(box.Players[j])
	})
	box.Totals = Aggregate(lines, game.ID, teamID)
	return box
}

// jersey orders players without a number after numbered ones.
func jersey(line models.PlayerStat) int {
	if line.Player == nil || line.Player.JerseyNumber == nil {
		return 1 << 20
	}
	return *line.Player.JerseyNumber
}
