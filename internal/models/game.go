package models

import (
	"fmt"
	"time"
)

var gameDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Game references a home and an away team; scores stay nil until the backend has them.
type Game struct {
	ID         int    `json:"id,omitempty"`
	LeagueID   int    `json:"league_id,omitempty"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	HomeTeam   *Team  `json:"home_team,omitempty"`
	AwayTeam   *Team  `json:"away_team,omitempty"`
	Date       string `json:"date"`
	Location   string `json:"location,omitempty"`
	Status     string `json:"status,omitempty"`

	HomeScoreQ1 *int `json:"home_score_q1,omitempty"`
	HomeScoreQ2 *int `json:"home_score_q2,omitempty"`
	HomeScoreQ3 *int `json:"home_score_q3,omitempty"`
	HomeScoreQ4 *int `json:"home_score_q4,omitempty"`
	AwayScoreQ1 *int `json:"away_score_q1,omitempty"`
	AwayScoreQ2 *int `json:"away_score_q2,omitempty"`
	AwayScoreQ3 *int `json:"away_score_q3,omitempty"`
	AwayScoreQ4 *int `json:"away_score_q4,omitempty"`
	HomeScore   *int `json:"home_score,omitempty"`
	AwayScore   *int `json:"away_score,omitempty"`
}

func (g Game) StartsAt() (time.Time, error) {
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, g.Date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("game %d: unrecognised date %q", g.ID, g.Date)
}

func (g Game) HomeName() string {
	if g.HomeTeam != nil && g.HomeTeam.Name != "" {
		return g.HomeTeam.Name
	}
	return fmt.Sprintf("Squadra #%d", g.HomeTeamID)
}

func (g Game) AwayName() string {
	if g.AwayTeam != nil && g.AwayTeam.Name != "" {
		return g.AwayTeam.Name
	}
	return fmt.Sprintf("Squadra #%d", g.AwayTeamID)
}

func (g Game) HasTeam(teamID int) bool {
	return teamID != 0 && (teamID == g.HomeTeamID || teamID == g.AwayTeamID)
}

// QuarterScores returns the per-quarter scores of both teams, in period order.
func (g Game) QuarterScores() (home, away [4]*int) {
	home = [4]*int{g.HomeScoreQ1, g.HomeScoreQ2, g.HomeScoreQ3, g.HomeScoreQ4}
	away = [4]*int{g.AwayScoreQ1, g.AwayScoreQ2, g.AwayScoreQ3, g.AwayScoreQ4}
	return home, away
}
