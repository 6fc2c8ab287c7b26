// Package validation runs the client-side form checks before a record is
// submitted to the backend. Messages are the Italian strings shown next to
// the offending field.
package validation

import (
	"sort"
	"strings"

	"basketball-league-admin/internal/models"
)

const (
	MsgRequired    = "Il campo è obbligatorio."
	MsgNegative    = "Il valore non può essere negativo."
	MsgOutOfRange  = "Il valore è fuori dall'intervallo consentito."
	MsgMadeExceeds = "I tiri realizzati non possono superare quelli tentati."
	MsgReboundsSum = "La somma dei rimbalzi offensivi e difensivi deve essere uguale al totale."
	MsgSameTeams   = "La squadra di casa e quella ospite devono essere diverse."
	MaxScore       = 250
)

// Errors maps a field name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Add keeps the first message recorded for a field.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// First returns the alphabetically first field and its message.
func (e Errors) First() (string, string) {
	first := ""
	for field := range e {
		if first == "" || field < first {
			first = field
		}
	}
	return first, e[first]
}

// Err returns nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Shooting checks one made/attempted pair. 0/0 is valid.
func Shooting(made, attempted int) string {
	if made < 0 || attempted < 0 {
		return MsgNegative
	}
	if made > attempted {
		return MsgMadeExceeds
	}
	return ""
}

// Rebounds only checks the sum when all three values were provided.
func Rebounds(offensive, defensive, total *int) string {
	for _, v := range []*int{offensive, defensive, total} {
		if v != nil && *v < 0 {
			return MsgNegative
		}
	}
	if offensive == nil || defensive == nil || total == nil {
		return ""
	}
	if *offensive+*defensive != *total {
		return MsgReboundsSum
	}
	return ""
}

func Range(value, lo, hi int) string {
	if value < lo || value > hi {
		return MsgOutOfRange
	}
	return ""
}

func Required(id int) string {
	if id <= 0 {
		return MsgRequired
	}
	return ""
}

func check(errs Errors, field, message string) {
	if message != "" {
		errs.Add(field, message)
	}
}

func boxScore(errs Errors, b models.BoxScore) {
	counters := map[string]int{
		"points":             b.Points,
		"offensive_rebounds": b.OffensiveRebounds,
		"defensive_rebounds": b.DefensiveRebounds,
		"total_rebounds":     b.TotalRebounds,
		"assists":            b.Assists,
		"turnovers":          b.Turnovers,
		"steals":             b.Steals,
		"blocks":             b.Blocks,
		"personal_fouls":     b.PersonalFouls,
	}
	for field, value := range counters {
		if value < 0 {
			errs.Add(field, MsgNegative)
		}
	}

	check(errs, "two_points_made", Shooting(b.TwoPointsMade, b.TwoPointsAttempted))
	check(errs, "three_points_made", Shooting(b.ThreePointsMade, b.ThreePointsAttempted))
	check(errs, "free_throws_made", Shooting(b.FreeThrowsMade, b.FreeThrowsAttempted))
	check(errs, "field_goals_made", Shooting(b.FieldGoalsMade, b.FieldGoalsAttempted))
	check(errs, "total_rebounds", Rebounds(&b.OffensiveRebounds, &b.DefensiveRebounds, &b.TotalRebounds))
}

func GameStat(s models.GameStat) error {
	errs := Errors{}
	check(errs, "game_id", Required(s.GameID))
	check(errs, "team_id", Required(s.TeamID))
	boxScore(errs, s.BoxScore)
	return errs.Err()
}

func PlayerStat(s models.PlayerStat) error {
	errs := Errors{}
	check(errs, "game_id", Required(s.GameID))
	check(errs, "player_id", Required(s.PlayerID))
	check(errs, "team_id", Required(s.TeamID))
	if s.Minutes != nil {
		check(errs, "minutes", Range(*s.Minutes, 0, 60))
	}
	boxScore(errs, s.BoxScore)
	return errs.Err()
}

func Game(g models.Game) error {
	errs := Errors{}
	check(errs, "home_team_id", Required(g.HomeTeamID))
	check(errs, "away_team_id", Required(g.AwayTeamID))
	if g.HomeTeamID > 0 && g.HomeTeamID == g.AwayTeamID {
		errs.Add("away_team_id", MsgSameTeams)
	}
	if strings.TrimSpace(g.Date) == "" {
		errs.Add("date", MsgRequired)
	}

	home, away := g.QuarterScores()
	scores := map[string]*int{
		"home_score_q1": home[0], "home_score_q2": home[1], "home_score_q3": home[2], "home_score_q4": home[3],
		"away_score_q1": away[0], "away_score_q2": away[1], "away_score_q3": away[2], "away_score_q4": away[3],
		"home_score": g.HomeScore, "away_score": g.AwayScore,
	}
	for field, score := range scores {
		if score != nil {
			check(errs, field, Range(*score, 0, MaxScore))
		}
	}
	return errs.Err()
}
