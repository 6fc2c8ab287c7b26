package models

// BoxScore holds the counting stats shared by team and player lines.
type BoxScore struct {
	Points               int `json:"points"`
	TwoPointsMade        int `json:"two_points_made"`
	TwoPointsAttempted   int `json:"two_points_attempted"`
	ThreePointsMade      int `json:"three_points_made"`
	ThreePointsAttempted int `json:"three_points_attempted"`
	FreeThrowsMade       int `json:"free_throws_made"`
	FreeThrowsAttempted  int `json:"free_throws_attempted"`
	FieldGoalsMade       int `json:"field_goals_made"`
	FieldGoalsAttempted  int `json:"field_goals_attempted"`
	OffensiveRebounds    int `json:"offensive_rebounds"`
	DefensiveRebounds    int `json:"defensive_rebounds"`
	TotalRebounds        int `json:"total_rebounds"`
	Assists              int `json:"assists"`
	Turnovers            int `json:"turnovers"`
	Steals               int `json:"steals"`
	Blocks               int `json:"blocks"`
	PersonalFouls        int `json:"personal_fouls"`
}

func (b *BoxScore) Add(o BoxScore) {
	b.Points += o.Points
	b.TwoPointsMade += o.TwoPointsMade
	b.TwoPointsAttempted += o.TwoPointsAttempted
	b.ThreePointsMade += o.ThreePointsMade
	b.ThreePointsAttempted += o.ThreePointsAttempted
	b.FreeThrowsMade += o.FreeThrowsMade
	b.FreeThrowsAttempted += o.FreeThrowsAttempted
	b.FieldGoalsMade += o.FieldGoalsMade
	b.FieldGoalsAttempted += o.FieldGoalsAttempted
	b.OffensiveRebounds += o.OffensiveRebounds
	b.DefensiveRebounds += o.DefensiveRebounds
	b.TotalRebounds += o.TotalRebounds
	b.Assists += o.Assists
	b.Turnovers += o.Turnovers
	b.Steals += o.Steals
	b.Blocks += o.Blocks
	b.PersonalFouls += o.PersonalFouls
}

// Percentages are computed by the backend; the client only displays them.
type Percentages struct {
	TwoPointsPercentage   *float64 `json:"two_points_percentage,omitempty"`
	ThreePointsPercentage *float64 `json:"three_points_percentage,omitempty"`
	FreeThrowsPercentage  *float64 `json:"free_throws_percentage,omitempty"`
	FieldGoalsPercentage  *float64 `json:"field_goals_percentage,omitempty"`
}

// GameStat is a team-level box score for one game.
type GameStat struct {
	ID     int   `json:"id,omitempty"`
	GameID int   `json:"game_id"`
	TeamID int   `json:"team_id"`
	Team   *Team `json:"team,omitempty"`
	BoxScore
	Percentages
	Efficiency *float64 `json:"efficiency,omitempty"`
}

// PlayerStat is a player-level box score for one game.
type PlayerStat struct {
	ID       int     `json:"id,omitempty"`
	GameID   int     `json:"game_id"`
	PlayerID int     `json:"player_id"`
	TeamID   int     `json:"team_id"`
	Player   *Player `json:"player,omitempty"`
	Minutes  *int    `json:"minutes,omitempty"`
	BoxScore
	Percentages
	PIR *float64 `json:"pir,omitempty"`
}

func (s PlayerStat) PlayerLabel() string {
	if s.Player != nil {
		return s.Player.Label()
	}
	return Player{ID: s.PlayerID}.Label()
}
