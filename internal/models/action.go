package models

// Action is one of the recordable live-game events.
type Action string

const (
	TwoPointMade     Action = "two_point_goal_made"
	TwoPointMissed   Action = "two_point_goal_missed"
	ThreePointMade   Action = "three_point_goal_made"
	ThreePointMissed Action = "three_point_goal_missed"
	FreeThrowMade    Action = "free_throw_made"
	FreeThrowMissed  Action = "free_throw_missed"
	OffensiveRebound Action = "offensive_rebound"
	DefensiveRebound Action = "defensive_rebound"
	Assist           Action = "assist"
	Turnover         Action = "turnover"
	Steal            Action = "steal"
	Block            Action = "block"
	PersonalFoul     Action = "personal_foul"
)

// AllActions is in console button order.
var AllActions = []Action{
	TwoPointMade, TwoPointMissed,
	ThreePointMade, ThreePointMissed,
	FreeThrowMade, FreeThrowMissed,
	OffensiveRebound, DefensiveRebound,
	Assist, Turnover, Steal, Block, PersonalFoul,
}

var actionLabels = map[Action]string{
	TwoPointMade:     "2PT ✓",
	TwoPointMissed:   "2PT ✗",
	ThreePointMade:   "3PT ✓",
	ThreePointMissed: "3PT ✗",
	FreeThrowMade:    "TL ✓",
	FreeThrowMissed:  "TL ✗",
	OffensiveRebound: "Rimb. Off.",
	DefensiveRebound: "Rimb. Dif.",
	Assist:           "Assist",
	Turnover:         "Palla persa",
	Steal:            "Recupero",
	Block:            "Stoppata",
	PersonalFoul:     "Fallo",
}

func (a Action) Valid() bool {
	_, ok := actionLabels[a]
	return ok
}

func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// ActionRequest is the body of record-action and undo-action.
type ActionRequest struct {
	GameID   int    `json:"game_id"`
	PlayerID int    `json:"player_id"`
	Action   Action `json:"action"`
}
