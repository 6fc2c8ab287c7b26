package models

type Club struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

type League struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Season      string `json:"season,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// Team belongs to one club and one league; players are attached many-to-many.
type Team struct {
	ID       int      `json:"id,omitempty"`
	Name     string   `json:"name"`
	ClubID   int      `json:"club_id"`
	LeagueID int      `json:"league_id"`
	Club     *Club    `json:"club,omitempty"`
	League   *League  `json:"league,omitempty"`
	Players  []Player `json:"players,omitempty"`
	IsActive bool     `json:"is_active"`
}

func (t *Team) HasPlayer(playerID int) bool {
	for _, player := range t.Players {
		if player.ID == playerID {
			return true
		}
	}
	return false
}

func (t *Team) PlayerByID(playerID int) (Player, bool) {
	for _, player := range t.Players {
		if player.ID == playerID {
			return player, true
		}
	}
	return Player{}, false
}
