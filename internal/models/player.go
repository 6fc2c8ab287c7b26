package models

import (
	"fmt"
	"strings"
)

type Player struct {
	ID           int    `json:"id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`
	Position     string `json:"position,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	Height       *int   `json:"height,omitempty"`
	Weight       *int   `json:"weight,omitempty"`
	Teams        []Team `json:"teams,omitempty"`
	TeamIDs      []int  `json:"team_ids,omitempty"`
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Label is the short form used on buttons: "#7 Mario Rossi".
func (p Player) Label() string {
	name := p.FullName()
	if name == "" {
		name = fmt.Sprintf("Giocatore %d", p.ID)
	}
	if p.JerseyNumber == nil {
		return name
	}
	return fmt.Sprintf("#%d %s", *p.JerseyNumber, name)
}
