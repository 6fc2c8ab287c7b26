package models

import (
	"time"

	"gorm.io/gorm"
)

// Handler carries the local database to the gorm-backed handlers that embed it.
type Handler struct {
	DB *gorm.DB
}

// ActionLog is the operator journal row; the backend stays authoritative for stats.
type ActionLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionID    string    `gorm:"size:36;index;not null" json:"session_id"`
	GameID       int       `gorm:"index;not null" json:"game_id"`
	TeamID       int       `json:"team_id,omitempty"`
	PlayerID     int       `json:"player_id,omitempty"`
	Kind         string    `gorm:"size:32;not null" json:"kind"`
	Action       string    `gorm:"size:48" json:"action,omitempty"`
	Points       int       `json:"points"`
	ClockSeconds int       `json:"clock_seconds"`
	CreatedAt    time.Time `json:"created_at"`
}
