package model

import "time"

// PlayerID uniquely identifies a player across the system.
// It is the player's stable external chat identity (e.g. a Telegram user id).
type PlayerID string

// Player represents a registered duel participant
type Player struct {
	ID           PlayerID
	DisplayName  string
	ChatID       string // outbound notification address
	RegisteredAt time.Time
}
