package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game. It is derived from the game's date and
// creation time, e.g. "2024-01-01_1704103200".
type GameID string

// DateFormat is the calendar-date key used throughout the store
const DateFormat = "2006-01-02"

// Mode is the scheduling discipline for a day's game
type Mode string

const (
	ModeManual Mode = "manual" // both moves entered synchronously in one session
	ModeAuto   Mode = "auto"   // moves submitted independently, settled by a trigger
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeManual, ModeAuto:
		return Mode(s), nil
	}
	return "", ErrInvalidMode
}

// WinnerDrawPending is the winner sentinel set after a tied round while the
// game stays open for another round
const WinnerDrawPending = "draw_pending"

// Game is the single game record for one calendar date.
// At most one Game exists per Date; Finished flips to true exactly once.
type Game struct {
	ID         GameID
	Date       string // DateFormat
	Mode       Mode
	Winner     string // empty, WinnerDrawPending, or a display name
	MovesCount int
	Finished   bool
	CreatedAt  time.Time
}

// NewGameID derives a game id from the date and creation time
func NewGameID(date string, createdAt time.Time) GameID {
	return GameID(fmt.Sprintf("%s_%d", date, createdAt.Unix()))
}

// DateOf formats a point in time as a store date key
func DateOf(t time.Time) string {
	return t.Format(DateFormat)
}
