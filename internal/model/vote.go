package model

import "time"

// ModeVote is one player's ballot for a day's game mode.
// One live vote per (Date, PlayerID); a later vote overwrites the earlier one.
// Votes become inert history once a Game exists for the date.
type ModeVote struct {
	Date     string // DateFormat
	PlayerID PlayerID
	Mode     Mode
	CastAt   time.Time
}

// VoteStatus is the outcome of submitting a mode vote
type VoteStatus string

const (
	VoteWaiting VoteStatus = "waiting" // vote recorded, no agreement yet
	VoteStarted VoteStatus = "started" // this vote completed the agreement
	VoteAlready VoteStatus = "already" // a game already exists for the date
)

// VoteOutcome reports what a vote submission did
type VoteOutcome struct {
	Status VoteStatus
	GameID GameID // set for VoteStarted and VoteAlready
}
