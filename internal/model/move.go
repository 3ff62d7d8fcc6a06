package model

import "time"

// Move is one of the three throwable symbols
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// ParseMove validates a move symbol
func ParseMove(s string) (Move, error) {
	switch Move(s) {
	case MoveRock, MovePaper, MoveScissors:
		return Move(s), nil
	}
	return "", ErrInvalidMove
}

// Result is the winner rule's verdict over an (a, b) move pair
type Result string

const (
	ResultSideA Result = "side_a"
	ResultSideB Result = "side_b"
	ResultTie   Result = "tie"
)

// OutcomeTag discriminates the two shapes a MoveEvent can take
type OutcomeTag string

const (
	TagPendingChoice OutcomeTag = "pending_choice"
	TagSideAWins     OutcomeTag = "side_a_wins"
	TagSideBWins     OutcomeTag = "side_b_wins"
	TagTie           OutcomeTag = "tie"
)

// TagForResult maps a winner rule result onto a settled round's tag
func TagForResult(r Result) OutcomeTag {
	switch r {
	case ResultSideA:
		return TagSideAWins
	case ResultSideB:
		return TagSideBWins
	default:
		return TagTie
	}
}

// MoveEvent is a row in the moves log. Two shapes share the schema:
//
//   - pending choice: Round == 0, Tag == TagPendingChoice, only side A
//     populated; at most one live row per (GameID, PlayerA), superseded on
//     resubmission.
//   - settled round: Round >= 1 strictly increasing per game, both sides
//     populated, immutable once written.
type MoveEvent struct {
	GameID     GameID
	Round      int
	PlayerA    PlayerID
	MoveA      Move
	PlayerB    PlayerID
	MoveB      Move
	Tag        OutcomeTag
	RecordedAt time.Time
}

// IsPending reports whether the event is a live pending choice
func (e *MoveEvent) IsPending() bool {
	return e.Tag == TagPendingChoice
}

// SettleStatus is the outcome of a daily settlement attempt
type SettleStatus string

const (
	SettleNoGame           SettleStatus = "no_game"
	SettleWrongMode        SettleStatus = "wrong_mode"
	SettleAlreadyFinished  SettleStatus = "already_finished"
	SettleNotEnoughPlayers SettleStatus = "not_enough_players"
	SettleTie              SettleStatus = "tie"
	SettleFinished         SettleStatus = "finished"
)

// Settlement is the result of one settlement invocation. Notifications are a
// side-effect list the caller dispatches; the engine never talks to the chat
// transport itself.
type Settlement struct {
	Status        SettleStatus
	GameID        GameID
	Round         int
	Winner        string
	Notifications []NotificationRequest
}
