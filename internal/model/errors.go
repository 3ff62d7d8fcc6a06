package model

import "errors"

// Common errors used across the application
var (
	// Input validation errors
	ErrInvalidMove = errors.New("invalid move symbol")
	ErrInvalidMode = errors.New("invalid mode")
	ErrInvalidDate = errors.New("invalid date")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game precondition errors
	ErrGameNotFound = errors.New("game not found")
	ErrWrongMode    = errors.New("game is not in the required mode")
	ErrGameFinished = errors.New("game is already finished")

	// Manual session errors
	ErrNoRoundInProgress = errors.New("no manual round in progress")
	ErrRoundInProgress   = errors.New("a manual round is already in progress")
	ErrNotSideTurn       = errors.New("not this side's turn to record a move")
)
