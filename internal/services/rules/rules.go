// Package rules implements the winner rule for a single move pair.
package rules

import "github.com/nikrus/rpsduel-go/internal/model"

// beats maps each symbol to the symbol it defeats
var beats = map[model.Move]model.Move{
	model.MoveRock:     model.MoveScissors,
	model.MoveScissors: model.MovePaper,
	model.MovePaper:    model.MoveRock,
}

// Decide compares two move symbols and returns the verdict.
// It returns model.ErrInvalidMove if either symbol is outside the fixed set;
// callers are expected to have validated input before invoking.
func Decide(a, b model.Move) (model.Result, error) {
	if _, ok := beats[a]; !ok {
		return "", model.ErrInvalidMove
	}
	if _, ok := beats[b]; !ok {
		return "", model.ErrInvalidMove
	}

	if a == b {
		return model.ResultTie, nil
	}
	if beats[a] == b {
		return model.ResultSideA, nil
	}
	return model.ResultSideB, nil
}
